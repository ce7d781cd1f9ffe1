// Package extract pulls plain text and a candidate name out of uploaded
// resume files. It is a thin collaborator: callers only ever see
// (name, text) tuples, and an empty text means extraction failed.
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/gen2brain/go-fitz"

	"github.com/siftworks/talentsift/pkg/logx"
)

// SupportedExtensions lists the upload extensions the service accepts
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// IsSupported reports whether the filename has an accepted extension
func IsSupported(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// namePattern matches 2-3 capitalized words on a line of their own,
// the usual shape of a name header at the top of a resume
var namePattern = regexp.MustCompile(`^([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s*$`)

// ProcessFile extracts text from file data and detects the candidate name.
// An empty returned text means extraction failed or the format is
// unsupported; such candidates must be dropped before ranking.
func ProcessFile(data []byte, filename string) (name string, text string) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text = extractPDF(data, filename)
	case ".txt":
		text = strings.TrimSpace(string(data))
	case ".docx":
		// No DOCX support; reported as an extraction failure upstream
		logx.Warnf("DOCX extraction not supported, skipping %s", filename)
		text = ""
	default:
		text = ""
	}

	if text == "" {
		return filename, ""
	}

	return NameFromText(text, filename), text
}

func extractPDF(data []byte, filename string) string {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		logx.Errorf("Failed to open PDF %s: %v", filename, err)
		return ""
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			logx.Errorf("Failed to extract text from page %d of %s: %v", i, filename, err)
			return ""
		}
		sb.WriteString(pageText)
	}

	return strings.TrimSpace(sb.String())
}

// NameFromText finds a candidate name in the first lines of the resume,
// falling back to a cleaned-up filename
func NameFromText(text, filename string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		if m := namePattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			return m[1]
		}
	}

	return nameFromFilename(filename)
}

func nameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)

	words := strings.Fields(base)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	if len(words) == 0 {
		return filename
	}
	return strings.Join(words, " ")
}

// Describe returns a short human-readable label for logging
func Describe(filename string, size int) string {
	return fmt.Sprintf("%s (%d bytes)", filename, size)
}
