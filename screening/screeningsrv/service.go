package screeningsrv

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/siftworks/talentsift/internal/extract"
	"github.com/siftworks/talentsift/pkg/logx"
	"github.com/siftworks/talentsift/screening"
)

// MaxCandidates caps how many ranked candidates a recommendation returns
const MaxCandidates = 10

// Service runs the recommendation pipeline: extract, rank, shape the response
type Service struct {
	ranker *Ranker
}

// NewService creates a recommendation service
func NewService(ranker *Ranker) *Service {
	return &Service{ranker: ranker}
}

// Recommend extracts text from the uploaded files, ranks the candidates
// against the job description and returns the top matches with scores.
// Files with no extractable text are dropped; if every file fails, the
// response reports the no-op instead of erroring.
func (s *Service) Recommend(ctx context.Context, jobDescription string, files []screening.ResumeFile) (*screening.RecommendationResponse, error) {
	start := time.Now()

	if isBlank(jobDescription) {
		return nil, screening.ErrEmptyJobDescription()
	}
	if len(files) == 0 {
		return nil, screening.ErrNoFiles()
	}
	for _, f := range files {
		if !extract.IsSupported(f.Filename) {
			return nil, screening.ErrUnsupportedFileType().
				WithDetail("filename", f.Filename)
		}
	}

	candidates := make([]screening.Candidate, 0, len(files))
	for _, f := range files {
		name, text := extract.ProcessFile(f.Data, f.Filename)
		if text == "" {
			logx.Warnf("No text extracted from %s, dropping candidate", f.Filename)
			continue
		}
		candidates = append(candidates, screening.Candidate{
			Name:       name,
			Filename:   f.Filename,
			ResumeText: text,
		})
	}

	if len(candidates) == 0 {
		return &screening.RecommendationResponse{
			Success:        false,
			Message:        "No text could be extracted from any of the uploaded files",
			Candidates:     []screening.Candidate{},
			TotalProcessed: 0,
			ProcessingTime: roundTo(time.Since(start).Seconds(), 2),
		}, nil
	}

	entries, err := s.ranker.Rank(ctx, jobDescription, candidates)
	if err != nil {
		return nil, err
	}

	if len(entries) > MaxCandidates {
		entries = entries[:MaxCandidates]
	}

	// Re-associate ranked entries with their resume text by input position;
	// names and filenames may repeat across uploads
	results := make([]screening.Candidate, 0, len(entries))
	for _, entry := range entries {
		c := candidates[entry.Index]
		c.SimilarityScore = roundTo(entry.Score, 4)
		c.MatchPercentage = roundTo(entry.Score*100, 1)
		results = append(results, c)
	}

	logx.Infof("Ranked %d candidates (%d uploaded) in %s", len(results), len(files), time.Since(start))

	return &screening.RecommendationResponse{
		Success:        true,
		Message:        fmt.Sprintf("Successfully processed %d candidates", len(results)),
		Candidates:     results,
		TotalProcessed: len(files),
		ProcessingTime: roundTo(time.Since(start).Seconds(), 2),
	}, nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
