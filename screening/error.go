package screening

import (
	"net/http"

	"github.com/siftworks/talentsift/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("SCREENING")

// Error codes
var (
	CodeEmptyJobDescription = ErrRegistry.Register("EMPTY_JOB_DESCRIPTION", errx.TypeValidation, http.StatusBadRequest, "Job description cannot be empty")
	CodeNoFiles             = ErrRegistry.Register("NO_FILES", errx.TypeValidation, http.StatusBadRequest, "At least one resume file must be uploaded")
	CodeUnsupportedFileType = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "File type not supported. Please upload PDF, DOCX, or TXT files only")
	CodeExtractionFailed    = ErrRegistry.Register("EXTRACTION_FAILED", errx.TypeBusiness, http.StatusUnprocessableEntity, "No text could be extracted from the uploaded files")
	CodeEmbeddingFailed     = ErrRegistry.Register("EMBEDDING_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate embeddings")
	CodeDimensionMismatch   = ErrRegistry.Register("DIMENSION_MISMATCH", errx.TypeInternal, http.StatusInternalServerError, "Embedding dimensions do not match")
	CodeRankingFailed       = ErrRegistry.Register("RANKING_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to rank candidates")
)

// Helper functions
func ErrEmptyJobDescription() *errx.Error {
	return ErrRegistry.New(CodeEmptyJobDescription)
}

func ErrNoFiles() *errx.Error {
	return ErrRegistry.New(CodeNoFiles)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrDimensionMismatch() *errx.Error {
	return ErrRegistry.New(CodeDimensionMismatch)
}
