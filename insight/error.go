package insight

import (
	"net/http"

	"github.com/siftworks/talentsift/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("INSIGHT")

// Error codes
var (
	CodeProviderRequired     = ErrRegistry.Register("PROVIDER_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Please select an AI provider")
	CodeInvalidAPIKey        = ErrRegistry.Register("INVALID_API_KEY", errx.TypeValidation, http.StatusBadRequest, "Please enter a valid API key")
	CodeUnknownProvider      = ErrRegistry.Register("UNKNOWN_PROVIDER", errx.TypeValidation, http.StatusBadRequest, "Unsupported AI provider")
	CodeInvalidModel         = ErrRegistry.Register("INVALID_MODEL", errx.TypeValidation, http.StatusBadRequest, "Invalid model for provider")
	CodeNotConfigured        = ErrRegistry.Register("NOT_CONFIGURED", errx.TypeBusiness, http.StatusUnprocessableEntity, "No AI provider configured for this session")
	CodeConnectionTestFailed = ErrRegistry.Register("CONNECTION_TEST_FAILED", errx.TypeUnavailable, http.StatusBadGateway, "AI provider connection test failed")
	CodeGenerationFailed     = ErrRegistry.Register("GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate AI summaries")
	CodeSessionRequired      = ErrRegistry.Register("SESSION_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "Session identifier is required")
)

// Helper functions
func ErrProviderRequired() *errx.Error {
	return ErrRegistry.New(CodeProviderRequired)
}

func ErrInvalidAPIKey() *errx.Error {
	return ErrRegistry.New(CodeInvalidAPIKey)
}

func ErrUnknownProvider() *errx.Error {
	return ErrRegistry.New(CodeUnknownProvider)
}

func ErrInvalidModel() *errx.Error {
	return ErrRegistry.New(CodeInvalidModel)
}

func ErrSessionRequired() *errx.Error {
	return ErrRegistry.New(CodeSessionRequired)
}
