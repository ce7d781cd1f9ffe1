package insightapi

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/siftworks/talentsift/insight"
	"github.com/siftworks/talentsift/insight/insightsrv"
	"github.com/siftworks/talentsift/pkg/kernel"
)

// sessionCookie names the cookie that scopes AI configuration to a browser
const sessionCookie = "session_id"

type InsightHandlers struct {
	service *insightsrv.Service
}

func NewInsightHandlers(service *insightsrv.Service) *InsightHandlers {
	return &InsightHandlers{service: service}
}

func (h *InsightHandlers) RegisterRoutes(app *fiber.App) {
	app.Get("/ai-providers", h.ListProviders)
	app.Post("/configure-ai", h.ConfigureAI)
	app.Post("/test-ai-connection", h.TestConnection)
	app.Post("/generate-summaries", h.GenerateSummaries)
	app.Get("/ai-status", h.Status)
}

// sessionID reads the session cookie, issuing a fresh one on first contact.
// Sessions carry no identity, only which provider config to use.
func sessionID(c *fiber.Ctx) kernel.SessionID {
	if id := c.Cookies(sessionCookie); id != "" {
		return kernel.SessionID(id)
	}

	id := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return kernel.SessionID(id)
}

// ListProviders returns every known provider and its selectable models
// GET /ai-providers
func (h *InsightHandlers) ListProviders(c *fiber.Ctx) error {
	return c.JSON(insight.ProvidersResponse{
		Providers: insight.Available(),
	})
}

// ConfigureAI validates, stores and verifies a provider configuration for
// the caller's session. Failures come back as success=false with a hint,
// not as an HTTP error.
// POST /configure-ai
func (h *InsightHandlers) ConfigureAI(c *fiber.Ctx) error {
	var req insight.ConfigureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	response := h.service.ConfigureAI(c.Context(), sessionID(c), req)
	return c.JSON(response)
}

// TestConnection exercises the session's configured provider once
// POST /test-ai-connection
func (h *InsightHandlers) TestConnection(c *fiber.Ctx) error {
	ok, message := h.service.TestConnection(c.Context(), sessionID(c))
	return c.JSON(insight.TestConnectionResponse{
		Success: ok,
		Message: message,
	})
}

// GenerateSummaries annotates already-ranked candidates with AI summaries,
// or the deterministic fallback when the session has no provider
// POST /generate-summaries
func (h *InsightHandlers) GenerateSummaries(c *fiber.Ctx) error {
	var req insight.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if len(req.Candidates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidates are required",
		})
	}

	candidates, stats := h.service.GenerateInsights(
		c.Context(),
		sessionID(c),
		req.JobDescription,
		req.Candidates,
		req.MaxSummaries,
	)

	return c.JSON(insight.GenerateResponse{
		Success:    true,
		Message:    fmt.Sprintf("Generated summaries for %d candidates", stats.SummariesGenerated),
		Candidates: candidates,
		Stats:      &stats,
	})
}

// Status reports whether the session has a working provider configured
// GET /ai-status
func (h *InsightHandlers) Status(c *fiber.Ctx) error {
	info := h.service.Status(sessionID(c))
	return c.JSON(insight.StatusResponse{
		Configured:   info != nil,
		ProviderInfo: info,
	})
}
