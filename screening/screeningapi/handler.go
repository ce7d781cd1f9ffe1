package screeningapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/siftworks/talentsift/internal/extract"
	"github.com/siftworks/talentsift/pkg/logx"
	"github.com/siftworks/talentsift/screening"
	"github.com/siftworks/talentsift/screening/screeningsrv"
)

// maxResumeSize caps a single uploaded resume at 10MB
const maxResumeSize = int64(10 * 1024 * 1024)

type ScreeningHandlers struct {
	service *screeningsrv.Service
}

func NewScreeningHandlers(service *screeningsrv.Service) *ScreeningHandlers {
	return &ScreeningHandlers{service: service}
}

func (h *ScreeningHandlers) RegisterRoutes(app *fiber.App) {
	app.Post("/recommend", h.Recommend)
	app.Get("/health", h.Health)
}

// Recommend ranks uploaded resumes against a job description
// POST /recommend (multipart: job_description + files)
func (h *ScreeningHandlers) Recommend(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart form is required",
		})
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return screening.ErrNoFiles()
	}

	files := make([]screening.ResumeFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		if header.Size > maxResumeSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    "file too large",
				"filename": header.Filename,
				"max_size": "10MB",
			})
		}
		if !extract.IsSupported(header.Filename) {
			return screening.ErrUnsupportedFileType().
				WithDetail("filename", header.Filename).
				WithDetail("supported_types", []string{"pdf", "docx", "txt"})
		}

		f, err := header.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":    "failed to open uploaded file",
				"filename": header.Filename,
			})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":    "failed to read uploaded file",
				"filename": header.Filename,
			})
		}

		logx.Debugf("Accepted upload %s", extract.Describe(header.Filename, len(data)))
		files = append(files, screening.ResumeFile{
			Filename: header.Filename,
			Data:     data,
		})
	}

	response, err := h.service.Recommend(c.Context(), jobDescription, files)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// Health reports service liveness
// GET /health
func (h *ScreeningHandlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "talentsift",
	})
}
