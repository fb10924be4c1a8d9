package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/analysis"
	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
	"alfredoptarigan/cv-matcher/internal/services"
)

type AnalyzeHandler struct {
	repo        repositories.AnalysisRepository
	parser      services.DocumentParserService
	worker      services.Worker
	maxFileSize int64
}

func NewAnalyzeHandler(
	repo repositories.AnalysisRepository,
	parser services.DocumentParserService,
	worker services.Worker,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		repo:        repo,
		parser:      parser,
		worker:      worker,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. Multipart form: a 'cv' file
// (PDF/DOCX/plain text) or a 'cv_text' field, plus 'job_description',
// 'language' and 'tone'. Validation failures are reported immediately; the
// pipeline never starts.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	language, err := analysis.ParseLanguage(c.FormValue("language"))
	if err != nil {
		return respondPipelineError(c, err)
	}

	tone, err := analysis.ParseTone(c.FormValue("tone"))
	if err != nil {
		return respondPipelineError(c, err)
	}

	jobDescription := c.FormValue("job_description")
	if len(jobDescription) < analysis.MinJobDescriptionLength {
		return respondPipelineError(c, analysis.NewValidationError("Job description is too short for analysis."))
	}

	cvText, err := h.resolveCVText(c)
	if err != nil {
		return respondPipelineError(c, err)
	}

	record := &models.Analysis{
		ID:             uuid.New(),
		CVText:         cvText,
		JobDescription: jobDescription,
		Language:       language,
		Tone:           tone,
		Status:         models.StatusQueued,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.repo.Create(record); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create analysis job",
		})
	}

	h.worker.EnqueueJob(record.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		ID:     record.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// resolveCVText prefers an uploaded document over the raw cv_text field.
func (h *AnalyzeHandler) resolveCVText(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("cv")
	if err != nil {
		// No file attached; fall back to the raw text field.
		cvText := c.FormValue("cv_text")
		if cvText == "" {
			return "", analysis.NewValidationError("either a 'cv' file or a 'cv_text' field is required")
		}
		return cvText, nil
	}

	if file.Size > h.maxFileSize {
		return "", analysis.NewValidationError(
			fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := file.Open()
	if err != nil {
		return "", analysis.NewExtractionError("failed to open uploaded file", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", analysis.NewExtractionError("failed to read uploaded file", err)
	}

	return h.parser.ExtractText(file.Filename, file.Header.Get("Content-Type"), data)
}

// respondPipelineError maps the error taxonomy onto HTTP statuses:
// validation → 400, extraction and scoring → 422, anything else → 500.
func respondPipelineError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch analysis.KindOf(err) {
	case analysis.KindValidation:
		status = fiber.StatusBadRequest
	case analysis.KindExtraction, analysis.KindScoring:
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(fiber.Map{
		"error":      analysis.UserMessage(err),
		"error_kind": string(analysis.KindOf(err)),
	})
}
