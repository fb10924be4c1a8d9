package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/cv-matcher/internal/models"
	"alfredoptarigan/cv-matcher/internal/repositories"
)

type ResultHandler struct {
	repo repositories.AnalysisRepository
}

func NewResultHandler(repo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		repo: repo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	analysisID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	record, err := h.repo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	response := models.ResultResponse{
		ID:     record.ID.String(),
		Status: string(record.Status),
	}

	if record.Status == models.StatusCompleted {
		response.Result = record.Result
	}

	if record.Status == models.StatusFailed {
		response.ErrorKind = string(record.ErrorKind)
		response.ErrorMessage = record.ErrorMessage
	}

	return c.JSON(response)
}
