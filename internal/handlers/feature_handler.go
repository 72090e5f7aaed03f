package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ppandov/trail-service/internal/dto"
	"github.com/ppandov/trail-service/internal/services"
)

type FeatureHandler struct {
	featureService *services.FeatureService
}

func NewFeatureHandler(featureService *services.FeatureService) *FeatureHandler {
	return &FeatureHandler{featureService: featureService}
}

func (h *FeatureHandler) List(c *fiber.Ctx) error {
	features, err := h.featureService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch features",
		})
	}
	return c.JSON(features)
}

func (h *FeatureHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateFeatureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	feature, err := h.featureService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFeatureName) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create feature",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(feature)
}

func (h *FeatureHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid feature ID",
		})
	}

	if err := h.featureService.Delete(id); err != nil {
		if errors.Is(err, services.ErrFeatureNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete feature",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Feature deleted successfully"})
}
