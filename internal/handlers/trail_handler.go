package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ppandov/trail-service/internal/claims"
	"github.com/ppandov/trail-service/internal/dto"
	"github.com/ppandov/trail-service/internal/policy"
	"github.com/ppandov/trail-service/internal/services"
)

type TrailHandler struct {
	trailService *services.TrailService
}

func NewTrailHandler(trailService *services.TrailService) *TrailHandler {
	return &TrailHandler{trailService: trailService}
}

func (h *TrailHandler) List(c *fiber.Ctx) error {
	cl, err := claims.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	trails, err := h.trailService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch trails",
		})
	}

	return c.JSON(policy.ProjectTrails(trails, cl))
}

func (h *TrailHandler) Get(c *fiber.Ctx) error {
	cl, err := claims.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid trail ID",
		})
	}

	trail, err := h.trailService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrTrailNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch trail",
		})
	}

	return c.JSON(policy.ProjectTrail(trail, cl))
}

func (h *TrailHandler) Create(c *fiber.Ctx) error {
	cl, err := claims.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateTrailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	trail, err := h.trailService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrMissingTrailFields) || errors.Is(err, services.ErrTrailOwnerNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create trail",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(policy.ProjectTrail(trail, cl))
}

func (h *TrailHandler) Update(c *fiber.Ctx) error {
	cl, err := claims.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid trail ID",
		})
	}

	// Decoded as a map so an absent key and an explicit null stay
	// distinguishable for the partial update.
	var patch map[string]interface{}
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	trail, err := h.trailService.Update(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrTrailNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrMissingTrailFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update trail",
		})
	}

	return c.JSON(policy.ProjectTrail(trail, cl))
}

func (h *TrailHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid trail ID",
		})
	}

	if err := h.trailService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTrailNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete trail",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Trail deleted successfully"})
}

func (h *TrailHandler) AttachFeature(c *fiber.Ctx) error {
	trailID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid trail ID",
		})
	}
	featureID, err := parseID(c, "feature_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid feature ID",
		})
	}

	if err := h.trailService.AttachFeature(trailID, featureID); err != nil {
		switch {
		case errors.Is(err, services.ErrTrailNotFound), errors.Is(err, services.ErrFeatureNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrFeatureAlreadyAttached):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to attach feature",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Feature attached successfully"})
}

func (h *TrailHandler) DetachFeature(c *fiber.Ctx) error {
	trailID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid trail ID",
		})
	}
	featureID, err := parseID(c, "feature_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid feature ID",
		})
	}

	if err := h.trailService.DetachFeature(trailID, featureID); err != nil {
		if errors.Is(err, services.ErrFeatureNotAttached) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to detach feature",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Feature detached successfully"})
}
