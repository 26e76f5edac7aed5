package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hr360/assistant/api/http/presenter"
	"github.com/hr360/assistant/pkg/application"
)

type ApplicationHandler struct {
	useCase application.UseCase
}

func NewApplicationHandler(useCase application.UseCase) *ApplicationHandler {
	return &ApplicationHandler{useCase: useCase}
}

type applyRequest struct {
	Position    string `json:"position"`
	ScreeningID string `json:"screeningId"`
	AIScore     int    `json:"aiScore"`
}

// Apply creates a job application for the current user.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	var screeningID uuid.UUID
	if req.ScreeningID != "" {
		id, err := uuid.Parse(req.ScreeningID)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid screening id")
		}
		screeningID = id
	}

	a, err := h.useCase.Apply(c.Context(), ownerID(c), req.Position, screeningID, req.AIScore)
	if err != nil {
		if err == application.ErrPositionRequired {
			return presenter.Error(c, http.StatusBadRequest, "position is required")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create application")
	}
	return presenter.JSON(c, http.StatusCreated, a)
}

// List returns the caller's applications, optionally filtered by status.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.useCase.List(c.Context(), ownerID(c), c.Query("status"), limit, offset)
	if err != nil {
		if err == application.ErrInvalidStatus {
			return presenter.Error(c, http.StatusBadRequest, "invalid status filter")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	if items == nil {
		items = []application.Application{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"items": items})
}

// Get returns one application by id.
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid application id")
	}
	a, err := h.useCase.Get(c.Context(), ownerID(c), id)
	if err != nil {
		if err == application.ErrNotFound {
			return presenter.Error(c, http.StatusNotFound, "application not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load application")
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// Stats summarizes the caller's application pipeline.
func (h *ApplicationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.useCase.Stats(c.Context(), ownerID(c))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to compute stats")
	}
	return presenter.JSON(c, http.StatusOK, stats)
}

// Withdraw moves an application to the withdrawn state.
func (h *ApplicationHandler) Withdraw(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid application id")
	}
	a, err := h.useCase.Withdraw(c.Context(), ownerID(c), id)
	if err != nil {
		switch err {
		case application.ErrNotFound:
			return presenter.Error(c, http.StatusNotFound, "application not found")
		case application.ErrCannotWithdraw:
			return presenter.Error(c, http.StatusConflict, "application can no longer be withdrawn")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to withdraw application")
		}
	}
	return presenter.JSON(c, http.StatusOK, a)
}
