package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hr360/assistant/api/http/presenter"
	"github.com/hr360/assistant/pkg/assistant"
)

type InsightsHandler struct {
	svc assistant.Service
}

func NewInsightsHandler(svc assistant.Service) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

type insightsRequest struct {
	EmployeeData map[string]any `json:"employeeData"`
}

// Performance generates a narrative performance summary from arbitrary
// employee metrics.
func (h *InsightsHandler) Performance(c *fiber.Ctx) error {
	var req insightsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if len(req.EmployeeData) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "employeeData is required")
	}

	insights := h.svc.GeneratePerformanceInsights(c.Context(), req.EmployeeData)
	return presenter.JSON(c, http.StatusOK, fiber.Map{"insights": insights})
}
