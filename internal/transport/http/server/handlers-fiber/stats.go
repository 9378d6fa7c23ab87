package handlers_fiber

import (
	"net/http"

	"github.com/alkharfy/cveeez-dash/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns the aggregate counts for the dashboard.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.uc.Dashboard(c.Context())
	if err != nil {
		h.log.Errorw("failed to load dashboard stats", "error", err.Error())
		return writeError(c, err)
	}
	return respond(c, http.StatusOK, mapper.ToAPIDashboard(stats))
}
