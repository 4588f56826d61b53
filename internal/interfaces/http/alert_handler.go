package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/alerts"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
)

// AlertHandler expone el reporte de alertas de inventario (protegido).
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// GetAlerts godoc
// @Summary      Reporte de alertas (reposición + vencimientos)
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        as_of  query  string  false  "Fecha de corte YYYY-MM-DD (default: hoy)"
// @Success      200    {object}  dto.AlertReportDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) GetAlerts(c *fiber.Ctx) error {
	var asOf time.Time
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "as_of debe tener formato YYYY-MM-DD"})
		}
		asOf = parsed
	}
	out, err := h.uc.GetAlerts(c.Context(), asOf)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
