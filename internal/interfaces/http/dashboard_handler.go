package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/analytics"
)

// DashboardHandler trata o endpoint do dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumo do dashboard
// @Description  Totais, alertas, série diária dos últimos 30 dias e top 5 de consumo.
// @Description  Não recebe parâmetros; as datas são calculadas no servidor.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
