package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/analytics"
	"github.com/jhoicas/mercogestor-api/internal/application/dto"
)

// AlertsHandler expõe os alertas de estoque e de validade.
type AlertsHandler struct {
	uc *analytics.AlertsUseCase
}

// NewAlertsHandler constrói o handler.
func NewAlertsHandler(uc *analytics.AlertsUseCase) *AlertsHandler {
	return &AlertsHandler{uc: uc}
}

// LowStock godoc
// @Summary      Produtos esgotados ou abaixo do mínimo
// @Description  Esgotados primeiro; dentro de cada grupo, menor estoque primeiro.
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.LowStockResponse
// @Router       /api/alerts/low-stock [get]
func (h *AlertsHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.LowStockResponse{Success: true, Items: items})
}

// Expiration godoc
// @Summary      Lotes perto do vencimento
// @Description  dias não numérico ou <= 0 vira 1; ausente usa a janela padrão.
// @Tags         alerts
// @Produce      json
// @Param        dias  query     int  false  "Janela em dias"
// @Success      200   {object}  dto.ExpirationResponse
// @Router       /api/alerts/expiration [get]
func (h *AlertsHandler) Expiration(c *fiber.Ctx) error {
	days, items, err := h.uc.Expiration(c.Context(), c.Query("dias"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ExpirationResponse{Success: true, Dias: days, Items: items})
}
