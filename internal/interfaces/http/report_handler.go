package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/analytics"
	"github.com/jhoicas/mercogestor-api/internal/application/dto"
)

// ReportHandler expõe o relatório de movimentos.
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      KPIs, série temporal e top de consumo
// @Tags         reports
// @Produce      json
// @Param        tipo       query     string  false  "all, in ou out (padrão all)"
// @Param        de         query     string  false  "Início AAAA-MM-DD (padrão: 29 dias antes de ate)"
// @Param        ate        query     string  false  "Fim AAAA-MM-DD (padrão: hoje)"
// @Param        productId  query     string  false  "ID do produto"
// @Param        agrupar    query     string  false  "day ou month (padrão day)"
// @Param        top        query     int     false  "Tamanho do top de consumo (padrão 6, máx 100)"
// @Success      200        {object}  dto.ReportSummaryDTO
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidBody(err)
	}
	report, err := h.uc.Summary(c.Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(report)
}
