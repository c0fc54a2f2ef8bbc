package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resposta de GET /api/dashboard.
// Séries dos últimos 30 dias e top 5 de consumo no mesmo período.
type DashboardSummaryDTO struct {
	Success         bool                `json:"success"`
	TotalProdutos   int                 `json:"totalProdutos"`
	TotalEstoque    decimal.Decimal     `json:"totalEstoque"`
	BaixoEstoque    int                 `json:"baixoEstoque"`
	PertoVencimento int                 `json:"pertoVencimento"`
	Series          SeriesDTO           `json:"series"`
	Top             []TopConsumptionDTO `json:"top"`
}
