package dto

import "github.com/shopspring/decimal"

// ReportRequest query de GET /api/reports/summary. Datas em YYYY-MM-DD.
type ReportRequest struct {
	Tipo      string `query:"tipo"`
	De        string `query:"de"`
	Ate       string `query:"ate"`
	ProductID string `query:"productId"`
	Agrupar   string `query:"agrupar"`
	Top       string `query:"top"`
}

// ReportFiltersDTO filtros efetivamente aplicados, já com os padrões.
type ReportFiltersDTO struct {
	Tipo      string `json:"tipo"`
	De        string `json:"de"`
	Ate       string `json:"ate"`
	ProductID string `json:"productId,omitempty"`
	Agrupar   string `json:"agrupar"`
	Top       int    `json:"top"`
}

// KPIsDTO totais do período.
type KPIsDTO struct {
	Entradas   decimal.Decimal `json:"entradas"`
	Saidas     decimal.Decimal `json:"saidas"`
	Saldo      decimal.Decimal `json:"saldo"`
	Movimentos int             `json:"movimentos"`
}

// SeriesDTO série temporal com um rótulo por dia ou mês, sem lacunas.
type SeriesDTO struct {
	Labels   []string          `json:"labels"`
	Entradas []decimal.Decimal `json:"entradas"`
	Saidas   []decimal.Decimal `json:"saidas"`
	Saldo    []decimal.Decimal `json:"saldo"`
}

// TopConsumptionDTO produto com maior volume de saídas.
type TopConsumptionDTO struct {
	ProductID string          `json:"productId"`
	Nome      string          `json:"nome"`
	Total     decimal.Decimal `json:"total"`
}

// ReportSummaryDTO resposta de GET /api/reports/summary.
type ReportSummaryDTO struct {
	Success bool                `json:"success"`
	Filtros ReportFiltersDTO    `json:"filtros"`
	KPIs    KPIsDTO             `json:"kpis"`
	Series  SeriesDTO           `json:"series"`
	Top     []TopConsumptionDTO `json:"top"`
}
