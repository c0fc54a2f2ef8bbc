package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO produto com estoque zerado/negativo (empty) ou abaixo do mínimo (low).
type LowStockItemDTO struct {
	Produto ProductResponse `json:"produto"`
	Estoque decimal.Decimal `json:"estoque"`
	Minimo  decimal.Decimal `json:"minimo"`
	Falta   decimal.Decimal `json:"falta"`
	Status  string          `json:"status"`
}

// LowStockResponse resposta de GET /api/alerts/low-stock.
type LowStockResponse struct {
	Success bool              `json:"success"`
	Items   []LowStockItemDTO `json:"items"`
}

// ExpirationItemDTO produto cujo lote mais próximo vence dentro da janela.
type ExpirationItemDTO struct {
	Produto  ProductResponse `json:"produto"`
	Validade string          `json:"validade"` // YYYY-MM-DD
	Dias     int             `json:"dias"`
}

// ExpirationResponse resposta de GET /api/alerts/expiration.
type ExpirationResponse struct {
	Success bool                `json:"success"`
	Dias    int                 `json:"dias"`
	Items   []ExpirationItemDTO `json:"items"`
}
