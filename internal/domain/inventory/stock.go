// Package inventory reúne as regras puras que derivam estoque, alertas e relatórios
// a partir do livro de movimentos. Nada aqui guarda estado; tudo é recalculado a cada consulta.
package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
)

// Situação do estoque de um produto.
const (
	StatusEmpty = "empty" // esgotado: estoque <= 0
	StatusLow   = "low"   // baixo: 0 < estoque <= mínimo
	StatusOK    = "ok"
)

// StockOf soma as quantidades com sinal dos movimentos do produto. Sem movimentos devolve 0.
// O resultado não depende da ordem de movements.
func StockOf(productID string, movements []*entity.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m == nil || m.ProductID != productID {
			continue
		}
		total = total.Add(m.SignedQuantity())
	}
	return total
}

// StockByProduct calcula o estoque de todos os produtos numa única passada.
func StockByProduct(movements []*entity.Movement) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, m := range movements {
		if m == nil {
			continue
		}
		out[m.ProductID] = out[m.ProductID].Add(m.SignedQuantity())
	}
	return out
}

// StatusOf classifica o estoque frente ao mínimo.
func StatusOf(stock, minStock decimal.Decimal) string {
	switch {
	case stock.LessThanOrEqual(decimal.Zero):
		return StatusEmpty
	case stock.LessThanOrEqual(minStock):
		return StatusLow
	default:
		return StatusOK
	}
}

// NearestExpiry devolve a menor validade de lote, entre as entradas do produto, que ainda
// não passou no instante asOf. Uma validade só com data vale a partir da meia-noite UTC daquele dia.
// Validades vazias ou ilegíveis são ignoradas.
func NearestExpiry(productID string, movements []*entity.Movement, asOf time.Time) (time.Time, bool) {
	var (
		nearest time.Time
		found   bool
	)
	for _, m := range movements {
		if m == nil || m.ProductID != productID || m.Type != entity.MovementTypeIn || m.LotExpiry == "" {
			continue
		}
		exp, err := entity.ParseDate(m.LotExpiry)
		if err != nil || exp.Before(asOf) {
			continue
		}
		if !found || exp.Before(nearest) {
			nearest = exp
			found = true
		}
	}
	return nearest, found
}
