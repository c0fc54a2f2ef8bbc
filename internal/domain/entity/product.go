package entity

import "github.com/shopspring/decimal"

// Product representa um item do estoque. O estoque não é armazenado: é derivado dos movimentos.
type Product struct {
	ID       string
	Name     string
	Unit     string          // un, kg, g, l, ml, cx...
	MinStock decimal.Decimal // estoque mínimo para alerta (>= 0)
	Price    *decimal.Decimal
	Category string // nome da categoria; vazio quando não tem
}
