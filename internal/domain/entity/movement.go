package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // saída
)

// Motivos aceitos para saídas.
const (
	ReasonSale        = "sale"
	ReasonConsumption = "consumption"
	ReasonWaste       = "waste"
	ReasonAdjust      = "adjust"
)

// DateLayout formato de dia usado em validades e chaves de relatório.
const DateLayout = "2006-01-02"

// Movement é um lançamento do livro de movimentos. Quantity é sempre positivo;
// o sinal vem de Type.
type Movement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  decimal.Decimal
	DateISO   string // como enviado pelo cliente (RFC 3339 ou YYYY-MM-DD)
	UnitPrice *decimal.Decimal
	LotExpiry string // YYYY-MM-DD, só em entradas
	Reason    string // só em saídas
}

// SignedQuantity devolve +Quantity para entradas e -Quantity para saídas.
func (m Movement) SignedQuantity() decimal.Decimal {
	if m.Type == MovementTypeOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}

// DayKey devolve YYYY-MM-DD a partir de DateISO.
func (m Movement) DayKey() string {
	if len(m.DateISO) < 10 {
		return m.DateISO
	}
	return m.DateISO[:10]
}

// MonthKey devolve YYYY-MM a partir de DateISO.
func (m Movement) MonthKey() string {
	if len(m.DateISO) < 7 {
		return m.DateISO
	}
	return m.DateISO[:7]
}

// ValidMovementType indica se t é in ou out.
func ValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// ValidReason indica se r pertence ao conjunto fechado de motivos.
func ValidReason(r string) bool {
	switch r {
	case ReasonSale, ReasonConsumption, ReasonWaste, ReasonAdjust:
		return true
	}
	return false
}

// ParseDate aceita YYYY-MM-DD ou RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
