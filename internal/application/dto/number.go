package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Quantidades e preços saem como números JSON, não como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// NumberState distingue campo ausente de campo presente mas inválido.
type NumberState uint8

const (
	NumberAbsent NumberState = iota
	NumberInvalid
	NumberValid
)

// Number aceita número JSON ou string numérica ("12", "12.5", " 3 ").
// Nunca falha o decode: um valor que não é número fica com State NumberInvalid.
type Number struct {
	State NumberState
	Value decimal.Decimal
}

// UnmarshalJSON implementa json.Unmarshaler. null equivale a ausente.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	n.Value = decimal.Zero
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		n.State = NumberAbsent
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			n.State = NumberInvalid
			return nil
		}
		raw = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		n.State = NumberInvalid
		return nil
	}
	n.State = NumberValid
	n.Value = d
	return nil
}

// Valid indica se o campo trouxe um número.
func (n Number) Valid() bool { return n.State == NumberValid }

// Optional devolve o valor quando válido; ausente e inválido viram nil.
func (n Number) Optional() *decimal.Decimal {
	if n.State != NumberValid {
		return nil
	}
	v := n.Value
	return &v
}
