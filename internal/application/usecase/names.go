package usecase

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeName apara espaços e normaliza para NFC, para que "Açúcar" digitado com acento
// combinado e pré-composto seja o mesmo nome. A comparação continua sensível a maiúsculas.
func normalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
