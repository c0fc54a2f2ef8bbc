package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
)

func product(id string, minStock float64) *entity.Product {
	return &entity.Product{ID: id, Name: id, Unit: "un", MinStock: dec(minStock)}
}

func TestLowStockReport_EsgotadosPrimeiroDepoisMenorEstoque(t *testing.T) {
	products := []*entity.Product{
		product("ok", 5),
		product("baixo8", 10),
		product("zero", 3),
		product("baixo2", 10),
		product("negativo", 3),
	}
	ledger := []*entity.Movement{
		mov("ok", entity.MovementTypeIn, 50, "2024-01-01"),
		mov("baixo8", entity.MovementTypeIn, 8, "2024-01-01"),
		mov("baixo2", entity.MovementTypeIn, 2, "2024-01-01"),
		mov("negativo", entity.MovementTypeOut, 4, "2024-01-01"),
	}

	items := inventory.LowStockReport(products, ledger)
	require.Len(t, items, 4)

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Product.ID)
	}
	assert.Equal(t, []string{"negativo", "zero", "baixo2", "baixo8"}, ids)

	assert.Equal(t, inventory.StatusEmpty, items[0].Status)
	assert.True(t, items[0].Shortage.Equal(dec(7)))
	assert.Equal(t, inventory.StatusLow, items[2].Status)
	assert.True(t, items[2].Shortage.Equal(dec(8)))
	assert.True(t, items[3].MinStock.Equal(dec(10)))
}

func TestLowStockReport_TodosEsgotadosAntesDeBaixos(t *testing.T) {
	products := []*entity.Product{product("a", 100), product("b", 0), product("c", 100), product("d", 1)}
	ledger := []*entity.Movement{
		mov("a", entity.MovementTypeIn, 1, "2024-01-01"),
		mov("c", entity.MovementTypeIn, 50, "2024-01-01"),
		mov("d", entity.MovementTypeOut, 2, "2024-01-01"),
	}
	items := inventory.LowStockReport(products, ledger)
	seenLow := false
	for _, it := range items {
		if it.Status == inventory.StatusLow {
			seenLow = true
			continue
		}
		assert.False(t, seenLow, "esgotado depois de baixo: %s", it.Product.ID)
	}
}

func TestLowStockReport_SemProdutos(t *testing.T) {
	items := inventory.LowStockReport(nil, nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestExpirationReport_JanelaInclusivaEOrdenada(t *testing.T) {
	asOf := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	products := []*entity.Product{
		product("hoje", 0),
		product("dez", 0),
		product("onze", 0),
		product("tres", 0),
		product("vencido", 0),
		product("sem-lote", 0),
	}
	ledger := []*entity.Movement{
		lot("hoje", 1, "2024-05-10"),
		lot("dez", 1, "2024-05-20"),
		lot("onze", 1, "2024-05-21"),
		lot("tres", 1, "2024-05-13"),
		lot("tres", 1, "2024-06-30"),
		lot("vencido", 1, "2024-05-09"),
		mov("sem-lote", entity.MovementTypeIn, 1, "2024-05-01"),
	}

	items := inventory.ExpirationReport(products, ledger, 10, asOf)
	require.Len(t, items, 3)
	assert.Equal(t, "hoje", items[0].Product.ID)
	assert.Equal(t, 0, items[0].DaysUntil)
	assert.Equal(t, "tres", items[1].Product.ID)
	assert.Equal(t, 3, items[1].DaysUntil)
	assert.Equal(t, "dez", items[2].Product.ID)
	assert.Equal(t, 10, items[2].DaysUntil)

	for _, it := range items {
		assert.False(t, it.ExpiryDate.Before(asOf))
		assert.LessOrEqual(t, it.DaysUntil, 10)
	}
}

func TestExpirationReport_FracaoDeDiaArredondaParaCima(t *testing.T) {
	// A contagem parte da meia-noite de asOf: 30h viram 2 dias.
	asOf := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	products := []*entity.Product{product("p", 0), product("q", 0)}
	ledger := []*entity.Movement{
		lot("p", 1, "2024-05-11T06:00:00Z"),
		lot("q", 1, "2024-05-11"),
	}
	items := inventory.ExpirationReport(products, ledger, 5, asOf)
	require.Len(t, items, 2)
	assert.Equal(t, "q", items[0].Product.ID)
	assert.Equal(t, 1, items[0].DaysUntil)
	assert.Equal(t, "p", items[1].Product.ID)
	assert.Equal(t, 2, items[1].DaysUntil)
}

func TestExpirationReport_ValidadeComHorarioComparaComOInstante(t *testing.T) {
	// Meia-noite de Brasília enviada como instante UTC.
	now := time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC)
	products := []*entity.Product{product("manha", 0), product("noite", 0)}
	ledger := []*entity.Movement{
		lot("manha", 1, "2024-01-09T03:00:00.000Z"),
		lot("noite", 1, "2024-01-09T18:00:00.000Z"),
	}
	items := inventory.ExpirationReport(products, ledger, 10, now)
	require.Len(t, items, 1)
	assert.Equal(t, "noite", items[0].Product.ID)
	assert.Equal(t, 1, items[0].DaysUntil)

	_, ok := inventory.NearestExpiry("manha", ledger, now)
	assert.False(t, ok)
}

func TestExpirationReport_JanelaInvalidaViraUm(t *testing.T) {
	asOf := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	products := []*entity.Product{product("p", 0)}
	ledger := []*entity.Movement{lot("p", 1, "2024-05-12")}
	assert.Empty(t, inventory.ExpirationReport(products, ledger, 0, asOf))
	assert.Empty(t, inventory.ExpirationReport(products, ledger, -4, asOf))
	assert.Len(t, inventory.ExpirationReport(products, ledger, 2, asOf), 1)
}

func TestNormalizeWindowDays(t *testing.T) {
	cases := map[string]int{
		"":      10,
		"7":     7,
		"7.9":   7,
		"0":     1,
		"-3":    1,
		"abc":   1,
		"NaN":   1,
		"0.4":   1,
		"99999": inventory.MaxWindowDays,
		" 15 ":  15,
	}
	for raw, want := range cases {
		assert.Equal(t, want, inventory.NormalizeWindowDays(raw, 10), "raw=%q", raw)
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, inventory.DaysBetween(from, from))
	assert.Equal(t, 1, inventory.DaysBetween(from, from.Add(time.Hour)))
	assert.Equal(t, 31, inventory.DaysBetween(from, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}
