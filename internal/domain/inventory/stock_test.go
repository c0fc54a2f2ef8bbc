package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func mov(productID, tipo string, qty float64, dateISO string) *entity.Movement {
	return &entity.Movement{ProductID: productID, Type: tipo, Quantity: dec(qty), DateISO: dateISO}
}

func lot(productID string, qty float64, expiry string) *entity.Movement {
	m := mov(productID, entity.MovementTypeIn, qty, "2024-01-01T10:00:00Z")
	m.LotExpiry = expiry
	return m
}

func TestStockOf_SomaComSinal(t *testing.T) {
	ledger := []*entity.Movement{
		mov("arroz", entity.MovementTypeIn, 40, "2024-01-01"),
		mov("arroz", entity.MovementTypeOut, 18, "2024-01-02"),
		mov("feijao", entity.MovementTypeIn, 7, "2024-01-02"),
	}
	assert.True(t, inventory.StockOf("arroz", ledger).Equal(dec(22)))
	assert.True(t, inventory.StockOf("feijao", ledger).Equal(dec(7)))
}

func TestStockOf_SemMovimentosDevolveZero(t *testing.T) {
	assert.True(t, inventory.StockOf("x", nil).IsZero())
	assert.True(t, inventory.StockOf("x", []*entity.Movement{mov("y", "in", 3, "2024-01-01")}).IsZero())
}

func TestStockOf_PodeFicarNegativo(t *testing.T) {
	ledger := []*entity.Movement{mov("p", entity.MovementTypeOut, 5, "2024-01-01")}
	assert.True(t, inventory.StockOf("p", ledger).Equal(dec(-5)))
	assert.Equal(t, inventory.StatusEmpty, inventory.StatusOf(dec(-5), dec(1)))
}

func TestStockOf_IndependeDaOrdem(t *testing.T) {
	ledger := []*entity.Movement{
		mov("p", entity.MovementTypeIn, 10.5, "2024-01-01"),
		mov("p", entity.MovementTypeOut, 3.25, "2024-01-02"),
		mov("p", entity.MovementTypeIn, 1, "2024-01-03"),
		mov("q", entity.MovementTypeIn, 100, "2024-01-03"),
		mov("p", entity.MovementTypeOut, 0.25, "2024-01-04"),
	}
	want := inventory.StockOf("p", ledger)
	require.True(t, want.Equal(dec(8)))

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]*entity.Movement(nil), ledger...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.True(t, inventory.StockOf("p", shuffled).Equal(want))
	}
}

func TestStockByProduct_CoincideComStockOf(t *testing.T) {
	ledger := []*entity.Movement{
		mov("a", entity.MovementTypeIn, 4, "2024-01-01"),
		mov("b", entity.MovementTypeIn, 9, "2024-01-01"),
		mov("a", entity.MovementTypeOut, 1, "2024-01-02"),
	}
	all := inventory.StockByProduct(ledger)
	for _, id := range []string{"a", "b"} {
		assert.True(t, all[id].Equal(inventory.StockOf(id, ledger)), id)
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, inventory.StatusEmpty, inventory.StatusOf(dec(0), dec(10)))
	assert.Equal(t, inventory.StatusLow, inventory.StatusOf(dec(10), dec(10)))
	assert.Equal(t, inventory.StatusLow, inventory.StatusOf(dec(0.5), dec(10)))
	assert.Equal(t, inventory.StatusOK, inventory.StatusOf(dec(11), dec(10)))
	assert.Equal(t, inventory.StatusOK, inventory.StatusOf(dec(1), dec(0)))
}

// Cenário: Arroz com mínimo 10, entrada 40, saída 18 → 22 (ok); saída 5 e mínimo 20 → 17 (low).
func TestCenarioArroz_StatusRecalculadoSemCampoArmazenado(t *testing.T) {
	arroz := &entity.Product{ID: "arroz", Name: "Arroz", Unit: "kg", MinStock: dec(10)}
	ledger := []*entity.Movement{
		mov("arroz", entity.MovementTypeIn, 40, "2024-03-01T08:00:00Z"),
		mov("arroz", entity.MovementTypeOut, 18, "2024-03-02T08:00:00Z"),
	}
	stock := inventory.StockOf(arroz.ID, ledger)
	assert.True(t, stock.Equal(dec(22)))
	assert.Equal(t, inventory.StatusOK, inventory.StatusOf(stock, arroz.MinStock))

	ledger = append(ledger, mov("arroz", entity.MovementTypeOut, 5, "2024-03-03T08:00:00Z"))
	arroz.MinStock = dec(20)
	stock = inventory.StockOf(arroz.ID, ledger)
	assert.True(t, stock.Equal(dec(17)))
	assert.Equal(t, inventory.StatusLow, inventory.StatusOf(stock, arroz.MinStock))
}

func TestNearestExpiry(t *testing.T) {
	asOf := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	ledger := []*entity.Movement{
		lot("leite", 10, "2024-05-01"), // vencido
		lot("leite", 10, "2024-06-01"),
		lot("leite", 10, "2024-05-20"),
		lot("leite", 10, ""),
		lot("leite", 10, "não é data"),
		lot("ovos", 10, "2024-05-11"),
	}
	out := mov("leite", entity.MovementTypeOut, 1, "2024-05-02")
	out.LotExpiry = "2024-05-12" // saídas não contam
	ledger = append(ledger, out)

	got, ok := inventory.NearestExpiry("leite", ledger, asOf)
	require.True(t, ok)
	assert.Equal(t, "2024-05-20", got.Format(entity.DateLayout))

	_, ok = inventory.NearestExpiry("arroz", ledger, asOf)
	assert.False(t, ok)
}

func TestNearestExpiry_SomenteVencidos(t *testing.T) {
	asOf := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	_, ok := inventory.NearestExpiry("p", []*entity.Movement{lot("p", 1, "2024-05-09")}, asOf)
	assert.False(t, ok)
}
