package inventory

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
)

// MaxWindowDays limite superior para a janela de validade.
const MaxWindowDays = 3650

// LowStockItem linha do alerta de estoque baixo/esgotado.
type LowStockItem struct {
	Product  *entity.Product
	Stock    decimal.Decimal
	MinStock decimal.Decimal
	Shortage decimal.Decimal // max(0, mínimo - estoque)
	Status   string
}

// LowStockReport lista os produtos esgotados ou abaixo do mínimo.
// Esgotados vêm antes dos baixos; dentro de cada grupo, menor estoque primeiro.
func LowStockReport(products []*entity.Product, movements []*entity.Movement) []LowStockItem {
	stock := StockByProduct(movements)
	items := make([]LowStockItem, 0)
	for _, p := range products {
		if p == nil {
			continue
		}
		s := stock[p.ID]
		status := StatusOf(s, p.MinStock)
		if status == StatusOK {
			continue
		}
		items = append(items, LowStockItem{
			Product:  p,
			Stock:    s,
			MinStock: p.MinStock,
			Shortage: decimal.Max(decimal.Zero, p.MinStock.Sub(s)),
			Status:   status,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Status != b.Status {
			return a.Status == StatusEmpty
		}
		return a.Stock.LessThan(b.Stock)
	})
	return items
}

// ExpirationItem linha do alerta de validade próxima.
type ExpirationItem struct {
	Product    *entity.Product
	ExpiryDate time.Time
	DaysUntil  int
}

// ExpirationReport lista os produtos cuja validade mais próxima ainda não passou em now e cai em
// [0, windowDays] dias, contados da meia-noite UTC de now (fração arredondada para cima).
// Ordena por DaysUntil.
func ExpirationReport(products []*entity.Product, movements []*entity.Movement, windowDays int, now time.Time) []ExpirationItem {
	if windowDays < 1 {
		windowDays = 1
	}
	byProduct := make(map[string][]*entity.Movement)
	for _, m := range movements {
		if m == nil || m.Type != entity.MovementTypeIn || m.LotExpiry == "" {
			continue
		}
		byProduct[m.ProductID] = append(byProduct[m.ProductID], m)
	}

	today := startOfDay(now.UTC())
	items := make([]ExpirationItem, 0)
	for _, p := range products {
		if p == nil {
			continue
		}
		nearest, ok := NearestExpiry(p.ID, byProduct[p.ID], now)
		if !ok {
			continue
		}
		days := DaysBetween(today, nearest)
		if days < 0 || days > windowDays {
			continue
		}
		items = append(items, ExpirationItem{Product: p, ExpiryDate: nearest, DaysUntil: days})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntil < items[j].DaysUntil
	})
	return items
}

// DaysBetween devolve ceil((to - from) / 24h).
func DaysBetween(from, to time.Time) int {
	return int(math.Ceil(float64(to.Sub(from)) / float64(24*time.Hour)))
}

// NormalizeWindowDays converte o parâmetro "dias". Vazio usa def; não numérico ou <= 0 vira 1.
func NormalizeWindowDays(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return clampWindow(def)
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || n <= 0 {
		return 1
	}
	if math.IsInf(n, 1) || n > MaxWindowDays {
		return MaxWindowDays
	}
	return clampWindow(int(math.Floor(n)))
}

func clampWindow(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxWindowDays {
		return MaxWindowDays
	}
	return n
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
