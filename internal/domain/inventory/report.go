package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

// Agrupamentos da série temporal.
const (
	GroupByDay   = "day"
	GroupByMonth = "month"
)

// TypeAll valor de tipo que desliga o filtro por tipo.
const TypeAll = "all"

// Series entradas, saídas e saldo por período. Labels são chaves YYYY-MM-DD ou YYYY-MM.
type Series struct {
	Labels  []string
	Entries []decimal.Decimal
	Exits   []decimal.Decimal
	Balance []decimal.Decimal
}

// Totals indicadores de quantidade de um conjunto de movimentos.
type Totals struct {
	Entries decimal.Decimal
	Exits   decimal.Decimal
	Balance decimal.Decimal
	Count   int
}

// Consumption total de saídas de um produto.
type Consumption struct {
	ProductID string
	Total     decimal.Decimal
}

// ValidGroupBy indica se g é day ou month.
func ValidGroupBy(g string) bool {
	return g == GroupByDay || g == GroupByMonth
}

// SpanKeys gera todas as chaves de período entre start e end, inclusive.
// Com start depois de end devolve lista vazia.
func SpanKeys(groupBy string, start, end time.Time) []string {
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	keys := make([]string, 0)
	if groupBy == GroupByMonth {
		cur := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(b.Year(), b.Month(), 1, 0, 0, 0, 0, time.UTC)
		for !cur.After(last) {
			keys = append(keys, cur.Format("2006-01"))
			cur = cur.AddDate(0, 1, 0)
		}
		return keys
	}
	for d := a; !d.After(b); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(entity.DateLayout))
	}
	return keys
}

// TimeSeries soma as quantidades por período e tipo. Períodos sem movimento aparecem com zero.
// Movimentos fora de [start, end] são ignorados; o filtro por data deve ser aplicado antes.
func TimeSeries(movements []*entity.Movement, groupBy string, start, end time.Time) Series {
	keys := SpanKeys(groupBy, start, end)
	index := make(map[string]int, len(keys))
	s := Series{
		Labels:  keys,
		Entries: make([]decimal.Decimal, len(keys)),
		Exits:   make([]decimal.Decimal, len(keys)),
		Balance: make([]decimal.Decimal, len(keys)),
	}
	for i, k := range keys {
		index[k] = i
		s.Entries[i] = decimal.Zero
		s.Exits[i] = decimal.Zero
	}
	for _, m := range movements {
		if m == nil {
			continue
		}
		k := m.DayKey()
		if groupBy == GroupByMonth {
			k = m.MonthKey()
		}
		i, ok := index[k]
		if !ok {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIn:
			s.Entries[i] = s.Entries[i].Add(m.Quantity)
		case entity.MovementTypeOut:
			s.Exits[i] = s.Exits[i].Add(m.Quantity)
		}
	}
	for i := range keys {
		s.Balance[i] = s.Entries[i].Sub(s.Exits[i])
	}
	return s
}

// TopConsumption agrupa as saídas por produto e devolve os limit maiores totais.
// Empates mantêm a ordem da primeira ocorrência do produto em movements.
func TopConsumption(movements []*entity.Movement, limit int) []Consumption {
	index := make(map[string]int)
	out := make([]Consumption, 0)
	for _, m := range movements {
		if m == nil || m.Type != entity.MovementTypeOut {
			continue
		}
		i, ok := index[m.ProductID]
		if !ok {
			i = len(out)
			index[m.ProductID] = i
			out = append(out, Consumption{ProductID: m.ProductID, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(m.Quantity)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Summarize calcula entradas, saídas, saldo e contagem.
func Summarize(movements []*entity.Movement) Totals {
	t := Totals{Entries: decimal.Zero, Exits: decimal.Zero}
	for _, m := range movements {
		if m == nil {
			continue
		}
		t.Count++
		switch m.Type {
		case entity.MovementTypeIn:
			t.Entries = t.Entries.Add(m.Quantity)
		case entity.MovementTypeOut:
			t.Exits = t.Exits.Add(m.Quantity)
		}
	}
	t.Balance = t.Entries.Sub(t.Exits)
	return t
}

// FilterMovements aplica os filtros opcionais preservando a ordem de entrada.
// As datas comparam o dia do movimento (YYYY-MM-DD) como texto, o que vale por ter largura fixa.
func FilterMovements(movements []*entity.Movement, f repository.MovementFilter) []*entity.Movement {
	out := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if m == nil {
			continue
		}
		if MatchesFilter(m, f) {
			out = append(out, m)
		}
	}
	return out
}

// MatchesFilter indica se m passa pelo filtro.
func MatchesFilter(m *entity.Movement, f repository.MovementFilter) bool {
	if f.Type != "" && f.Type != TypeAll && m.Type != f.Type {
		return false
	}
	day := m.DayKey()
	if f.DateFrom != "" && day < f.DateFrom {
		return false
	}
	if f.DateTo != "" && day > f.DateTo {
		return false
	}
	if f.ProductID != "" && m.ProductID != f.ProductID {
		return false
	}
	return true
}
