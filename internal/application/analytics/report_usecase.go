package analytics

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

const (
	defaultReportDays = 30
	defaultTop        = 6
	maxTop            = 100
	// maxBuckets limita o tamanho da série (dias ou meses).
	maxBuckets = 3660
)

// ReportUseCase relatório de movimentos: KPIs, série temporal e top de consumo.
type ReportUseCase struct {
	loader *Loader
	clock  func() time.Time
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(loader *Loader, clock func() time.Time) *ReportUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &ReportUseCase{loader: loader, clock: clock}
}

// Summary aplica os filtros (com padrões) e agrega os movimentos do período.
func (uc *ReportUseCase) Summary(ctx context.Context, in dto.ReportRequest) (*dto.ReportSummaryDTO, error) {
	filters, start, end, err := uc.resolve(in)
	if err != nil {
		return nil, err
	}
	snap, err := uc.loader.Load(ctx, repository.MovementFilter{
		Type:      movementType(filters.Tipo),
		DateFrom:  filters.De,
		DateTo:    filters.Ate,
		ProductID: filters.ProductID,
	})
	if err != nil {
		return nil, err
	}
	totals := inventory.Summarize(snap.Movements)
	return &dto.ReportSummaryDTO{
		Success: true,
		Filtros: filters,
		KPIs: dto.KPIsDTO{
			Entradas:   totals.Entries,
			Saidas:     totals.Exits,
			Saldo:      totals.Balance,
			Movimentos: totals.Count,
		},
		Series: seriesDTO(inventory.TimeSeries(snap.Movements, filters.Agrupar, start, end)),
		Top:    topDTOs(inventory.TopConsumption(snap.Movements, filters.Top), snap.ProductsByID()),
	}, nil
}

func (uc *ReportUseCase) resolve(in dto.ReportRequest) (dto.ReportFiltersDTO, time.Time, time.Time, error) {
	f := dto.ReportFiltersDTO{
		Tipo:      strings.TrimSpace(in.Tipo),
		ProductID: strings.TrimSpace(in.ProductID),
		Agrupar:   strings.TrimSpace(in.Agrupar),
		Top:       parseTop(in.Top),
	}
	if f.Tipo == "" {
		f.Tipo = inventory.TypeAll
	}
	if f.Tipo != inventory.TypeAll && !entity.ValidMovementType(f.Tipo) {
		return f, time.Time{}, time.Time{}, fmt.Errorf("%w: tipo deve ser all, in ou out", domain.ErrInvalidInput)
	}
	if f.Agrupar == "" {
		f.Agrupar = inventory.GroupByDay
	}
	if !inventory.ValidGroupBy(f.Agrupar) {
		return f, time.Time{}, time.Time{}, fmt.Errorf("%w: agrupar deve ser day ou month", domain.ErrInvalidInput)
	}

	end := usecase.Today(uc.clock())
	if raw := strings.TrimSpace(in.Ate); raw != "" {
		t, err := parseDay(raw, "ate")
		if err != nil {
			return f, time.Time{}, time.Time{}, err
		}
		end = t
	}
	start := end.AddDate(0, 0, -(defaultReportDays - 1))
	if raw := strings.TrimSpace(in.De); raw != "" {
		t, err := parseDay(raw, "de")
		if err != nil {
			return f, time.Time{}, time.Time{}, err
		}
		start = t
	}
	if start.After(end) {
		return f, time.Time{}, time.Time{}, fmt.Errorf("%w: de deve ser anterior ou igual a ate", domain.ErrInvalidInput)
	}
	if bucketCount(f.Agrupar, start, end) > maxBuckets {
		return f, time.Time{}, time.Time{}, fmt.Errorf("%w: período longo demais para o agrupamento", domain.ErrInvalidInput)
	}
	f.De = start.Format(entity.DateLayout)
	f.Ate = end.Format(entity.DateLayout)
	return f, start, end, nil
}

func parseDay(raw, field string) (time.Time, error) {
	if len(raw) > len(entity.DateLayout) {
		raw = raw[:len(entity.DateLayout)]
	}
	t, err := time.Parse(entity.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s deve ser uma data AAAA-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

func bucketCount(groupBy string, start, end time.Time) int {
	if groupBy == inventory.GroupByMonth {
		return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// parseTop: vazio, inválido ou <= 0 usa o padrão; acima do teto é truncado.
func parseTop(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return defaultTop
	}
	if n > maxTop {
		return maxTop
	}
	return n
}

func movementType(tipo string) string {
	if tipo == inventory.TypeAll {
		return ""
	}
	return tipo
}

func seriesDTO(s inventory.Series) dto.SeriesDTO {
	return dto.SeriesDTO{Labels: s.Labels, Entradas: s.Entries, Saidas: s.Exits, Saldo: s.Balance}
}

// topDTOs resolve o nome de cada produto; produto já excluído sai com nome vazio.
func topDTOs(top []inventory.Consumption, products map[string]*entity.Product) []dto.TopConsumptionDTO {
	out := make([]dto.TopConsumptionDTO, 0, len(top))
	for _, c := range top {
		item := dto.TopConsumptionDTO{ProductID: c.ProductID, Total: c.Total}
		if p, ok := products[c.ProductID]; ok {
			item.Nome = p.Name
		}
		out = append(out, item)
	}
	return out
}
