package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

const (
	dashboardTop  = 5  // produtos no widget de consumo
	dashboardDays = 30 // dias da série
)

// DashboardUseCase gera o resumo da tela inicial.
//
// Uma leitura de produtos e movimentos alimenta tudo:
//  1. totais de produtos e de estoque
//  2. contagem de estoque baixo e de validade próxima
//  3. série diária dos últimos 30 dias e top 5 de consumo no mesmo período
type DashboardUseCase struct {
	loader     *Loader
	windowDays int
	clock      func() time.Time
}

// NewDashboardUseCase constrói o caso de uso. windowDays <= 0 usa DefaultWindowDays.
func NewDashboardUseCase(loader *Loader, windowDays int, clock func() time.Time) *DashboardUseCase {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if clock == nil {
		clock = time.Now
	}
	return &DashboardUseCase{loader: loader, windowDays: windowDays, clock: clock}
}

// GetSummary monta o DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.clock()
	today := usecase.Today(now)
	from := today.AddDate(0, 0, -(dashboardDays - 1))

	snap, err := uc.loader.Load(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	stock := inventory.StockByProduct(snap.Movements)
	total := decimal.Zero
	for _, p := range snap.Products {
		if s, ok := stock[p.ID]; ok {
			total = total.Add(s)
		}
	}

	recent := inventory.FilterMovements(snap.Movements, repository.MovementFilter{
		DateFrom: from.Format(entity.DateLayout),
		DateTo:   today.Format(entity.DateLayout),
	})

	return &dto.DashboardSummaryDTO{
		Success:         true,
		TotalProdutos:   len(snap.Products),
		TotalEstoque:    total,
		BaixoEstoque:    len(inventory.LowStockReport(snap.Products, snap.Movements)),
		PertoVencimento: len(inventory.ExpirationReport(snap.Products, snap.Movements, uc.windowDays, now)),
		Series:          seriesDTO(inventory.TimeSeries(recent, inventory.GroupByDay, from, today)),
		Top:             topDTOs(inventory.TopConsumption(recent, dashboardTop), snap.ProductsByID()),
	}, nil
}
