package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

// DefaultWindowDays janela padrão do alerta de validade.
const DefaultWindowDays = 10

// AlertsUseCase alertas de estoque baixo e de validade próxima.
type AlertsUseCase struct {
	loader        *Loader
	defaultWindow int
	clock         func() time.Time
}

// NewAlertsUseCase constrói o caso de uso. defaultWindow <= 0 usa DefaultWindowDays.
func NewAlertsUseCase(loader *Loader, defaultWindow int, clock func() time.Time) *AlertsUseCase {
	if defaultWindow <= 0 {
		defaultWindow = DefaultWindowDays
	}
	if clock == nil {
		clock = time.Now
	}
	return &AlertsUseCase{loader: loader, defaultWindow: defaultWindow, clock: clock}
}

// LowStock lista produtos esgotados e abaixo do mínimo, esgotados primeiro.
func (uc *AlertsUseCase) LowStock(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	snap, err := uc.loader.Load(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, err
	}
	report := inventory.LowStockReport(snap.Products, snap.Movements)
	out := make([]dto.LowStockItemDTO, 0, len(report))
	for _, it := range report {
		out = append(out, dto.LowStockItemDTO{
			Produto: usecase.ToProductResponse(it.Product),
			Estoque: it.Stock,
			Minimo:  it.MinStock,
			Falta:   it.Shortage,
			Status:  it.Status,
		})
	}
	return out, nil
}

// Expiration lista os produtos cujo lote mais próximo vence em até N dias.
// rawDays é o parâmetro "dias" como veio na query; devolve também a janela aplicada.
func (uc *AlertsUseCase) Expiration(ctx context.Context, rawDays string) (int, []dto.ExpirationItemDTO, error) {
	days := inventory.NormalizeWindowDays(rawDays, uc.defaultWindow)
	snap, err := uc.loader.Load(ctx, repository.MovementFilter{})
	if err != nil {
		return 0, nil, err
	}
	report := inventory.ExpirationReport(snap.Products, snap.Movements, days, uc.clock())
	return days, expirationDTOs(report), nil
}

func expirationDTOs(report []inventory.ExpirationItem) []dto.ExpirationItemDTO {
	out := make([]dto.ExpirationItemDTO, 0, len(report))
	for _, it := range report {
		out = append(out, dto.ExpirationItemDTO{
			Produto:  usecase.ToProductResponse(it.Product),
			Validade: it.ExpiryDate.Format(entity.DateLayout),
			Dias:     it.DaysUntil,
		})
	}
	return out
}
