package repository

import (
	"context"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
)

// MovementFilter filtros opcionais para listagem de movimentos.
// Type vazio ou "all" não filtra; DateFrom/DateTo são YYYY-MM-DD inclusivos sobre o dia do movimento.
type MovementFilter struct {
	Type      string
	DateFrom  string
	DateTo    string
	ProductID string
}

// MovementRepository define a porta de persistência do livro de movimentos.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
	Update(ctx context.Context, movement *entity.Movement) error
	Delete(ctx context.Context, id string) error

	// DeleteByProduct apaga até limit movimentos do produto numa única escrita em lote atômica.
	DeleteByProduct(ctx context.Context, productID string, limit int) (deleted int, remaining bool, err error)
}
