package repository

import (
	"context"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
)

// CategoryRepository define a porta de persistência para Category (DIP).
// GetByID e GetByName devolvem (nil, nil) quando não existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
