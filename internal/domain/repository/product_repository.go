package repository

import (
	"context"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
)

// ProductRepository define a porta de persistência para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// ClearCategory limpa o campo categoria de até limit produtos cujo valor é categoryName,
	// numa única escrita em lote atômica. remaining indica que ficaram produtos sem alterar.
	ClearCategory(ctx context.Context, categoryName string, limit int) (updated int, remaining bool, err error)
}
