package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
	"github.com/jhoicas/mercogestor-api/pkg/logger"
)

// CategoryUseCase CRUD de categorias. Excluir uma categoria limpa o campo nos produtos que a usam.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	cascade    CascadePolicy
	log        *logger.Logger
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository, cascade CascadePolicy, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products, cascade: cascade, log: log.Component("categorias")}
}

// Create cadastra a categoria e devolve o id gerado.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (string, error) {
	name := normalizeName(in.Categoria)
	if name == "" {
		return "", fmt.Errorf("%w: o nome da categoria é obrigatório", domain.ErrInvalidInput)
	}
	existing, err := uc.categories.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrDuplicateName
	}
	c := &entity.Category{ID: uuid.New().String(), Name: name}
	if err := uc.categories.Create(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

// List devolve todas as categorias (lista vazia quando não há nenhuma).
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update renomeia a categoria. Os produtos guardam o nome antigo: renomear não os altera.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Categoria == nil {
		return nil, domain.ErrNoFieldsProvided
	}
	name := normalizeName(*in.Categoria)
	if name == "" {
		return nil, fmt.Errorf("%w: o nome da categoria é obrigatório", domain.ErrInvalidInput)
	}
	if name != c.Name {
		existing, err := uc.categories.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != c.ID {
			return nil, domain.ErrDuplicateName
		}
	}
	c.Name = name
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(c)
	return &resp, nil
}

// CategoryDeletion resultado da exclusão com a contagem da cascata.
type CategoryDeletion struct {
	Category        dto.CategoryResponse
	ProductsCleared int
	Remaining       bool
}

// Delete limpa a categoria dos produtos (em lotes, conforme a política) e remove a categoria.
// A leitura e o lote não formam uma transação única.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (*CategoryDeletion, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	cleared, remaining, err := uc.cascade.run(ctx, func(ctx context.Context, limit int) (int, bool, error) {
		return uc.products.ClearCategory(ctx, c.Name, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("limpar categoria dos produtos: %w", err)
	}
	uc.log.Debug().Str("categoria", c.Name).Int("produtos", cleared).Msg("cascata de categoria")
	if remaining {
		uc.log.Warn().Str("categoria", c.Name).Int("produtos", cleared).Int("limite", uc.cascade.limit()).
			Msg("produtos além do limite do lote ficaram com a categoria")
	}
	if err := uc.categories.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &CategoryDeletion{Category: toCategoryResponse(c), ProductsCleared: cleared, Remaining: remaining}, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Categoria: c.Name}
}
