package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
	"github.com/jhoicas/mercogestor-api/pkg/logger"
)

// ProductOptions ajustes do ProductUseCase.
type ProductOptions struct {
	Cascade CascadePolicy
	// StrictCategoryOnCreate também exige categoria existente na criação.
	// Desligado, só a atualização valida a categoria.
	StrictCategoryOnCreate bool
	Clock                  func() time.Time
}

// ProductUseCase CRUD de produtos. O estoque nunca é gravado: sai dos movimentos a cada leitura.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	movements  repository.MovementRepository
	opts       ProductOptions
	log        *logger.Logger
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	movements repository.MovementRepository,
	opts ProductOptions,
	log *logger.Logger,
) *ProductUseCase {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &ProductUseCase{products: products, categories: categories, movements: movements, opts: opts, log: log.Component("produtos")}
}

// Create cadastra o produto. Nome, unidade e mínimo são obrigatórios; preço inválido é ignorado.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (string, error) {
	name := normalizeName(in.Nome)
	unit := strings.TrimSpace(in.Unidade)
	if name == "" || unit == "" || !in.Minimo.Valid() {
		return "", fmt.Errorf("%w: nome, unidade e mínimo são obrigatórios", domain.ErrInvalidInput)
	}
	if in.Minimo.Value.IsNegative() {
		return "", fmt.Errorf("%w: o mínimo não pode ser negativo", domain.ErrInvalidInput)
	}
	price := in.Preco.Optional()
	if price != nil && price.IsNegative() {
		return "", fmt.Errorf("%w: o preço não pode ser negativo", domain.ErrInvalidInput)
	}
	category := normalizeName(in.Categoria)
	if category != "" && uc.opts.StrictCategoryOnCreate {
		if err := uc.ensureCategory(ctx, category); err != nil {
			return "", err
		}
	}
	existing, err := uc.products.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrDuplicateName
	}
	p := &entity.Product{
		ID:       uuid.New().String(),
		Name:     name,
		Unit:     unit,
		MinStock: in.Minimo.Value,
		Price:    price,
		Category: category,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// GetByID devolve o produto com estoque e status derivados.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movements.List(ctx, repository.MovementFilter{ProductID: id})
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(p)
	withStock(&resp, inventory.StockOf(id, movs), p.MinStock)
	return &resp, nil
}

// List devolve todos os produtos com estoque e status.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movements.List(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, err
	}
	stock := inventory.StockByProduct(movs)
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp := ToProductResponse(p)
		s, ok := stock[p.ID]
		if !ok {
			s = decimal.Zero
		}
		withStock(&resp, s, p.MinStock)
		out = append(out, resp)
	}
	return out, nil
}

// Update aplica os campos enviados. Categoria não vazia precisa existir.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	changed := 0
	if in.Nome != nil {
		name := normalizeName(*in.Nome)
		if name == "" {
			return nil, fmt.Errorf("%w: o nome não pode ser vazio", domain.ErrInvalidInput)
		}
		if name != p.Name {
			existing, err := uc.products.GetByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != p.ID {
				return nil, domain.ErrDuplicateName
			}
		}
		p.Name = name
		changed++
	}
	if in.Unidade != nil {
		unit := strings.TrimSpace(*in.Unidade)
		if unit == "" {
			return nil, fmt.Errorf("%w: a unidade não pode ser vazia", domain.ErrInvalidInput)
		}
		p.Unit = unit
		changed++
	}
	if in.Minimo.Valid() {
		if in.Minimo.Value.IsNegative() {
			return nil, fmt.Errorf("%w: o mínimo não pode ser negativo", domain.ErrInvalidInput)
		}
		p.MinStock = in.Minimo.Value
		changed++
	}
	if price := in.Preco.Optional(); price != nil {
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: o preço não pode ser negativo", domain.ErrInvalidInput)
		}
		p.Price = price
		changed++
	}
	if in.Categoria != nil {
		category := normalizeName(*in.Categoria)
		if category != "" {
			if err := uc.ensureCategory(ctx, category); err != nil {
				return nil, err
			}
		}
		p.Category = category
		changed++
	}
	if changed == 0 {
		return nil, domain.ErrNoFieldsProvided
	}
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// ProductDeletion resultado da exclusão com a contagem da cascata.
type ProductDeletion struct {
	Product          dto.ProductResponse
	MovementsDeleted int
	Remaining        bool
}

// Delete apaga os movimentos do produto (em lotes, conforme a política) e depois o produto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*ProductDeletion, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	deleted, remaining, err := uc.opts.Cascade.run(ctx, func(ctx context.Context, limit int) (int, bool, error) {
		return uc.movements.DeleteByProduct(ctx, id, limit)
	})
	if err != nil {
		return nil, fmt.Errorf("apagar movimentos do produto: %w", err)
	}
	uc.log.Debug().Str("product_id", id).Int("movimentos", deleted).Msg("cascata de produto")
	if remaining {
		uc.log.Warn().Str("product_id", id).Int("movimentos", deleted).Int("limite", uc.opts.Cascade.limit()).
			Msg("movimentos além do limite do lote não foram apagados")
	}
	if err := uc.products.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &ProductDeletion{Product: ToProductResponse(p), MovementsDeleted: deleted, Remaining: remaining}, nil
}

// Stock devolve estoque, status e a validade de lote mais próxima ainda não vencida.
func (uc *ProductUseCase) Stock(ctx context.Context, id string) (*dto.ProductStockResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	movs, err := uc.movements.List(ctx, repository.MovementFilter{ProductID: id})
	if err != nil {
		return nil, err
	}
	stock := inventory.StockOf(id, movs)
	resp := &dto.ProductStockResponse{
		Success:   true,
		ProductID: id,
		Estoque:   stock,
		Minimo:    p.MinStock,
		Status:    inventory.StatusOf(stock, p.MinStock),
	}
	if exp, ok := inventory.NearestExpiry(id, movs, uc.opts.Clock()); ok {
		resp.ProximaValidade = exp.Format(entity.DateLayout)
	}
	return resp, nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *ProductUseCase) ensureCategory(ctx context.Context, name string) error {
	c, err := uc.categories.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// ToProductResponse converte a entidade sem estoque.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Nome:      p.Name,
		Unidade:   p.Unit,
		Minimo:    p.MinStock,
		Preco:     p.Price,
		Categoria: p.Category,
	}
}

func withStock(resp *dto.ProductResponse, stock, minStock decimal.Decimal) {
	s := stock
	resp.Estoque = &s
	resp.Status = inventory.StatusOf(stock, minStock)
}

// Today devolve a meia-noite UTC do dia de t: origem da contagem de dias e fim padrão dos relatórios.
func Today(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
