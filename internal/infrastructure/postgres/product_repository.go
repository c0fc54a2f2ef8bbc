package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

var productColumns = []string{"id", "nome", "unidade", "minimo", "preco", "categoria"}

// ProductRepo implementação de ProductRepository sobre PostgreSQL (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de persistência de produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

type productRow struct {
	ID       string              `db:"id"`
	Name     string              `db:"nome"`
	Unit     string              `db:"unidade"`
	MinStock decimal.Decimal     `db:"minimo"`
	Price    decimal.NullDecimal `db:"preco"`
	Category string              `db:"categoria"`
}

func (row productRow) toEntity() *entity.Product {
	p := &entity.Product{
		ID:       row.ID,
		Name:     row.Name,
		Unit:     row.Unit,
		MinStock: row.MinStock,
		Category: row.Category,
	}
	if row.Price.Valid {
		v := row.Price.Decimal
		p.Price = &v
	}
	return p
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query, args, err := psql().Insert("produtos").Columns(productColumns...).
		Values(p.ID, p.Name, p.Unit, p.MinStock, nullDecimal(p.Price), p.Category).ToSql()
	if err != nil {
		return fmt.Errorf("build insert product: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isPrimaryKeyViolation(err) {
			return domain.ErrConflict
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, "id", id)
}

// GetByName obtém um produto pelo nome exato.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	return r.getOne(ctx, "nome", name)
}

func (r *ProductRepo) getOne(ctx context.Context, column, value string) (*entity.Product, error) {
	query, args, err := psql().Select(productColumns...).From("produtos").
		Where(squirrel.Eq{column: value}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get product: %w", err)
	}
	var row productRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity(), nil
}

// List devolve todos os produtos ordenados por nome.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query, args, err := psql().Select(productColumns...).From("produtos").OrderBy("nome", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list products: %w", err)
	}
	var rows []productRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// Update grava todos os campos do produto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query, args, err := psql().Update("produtos").
		Set("nome", p.Name).
		Set("unidade", p.Unit).
		Set("minimo", p.MinStock).
		Set("preco", nullDecimal(p.Price)).
		Set("categoria", p.Category).
		Where(squirrel.Eq{"id": p.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("build update product: %w", err)
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o produto. Os movimentos são apagados antes pelo caso de uso.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClearCategory esvazia a categoria de até limit produtos num único lote dentro de uma transação.
func (r *ProductRepo) ClearCategory(ctx context.Context, categoryName string, limit int) (updated int, remaining bool, err error) {
	if limit <= 0 {
		return 0, false, domain.ErrInvalidInput
	}
	err = runInTx(ctx, r.q, "produtos.clear_category", func(ctx context.Context, tx pgx.Tx) error {
		var ids []string
		// limit+1 para saber se sobra algum sem alterar.
		if err := pgxscan.Select(ctx, tx, &ids,
			`SELECT id FROM produtos WHERE categoria = $1 ORDER BY nome, id LIMIT $2 FOR UPDATE`,
			categoryName, limit+1); err != nil {
			return fmt.Errorf("select products by category: %w", err)
		}
		if len(ids) > limit {
			remaining = true
			ids = ids[:limit]
		}
		batch := &pgx.Batch{}
		for _, id := range ids {
			batch.Queue(`UPDATE produtos SET categoria = '' WHERE id = $1`, id)
		}
		if err := sendBatch(ctx, tx, batch); err != nil {
			return fmt.Errorf("clear category batch: %w", err)
		}
		updated = len(ids)
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return updated, remaining, nil
}
