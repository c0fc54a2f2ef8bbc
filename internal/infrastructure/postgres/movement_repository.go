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
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

var movementColumns = []string{"id", "product_id", "tipo", "quantidade", "data_iso", "preco_unitario", "validade_lote", "motivo"}

// MovementRepo livro de movimentos sobre PostgreSQL. A tabela não tem FK para produtos:
// a integridade é garantida pelos casos de uso.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

type movementRow struct {
	ID        string              `db:"id"`
	ProductID string              `db:"product_id"`
	Type      string              `db:"tipo"`
	Quantity  decimal.Decimal     `db:"quantidade"`
	DateISO   string              `db:"data_iso"`
	UnitPrice decimal.NullDecimal `db:"preco_unitario"`
	LotExpiry string              `db:"validade_lote"`
	Reason    string              `db:"motivo"`
}

func (row movementRow) toEntity() *entity.Movement {
	m := &entity.Movement{
		ID:        row.ID,
		ProductID: row.ProductID,
		Type:      row.Type,
		Quantity:  row.Quantity,
		DateISO:   row.DateISO,
		LotExpiry: row.LotExpiry,
		Reason:    row.Reason,
	}
	if row.UnitPrice.Valid {
		v := row.UnitPrice.Decimal
		m.UnitPrice = &v
	}
	return m
}

func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query, args, err := psql().Insert("movimentos").Columns(movementColumns...).
		Values(m.ID, m.ProductID, m.Type, m.Quantity, m.DateISO, nullDecimal(m.UnitPrice), m.LotExpiry, m.Reason).ToSql()
	if err != nil {
		return fmt.Errorf("build insert movement: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query, args, err := psql().Select(movementColumns...).From("movimentos").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get movement: %w", err)
	}
	var row movementRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return row.toEntity(), nil
}

// List aplica o filtro no servidor.
func (r *MovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	query, args, err := movementListQuery(f)
	if err != nil {
		return nil, fmt.Errorf("build list movements: %w", err)
	}
	var rows []movementRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	out := make([]*entity.Movement, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// movementListQuery monta o SELECT filtrado. As datas comparam os 10 primeiros caracteres de data_iso.
func movementListQuery(f repository.MovementFilter) (string, []any, error) {
	q := psql().Select(movementColumns...).From("movimentos").OrderBy("data_iso", "seq")
	if f.Type != "" && f.Type != inventory.TypeAll {
		q = q.Where(squirrel.Eq{"tipo": f.Type})
	}
	if f.DateFrom != "" {
		q = q.Where("substr(data_iso, 1, 10) >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("substr(data_iso, 1, 10) <= ?", f.DateTo)
	}
	if f.ProductID != "" {
		q = q.Where(squirrel.Eq{"product_id": f.ProductID})
	}
	return q.ToSql()
}

func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	query, args, err := psql().Update("movimentos").
		Set("product_id", m.ProductID).
		Set("tipo", m.Type).
		Set("quantidade", m.Quantity).
		Set("data_iso", m.DateISO).
		Set("preco_unitario", nullDecimal(m.UnitPrice)).
		Set("validade_lote", m.LotExpiry).
		Set("motivo", m.Reason).
		Where(squirrel.Eq{"id": m.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("build update movement: %w", err)
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM movimentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByProduct apaga até limit movimentos do produto num único lote dentro de uma transação.
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string, limit int) (deleted int, remaining bool, err error) {
	if limit <= 0 {
		return 0, false, domain.ErrInvalidInput
	}
	err = runInTx(ctx, r.q, "movimentos.delete_by_product", func(ctx context.Context, tx pgx.Tx) error {
		var ids []string
		if err := pgxscan.Select(ctx, tx, &ids,
			`SELECT id FROM movimentos WHERE product_id = $1 ORDER BY data_iso, seq LIMIT $2 FOR UPDATE`,
			productID, limit+1); err != nil {
			return fmt.Errorf("select movements by product: %w", err)
		}
		if len(ids) > limit {
			remaining = true
			ids = ids[:limit]
		}
		batch := &pgx.Batch{}
		for _, id := range ids {
			batch.Queue(`DELETE FROM movimentos WHERE id = $1`, id)
		}
		if err := sendBatch(ctx, tx, batch); err != nil {
			return fmt.Errorf("delete movements batch: %w", err)
		}
		deleted = len(ids)
		return nil
	})
	if err != nil {
		return 0, false, err
	}
	return deleted, remaining, nil
}
