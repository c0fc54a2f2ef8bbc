package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

var (
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.CredentialRepository = (*CredentialRepo)(nil)
)

// UserRepo perfis de usuário; o id é o uid da identidade autenticada.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

type userRow struct {
	ID    string `db:"id"`
	Name  string `db:"nome"`
	Email string `db:"email"`
	Role  string `db:"role"`
}

func (row userRow) toEntity() *entity.User {
	return &entity.User{ID: row.ID, Name: row.Name, Email: row.Email, Role: row.Role}
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	_, err := r.q.Exec(ctx, `INSERT INTO usuarios (id, nome, email, role) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Name, u.Email, u.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, r.q, &row, `SELECT id, nome, email, role FROM usuarios WHERE id = $1`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return row.toEntity(), nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var rows []userRow
	if err := pgxscan.Select(ctx, r.q, &rows, `SELECT id, nome, email, role FROM usuarios ORDER BY nome, id`); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM usuarios`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	tag, err := r.q.Exec(ctx, `UPDATE usuarios SET nome = $2, email = $3, role = $4 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.Role)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CredentialRepo identidades de login; email único sem diferença de caixa.
type CredentialRepo struct {
	q Querier
}

// NewCredentialRepository constrói o adaptador.
func NewCredentialRepository(q Querier) *CredentialRepo {
	return &CredentialRepo{q: q}
}

type credentialRow struct {
	UserID       string    `db:"user_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"criado_em"`
}

func (r *CredentialRepo) Create(ctx context.Context, c *entity.Credential) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO credenciais (user_id, email, password_hash, criado_em) VALUES ($1, $2, $3, $4)`,
		c.UserID, strings.ToLower(c.Email), c.PasswordHash, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (r *CredentialRepo) GetByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var row credentialRow
	err := pgxscan.Get(ctx, r.q, &row,
		`SELECT user_id, email, password_hash, criado_em FROM credenciais WHERE email = $1`, strings.ToLower(email))
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credential: %w", err)
	}
	return &entity.Credential{
		UserID:       row.UserID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}
