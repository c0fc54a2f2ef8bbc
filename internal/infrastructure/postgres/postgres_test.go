package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
	"github.com/jhoicas/mercogestor-api/pkg/config"
)

func TestMovementListQuery_SemFiltro(t *testing.T) {
	query, args, err := movementListQuery(repository.MovementFilter{Type: "all"})
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY data_iso, seq")
	assert.Empty(t, args)
}

func TestMovementListQuery_TodosOsFiltros(t *testing.T) {
	query, args, err := movementListQuery(repository.MovementFilter{
		Type:      "out",
		DateFrom:  "2024-01-01",
		DateTo:    "2024-01-31",
		ProductID: "p1",
	})
	require.NoError(t, err)
	assert.Contains(t, query, "tipo = $1")
	assert.Contains(t, query, "substr(data_iso, 1, 10) >= $2")
	assert.Contains(t, query, "substr(data_iso, 1, 10) <= $3")
	assert.Contains(t, query, "product_id = $4")
	assert.Equal(t, []any{"out", "2024-01-01", "2024-01-31", "p1"}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	name := &pgconn.PgError{Code: "23505", ConstraintName: "produtos_nome_key"}
	pkey := &pgconn.PgError{Code: "23505", ConstraintName: "produtos_pkey"}
	other := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", name)))
	assert.False(t, isPrimaryKeyViolation(name))
	assert.True(t, isPrimaryKeyViolation(fmt.Errorf("insert: %w", pkey)))
	assert.False(t, isUniqueViolation(other))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestProductRow_PrecoNulo(t *testing.T) {
	p := productRow{ID: "1", Name: "Arroz", Unit: "kg", MinStock: decimal.NewFromInt(10)}.toEntity()
	assert.Nil(t, p.Price)

	price := decimal.RequireFromString("4.50")
	row := productRow{ID: "1", Name: "Arroz", Price: nullDecimal(&price)}
	got := row.toEntity()
	require.NotNil(t, got.Price)
	assert.True(t, got.Price.Equal(price))
}

func TestPoolConfig_UsaConfiguracao(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "db",
		Port:     5432,
		User:     "app",
		Password: "segredo",
		DBName:   "mercogestor",
		SSLMode:  "disable",
		MaxConns: 7,
		MinConns: 3,
	}
	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 7, pc.MaxConns)
	assert.EqualValues(t, 3, pc.MinConns)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, "mercogestor", pc.ConnConfig.Database)
	assert.NotNil(t, pc.AfterConnect)

	cfg.DatabaseURL = "postgres://outro:x@banco.interno:6543/estoque?sslmode=disable"
	pc, err = poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "banco.interno", pc.ConnConfig.Host)
	assert.EqualValues(t, 6543, pc.ConnConfig.Port)
	assert.Equal(t, "estoque", pc.ConnConfig.Database)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.ErrorContains(t, err, "parse DSN")
}
