package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Coleções do sistema. Sem chaves estrangeiras: as cascatas são feitas pela aplicação,
// em lotes limitados.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categorias (
		id        TEXT PRIMARY KEY,
		categoria TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS produtos (
		id        TEXT PRIMARY KEY,
		nome      TEXT NOT NULL UNIQUE,
		unidade   TEXT NOT NULL,
		minimo    NUMERIC NOT NULL DEFAULT 0,
		preco     NUMERIC NULL,
		categoria TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS produtos_categoria_idx ON produtos (categoria)`,
	`CREATE TABLE IF NOT EXISTS movimentos (
		id             TEXT PRIMARY KEY,
		seq            BIGSERIAL,
		product_id     TEXT NOT NULL,
		tipo           TEXT NOT NULL CHECK (tipo IN ('in', 'out')),
		quantidade     NUMERIC NOT NULL CHECK (quantidade > 0),
		data_iso       TEXT NOT NULL,
		preco_unitario NUMERIC NULL,
		validade_lote  TEXT NOT NULL DEFAULT '',
		motivo         TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS movimentos_product_idx ON movimentos (product_id)`,
	`CREATE INDEX IF NOT EXISTS movimentos_data_idx ON movimentos (data_iso, seq)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id    TEXT PRIMARY KEY,
		nome  TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		role  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS credenciais (
		user_id       TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		criado_em     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema cria as tabelas que faltam, numa única transação.
func EnsureSchema(ctx context.Context, runner *TxRunner) error {
	return runner.Run(ctx, "schema.ensure", func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, stmt := range schemaStatements {
			batch.Queue(stmt)
		}
		if err := sendBatch(ctx, tx, batch); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		return nil
	})
}
