package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
	"github.com/jhoicas/mercogestor-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercogestor-api/internal/infrastructure/postgres"
	"github.com/jhoicas/mercogestor-api/pkg/config"
	"github.com/jhoicas/mercogestor-api/pkg/logger"
)

// repositories implementações escolhidas por STORE_DRIVER.
type repositories struct {
	categories  repository.CategoryRepository
	products    repository.ProductRepository
	movements   repository.MovementRepository
	users       repository.UserRepository
	credentials repository.CredentialRepository
	close       func()
}

func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repositories, error) {
	log = log.Component("armazenamento")
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("armazenamento em memória: os dados somem ao encerrar")
		s := memory.NewStore()
		return &repositories{
			categories:  s.Categories(),
			products:    s.Products(),
			movements:   s.Movements(),
			users:       s.Users(),
			credentials: s.Credentials(),
			close:       func() {},
		}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexão ao PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, postgres.NewTxRunner(pool)); err != nil {
				pool.Close()
				return nil, err
			}
			log.Info().Msg("esquema verificado")
		}
		return &repositories{
			categories:  postgres.NewCategoryRepository(pool),
			products:    postgres.NewProductRepository(pool),
			movements:   postgres.NewMovementRepository(pool),
			users:       postgres.NewUserRepository(pool),
			credentials: postgres.NewCredentialRepository(pool),
			close:       pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("STORE_DRIVER desconhecido: %q", cfg.Store.Driver)
}
