// Package analytics contém os casos de uso de leitura agregada: alertas, relatórios e dashboard.
// Todos calculam sobre um Snapshot carregado do armazenamento a cada pedido.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

// Snapshot produtos e movimentos lidos juntos. Somente leitura: pode ser compartilhado
// entre pedidos simultâneos.
type Snapshot struct {
	Products  []*entity.Product
	Movements []*entity.Movement
}

// ProductsByID indexa os produtos do snapshot.
func (s *Snapshot) ProductsByID() map[string]*entity.Product {
	out := make(map[string]*entity.Product, len(s.Products))
	for _, p := range s.Products {
		out[p.ID] = p
	}
	return out
}

// Loader carrega snapshots. Pedidos simultâneos com o mesmo filtro compartilham uma única leitura.
type Loader struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	group     singleflight.Group
}

// NewLoader constrói o loader.
func NewLoader(products repository.ProductRepository, movements repository.MovementRepository) *Loader {
	return &Loader{products: products, movements: movements}
}

// Load lê produtos e os movimentos que passam no filtro, em paralelo.
// A leitura compartilhada não herda o cancelamento de quem a iniciou; cada chamador
// só deixa de esperar quando o próprio ctx termina.
func (l *Loader) Load(ctx context.Context, filter repository.MovementFilter) (*Snapshot, error) {
	key := fmt.Sprintf("%s|%s|%s|%s", filter.Type, filter.DateFrom, filter.DateTo, filter.ProductID)
	shared := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (any, error) {
		return l.load(shared, filter)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

func (l *Loader) load(ctx context.Context, filter repository.MovementFilter) (*Snapshot, error) {
	snap := &Snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := l.products.List(gctx)
		if err != nil {
			return fmt.Errorf("snapshot: produtos: %w", err)
		}
		snap.Products = list
		return nil
	})
	g.Go(func() error {
		list, err := l.movements.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("snapshot: movimentos: %w", err)
		}
		snap.Movements = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
