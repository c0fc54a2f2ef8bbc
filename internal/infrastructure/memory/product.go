package memory

import (
	"context"

	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo produtos em memória.
type ProductRepo struct {
	s *Store
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	if p.Price != nil {
		v := *p.Price
		cp.Price = &v
	}
	return &cp
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrConflict
	}
	for _, existing := range r.s.products {
		if existing.Name == p.Name {
			return domain.ErrDuplicateName
		}
	}
	r.s.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *ProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Name == name {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	keys := sortedKeys(r.s.products, func(a, b *entity.Product) bool { return a.Name < b.Name })
	out := make([]*entity.Product, 0, len(keys))
	for _, k := range keys {
		out = append(out, cloneProduct(r.s.products[k]))
	}
	return out, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.products {
		if id != p.ID && existing.Name == p.Name {
			return domain.ErrDuplicateName
		}
	}
	r.s.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// ClearCategory limpa a categoria de até limit produtos sob o lock de escrita.
func (r *ProductRepo) ClearCategory(_ context.Context, categoryName string, limit int) (int, bool, error) {
	if limit <= 0 {
		return 0, false, domain.ErrInvalidInput
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	keys := sortedKeys(r.s.products, func(a, b *entity.Product) bool { return a.Name < b.Name })
	updated := 0
	for _, k := range keys {
		p := r.s.products[k]
		if p.Category != categoryName {
			continue
		}
		if updated == limit {
			return updated, true, nil
		}
		p.Category = ""
		updated++
	}
	return updated, false, nil
}
