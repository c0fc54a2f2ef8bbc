package memory

import (
	"context"

	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo livro de movimentos em memória, ordenado por dataISO e ordem de inserção.
type MovementRepo struct {
	s *Store
}

func cloneMovement(m entity.Movement) *entity.Movement {
	cp := m
	if m.UnitPrice != nil {
		v := *m.UnitPrice
		cp.UnitPrice = &v
	}
	return &cp
}

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[m.ID]; ok {
		return domain.ErrConflict
	}
	r.s.movements[m.ID] = &movementRow{seq: r.s.nextSeq(), m: *cloneMovement(*m)}
	return nil
}

func (r *MovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	return cloneMovement(row.m), nil
}

func (r *MovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Movement, 0, len(r.s.movements))
	for _, k := range r.orderedKeys() {
		row := r.s.movements[k]
		if inventory.MatchesFilter(&row.m, filter) {
			out = append(out, cloneMovement(row.m))
		}
	}
	return out, nil
}

func (r *MovementRepo) Update(_ context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.movements[m.ID]
	if !ok {
		return domain.ErrNotFound
	}
	row.m = *cloneMovement(*m)
	return nil
}

func (r *MovementRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.movements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.movements, id)
	return nil
}

// DeleteByProduct apaga até limit movimentos do produto sob o lock de escrita.
func (r *MovementRepo) DeleteByProduct(_ context.Context, productID string, limit int) (int, bool, error) {
	if limit <= 0 {
		return 0, false, domain.ErrInvalidInput
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	deleted := 0
	for _, k := range r.orderedKeys() {
		if r.s.movements[k].m.ProductID != productID {
			continue
		}
		if deleted == limit {
			return deleted, true, nil
		}
		delete(r.s.movements, k)
		deleted++
	}
	return deleted, false, nil
}

// orderedKeys exige o lock já adquirido.
func (r *MovementRepo) orderedKeys() []string {
	return sortedKeys(r.s.movements, func(a, b *movementRow) bool {
		if a.m.DateISO != b.m.DateISO {
			return a.m.DateISO < b.m.DateISO
		}
		return a.seq < b.seq
	})
}
