package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

var (
	_ repository.UserRepository       = (*UserRepo)(nil)
	_ repository.CredentialRepository = (*CredentialRepo)(nil)
)

// UserRepo perfis em memória.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; ok {
		return domain.ErrConflict
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	keys := sortedKeys(r.s.users, func(a, b *entity.User) bool { return a.Name < b.Name })
	out := make([]*entity.User, 0, len(keys))
	for _, k := range keys {
		cp := *r.s.users[k]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *UserRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

// CredentialRepo credenciais em memória, indexadas por email em minúsculas.
type CredentialRepo struct {
	s *Store
}

func (r *CredentialRepo) Create(_ context.Context, c *entity.Credential) error {
	key := strings.ToLower(c.Email)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.credentials[key]; ok {
		return domain.ErrConflict
	}
	cp := *c
	r.s.credentials[key] = &cp
	return nil
}

func (r *CredentialRepo) GetByEmail(_ context.Context, email string) (*entity.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.credentials[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
