// Package memory implementa as portas de persistência em memória.
// Serve o modo de desenvolvimento (STORE_DRIVER=memory) e os testes dos casos de uso.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
)

// Store guarda todas as coleções sob um único lock, o que torna cada lote de escrita atômico.
type Store struct {
	mu  sync.RWMutex
	seq int64

	categories  map[string]*entity.Category
	products    map[string]*entity.Product
	movements   map[string]*movementRow
	users       map[string]*entity.User
	credentials map[string]*entity.Credential // chave: email
}

type movementRow struct {
	seq int64
	m   entity.Movement
}

// NewStore cria um store vazio.
func NewStore() *Store {
	return &Store{
		categories:  make(map[string]*entity.Category),
		products:    make(map[string]*entity.Product),
		movements:   make(map[string]*movementRow),
		users:       make(map[string]*entity.User),
		credentials: make(map[string]*entity.Credential),
	}
}

// Categories devolve o repositório de categorias.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products devolve o repositório de produtos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Movements devolve o repositório de movimentos.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// Users devolve o repositório de perfis.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Credentials devolve o repositório de credenciais.
func (s *Store) Credentials() *CredentialRepo { return &CredentialRepo{s: s} }

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// sortedKeys devolve as chaves de m ordenadas por less.
func sortedKeys[T any](m map[string]T, less func(a, b T) bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := m[keys[i]], m[keys[j]]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}
