package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin        = "admin"
	RoleOperador     = "operador"
	RoleVisualizador = "visualizador"
)

// ValidRole indica se r é um dos papéis conhecidos.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOperador || r == RoleVisualizador
}

// User é o perfil de um usuário; o ID é o uid da identidade autenticada.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// Credential é a identidade de login (substitui o provedor externo de identidade).
type Credential struct {
	UserID       string
	Email        string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
}
