package dto

// CreateUserRequest corpo de POST /api/users: cria o perfil do usuário autenticado.
type CreateUserRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UpdateUserRequest corpo de PUT /api/users/:id. Role só é aplicado quando quem chama é admin.
type UpdateUserRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// UserResponse perfil na saída.
type UserResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// UserListResponse resposta de GET /api/users.
type UserListResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Users   []UserResponse `json:"users"`
}

// UserItemResponse resposta de GET e PUT /api/users/:id.
type UserItemResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}

// UserDeletedResponse resposta de DELETE /api/users/:id.
type UserDeletedResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	DeletedUser UserResponse `json:"deletedUser"`
}

// RegisterRequest corpo de POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest corpo de POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT emitido para o uid.
type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	ExpiresIn int    `json:"expiresIn"` // segundos
}
