package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

// UserUseCase perfis de usuário. O id do perfil é o uid da identidade autenticada.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso com a porta de persistência.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create cria o perfil de callerID. Só o primeiro perfil escolhe o papel; os demais viram operador.
// email é o do token, usado quando o corpo não traz um.
func (uc *UserUseCase) Create(ctx context.Context, callerID, email string, in dto.CreateUserRequest) (string, error) {
	if callerID == "" {
		return "", domain.ErrUnauthenticated
	}
	name := normalizeName(in.Nome)
	if name == "" {
		return "", fmt.Errorf("%w: nome é um campo obrigatório", domain.ErrInvalidInput)
	}
	role := strings.TrimSpace(in.Role)
	if role != "" && !entity.ValidRole(role) {
		return "", fmt.Errorf("%w: role deve ser admin, operador ou visualizador", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByID(ctx, callerID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", fmt.Errorf("%w: usuário já existe", domain.ErrConflict)
	}
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return "", err
	}
	if role == "" || count > 0 {
		role = entity.RoleOperador
	}
	if e := strings.TrimSpace(in.Email); e != "" {
		email = e
	}
	u := &entity.User{ID: callerID, Name: name, Email: email, Role: role}
	if err := uc.repo.Create(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

// GetByID devolve um perfil.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// List devolve todos os perfis.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update altera o perfil targetID. Permitido ao próprio usuário ou a um admin;
// role enviado por quem não é admin é descartado sem erro.
func (uc *UserUseCase) Update(ctx context.Context, callerID, targetID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	caller, err := uc.authorize(ctx, callerID, targetID)
	if err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	changed := 0
	if in.Nome != nil {
		name := normalizeName(*in.Nome)
		if name == "" {
			return nil, fmt.Errorf("%w: o nome não pode ser vazio", domain.ErrInvalidInput)
		}
		u.Name = name
		changed++
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
		changed++
	}
	if in.Role != nil && caller.Role == entity.RoleAdmin {
		role := strings.TrimSpace(*in.Role)
		if !entity.ValidRole(role) {
			return nil, fmt.Errorf("%w: role deve ser admin, operador ou visualizador", domain.ErrInvalidInput)
		}
		u.Role = role
		changed++
	}
	if changed == 0 {
		return nil, domain.ErrNoFieldsProvided
	}
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// Delete remove o perfil targetID, com a mesma regra de permissão de Update.
func (uc *UserUseCase) Delete(ctx context.Context, callerID, targetID string) (*dto.UserResponse, error) {
	if _, err := uc.authorize(ctx, callerID, targetID); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, targetID); err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

// authorize exige perfil para quem chama; sem perfil não há permissão.
func (uc *UserUseCase) authorize(ctx context.Context, callerID, targetID string) (*entity.User, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	caller, err := uc.repo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, domain.ErrForbidden
	}
	if callerID != targetID && caller.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: o usuário só pode alterar a si mesmo", domain.ErrForbidden)
	}
	return caller, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Nome: u.Name, Email: u.Email, Role: u.Role}
}
