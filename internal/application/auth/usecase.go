package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
	"github.com/jhoicas/mercogestor-api/pkg/jwt"
)

// MinPasswordLength tamanho mínimo de senha no cadastro.
const MinPasswordLength = 6

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cadastro e login de identidades. O perfil (nome, papel) é criado depois em /api/users.
type AuthUseCase struct {
	credentials repository.CredentialRepository
	jwtCfg      JWTConfig
	now         func() time.Time
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(credentials repository.CredentialRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{credentials: credentials, jwtCfg: jwtCfg, now: time.Now}
}

// Register cria a identidade com senha bcrypt e devolve o uid gerado.
// Email já usado devolve ErrConflict.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(in.Password) < MinPasswordLength {
		return "", fmt.Errorf("%w: a senha deve ter ao menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}
	existing, err := uc.credentials.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", fmt.Errorf("%w: email já cadastrado", domain.ErrConflict)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	cred := &entity.Credential{
		UserID:       uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    uc.now(),
	}
	if err := uc.credentials.Create(ctx, cred); err != nil {
		return "", err
	}
	return cred.UserID, nil
}

// Login confere email e senha e emite o JWT. Email desconhecido e senha errada dão o mesmo erro.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	cred, err := uc.credentials.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, cred.UserID, cred.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		UserID:    cred.UserID,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}
