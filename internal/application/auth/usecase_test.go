package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercogestor-api/internal/application/auth"
	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/infrastructure/memory"
	"github.com/jhoicas/mercogestor-api/pkg/jwt"
)

const secret = "segredo-de-teste"

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewStore().Credentials(), auth.JWTConfig{Secret: secret, ExpMinutes: 15, Issuer: "teste"})
}

func TestRegisterELogin(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	uid, err := uc.Register(ctx, dto.RegisterRequest{Email: " Ana@Loja.com ", Password: "123456"})
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@loja.com", Password: "123456"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, uid, resp.UserID)
	assert.Equal(t, 900, resp.ExpiresIn)

	gotID, email, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uid, gotID)
	assert.Equal(t, "ana@loja.com", email)
}

func TestRegisterValidacao(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "sem-arroba", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ana@loja.com", Password: "12345"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ana@loja.com", Password: "123456"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "ANA@loja.com", Password: "abcdef"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginCredenciaisInvalidas(t *testing.T) {
	ctx := context.Background()
	uc := newAuth()
	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "ana@loja.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@loja.com", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "bia@loja.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}
