package memory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
	"github.com/jhoicas/mercogestor-api/internal/infrastructure/memory"
)

func TestProductRepo_NomeUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "1", Name: "Arroz", Unit: "kg"}))
	err := repo.Create(ctx, &entity.Product{ID: "2", Name: "Arroz", Unit: "kg"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	// Case-sensitive.
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "3", Name: "arroz", Unit: "kg"}))
}

func TestProductRepo_DevolveCopias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	price := decimal.NewFromInt(5)
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "1", Name: "Sal", Price: &price}))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	got.Name = "alterado"
	*got.Price = decimal.NewFromInt(99)

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Sal", again.Name)
	assert.True(t, again.Price.Equal(decimal.NewFromInt(5)))

	missing, err := repo.GetByID(ctx, "x")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepo_ClearCategoryRespeitaOLimite(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Products()
	for i := 0; i < 503; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Product{ID: fmt.Sprintf("p%03d", i), Name: fmt.Sprintf("P%03d", i), Category: "Grãos"}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Product{ID: "outro", Name: "Outro", Category: "Limpeza"}))

	updated, remaining, err := repo.ClearCategory(ctx, "Grãos", 500)
	require.NoError(t, err)
	assert.Equal(t, 500, updated)
	assert.True(t, remaining)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	left := 0
	for _, p := range list {
		if p.Category == "Grãos" {
			left++
		}
	}
	assert.Equal(t, 3, left)

	updated, remaining, err = repo.ClearCategory(ctx, "Grãos", 500)
	require.NoError(t, err)
	assert.Equal(t, 3, updated)
	assert.False(t, remaining)

	other, err := repo.GetByID(ctx, "outro")
	require.NoError(t, err)
	assert.Equal(t, "Limpeza", other.Category)
}

func TestMovementRepo_FiltroEOrdem(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Movements()
	create := func(id, productID, tipo, date string) {
		require.NoError(t, repo.Create(ctx, &entity.Movement{ID: id, ProductID: productID, Type: tipo, Quantity: decimal.NewFromInt(1), DateISO: date}))
	}
	create("m3", "a", entity.MovementTypeOut, "2024-01-03T10:00:00Z")
	create("m1", "a", entity.MovementTypeIn, "2024-01-01T10:00:00Z")
	create("m2", "b", entity.MovementTypeIn, "2024-01-02")

	all, err := repo.List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "m1", all[0].ID)
	assert.Equal(t, "m2", all[1].ID)
	assert.Equal(t, "m3", all[2].ID)

	ins, err := repo.List(ctx, repository.MovementFilter{Type: entity.MovementTypeIn, DateFrom: "2024-01-02"})
	require.NoError(t, err)
	require.Len(t, ins, 1)
	assert.Equal(t, "m2", ins[0].ID)
}

func TestMovementRepo_DeleteByProduct(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Movements()
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Movement{ID: fmt.Sprintf("m%d", i), ProductID: "p", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1), DateISO: "2024-01-01"}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Movement{ID: "q", ProductID: "q", Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1), DateISO: "2024-01-01"}))

	deleted, remaining, err := repo.DeleteByProduct(ctx, "p", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, deleted)
	assert.True(t, remaining)

	deleted, remaining, err = repo.DeleteByProduct(ctx, "p", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.False(t, remaining)

	rest, err := repo.List(ctx, repository.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "q", rest[0].ProductID)

	_, _, err = repo.DeleteByProduct(ctx, "q", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRepos_UpdateDeleteInexistente(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	assert.ErrorIs(t, s.Categories().Update(ctx, &entity.Category{ID: "x", Name: "X"}), domain.ErrNotFound)
	assert.ErrorIs(t, s.Categories().Delete(ctx, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, s.Movements().Delete(ctx, "x"), domain.ErrNotFound)
	assert.ErrorIs(t, s.Users().Update(ctx, &entity.User{ID: "x"}), domain.ErrNotFound)
}

func TestCredentialRepo_EmailSemDiferencaDeCaixa(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Credentials()
	require.NoError(t, repo.Create(ctx, &entity.Credential{UserID: "u1", Email: "Ana@Loja.com", PasswordHash: "h"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Credential{UserID: "u2", Email: "ana@loja.com"}), domain.ErrConflict)

	got, err := repo.GetByEmail(ctx, "ANA@loja.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
}
