package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
	"github.com/jhoicas/mercogestor-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

type fixture struct {
	store      *memory.Store
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	movements  *usecase.MovementUseCase
	users      *usecase.UserUseCase
}

func newFixture(t *testing.T, cascade usecase.CascadePolicy) *fixture {
	t.Helper()
	s := memory.NewStore()
	return &fixture{
		store:      s,
		categories: usecase.NewCategoryUseCase(s.Categories(), s.Products(), cascade, nil),
		products: usecase.NewProductUseCase(s.Products(), s.Categories(), s.Movements(), usecase.ProductOptions{
			Cascade: cascade,
			Clock:   func() time.Time { return fixedNow },
		}, nil),
		movements: usecase.NewMovementUseCase(s.Movements(), s.Products()),
		users:     usecase.NewUserUseCase(s.Users()),
	}
}

func num(v float64) dto.Number {
	return dto.Number{State: dto.NumberValid, Value: decimal.NewFromFloat(v)}
}

func str(s string) *string { return &s }

func (f *fixture) product(t *testing.T, name string, minimo float64) string {
	t.Helper()
	id, err := f.products.Create(context.Background(), dto.CreateProductRequest{Nome: name, Unidade: "kg", Minimo: num(minimo)})
	require.NoError(t, err)
	return id
}

func (f *fixture) move(t *testing.T, productID, tipo string, qty float64) string {
	t.Helper()
	id, err := f.movements.Create(context.Background(), dto.CreateMovementRequest{
		ProductID:  productID,
		Tipo:       tipo,
		Quantidade: num(qty),
		DataISO:    "2024-05-01T10:00:00Z",
	})
	require.NoError(t, err)
	return id
}
