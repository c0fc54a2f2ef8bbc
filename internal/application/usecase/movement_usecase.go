package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/internal/domain/entity"
	"github.com/jhoicas/mercogestor-api/internal/domain/inventory"
	"github.com/jhoicas/mercogestor-api/internal/domain/repository"
)

// MovementUseCase registra e consulta o livro de movimentos.
type MovementUseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
}

// NewMovementUseCase constrói o caso de uso.
func NewMovementUseCase(movements repository.MovementRepository, products repository.ProductRepository) *MovementUseCase {
	return &MovementUseCase{movements: movements, products: products}
}

// Create registra um movimento de um produto existente. Nada é gravado se a validação falhar.
func (uc *MovementUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (string, error) {
	if strings.TrimSpace(in.ProductID) == "" || in.Tipo == "" || in.DataISO == "" || !in.Quantidade.Valid() {
		return "", fmt.Errorf("%w: ID do produto, tipo, quantidade e data são obrigatórios", domain.ErrInvalidInput)
	}
	m := &entity.Movement{
		ID:        uuid.New().String(),
		ProductID: strings.TrimSpace(in.ProductID),
		Type:      in.Tipo,
		Quantity:  in.Quantidade.Value,
		DateISO:   strings.TrimSpace(in.DataISO),
		UnitPrice: in.PrecoUnitario.Optional(),
		LotExpiry: strings.TrimSpace(in.ValidadeLote),
		Reason:    strings.TrimSpace(in.Motivo),
	}
	if err := validateMovement(m); err != nil {
		return "", err
	}
	if err := uc.ensureProduct(ctx, m.ProductID); err != nil {
		return "", err
	}
	if err := uc.movements.Create(ctx, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

// GetByID devolve um movimento.
func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// List aplica os filtros opcionais tipo, inicio, fim e productId.
func (uc *MovementUseCase) List(ctx context.Context, in dto.MovementFilterRequest) ([]dto.MovementResponse, error) {
	filter, err := MovementFilterFrom(in.Tipo, in.Inicio, in.Fim, in.ProductID)
	if err != nil {
		return nil, err
	}
	list, err := uc.movements.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out, nil
}

// Update aplica os campos enviados. Trocar o produto exige que o novo exista.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	previousProduct := m.ProductID
	changed := 0
	if in.ProductID != nil {
		m.ProductID = strings.TrimSpace(*in.ProductID)
		changed++
	}
	if in.Tipo != nil {
		m.Type = *in.Tipo
		changed++
	}
	if in.Quantidade.Valid() {
		m.Quantity = in.Quantidade.Value
		changed++
	}
	if in.DataISO != nil {
		m.DateISO = strings.TrimSpace(*in.DataISO)
		changed++
	}
	if price := in.PrecoUnitario.Optional(); price != nil {
		m.UnitPrice = price
		changed++
	}
	if in.ValidadeLote != nil {
		m.LotExpiry = strings.TrimSpace(*in.ValidadeLote)
		changed++
	}
	if in.Motivo != nil {
		m.Reason = strings.TrimSpace(*in.Motivo)
		changed++
	}
	if changed == 0 {
		return nil, domain.ErrNoFieldsProvided
	}
	if err := validateMovement(m); err != nil {
		return nil, err
	}
	if m.ProductID != previousProduct {
		if err := uc.ensureProduct(ctx, m.ProductID); err != nil {
			return nil, err
		}
	}
	if err := uc.movements.Update(ctx, m); err != nil {
		return nil, err
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// Delete remove o movimento e devolve o que foi removido.
func (uc *MovementUseCase) Delete(ctx context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.movements.Delete(ctx, id); err != nil {
		return nil, err
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

func (uc *MovementUseCase) get(ctx context.Context, id string) (*entity.Movement, error) {
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (uc *MovementUseCase) ensureProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return domain.ErrProductNotFound
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	return nil
}

// validateMovement confere a forma do movimento já montado (criação ou atualização).
func validateMovement(m *entity.Movement) error {
	if m.ProductID == "" {
		return fmt.Errorf("%w: o ID do produto é obrigatório", domain.ErrInvalidInput)
	}
	if !entity.ValidMovementType(m.Type) {
		return fmt.Errorf("%w: tipo deve ser in ou out", domain.ErrInvalidInput)
	}
	if !m.Quantity.IsPositive() {
		return fmt.Errorf("%w: a quantidade deve ser maior que zero", domain.ErrInvalidInput)
	}
	if _, err := entity.ParseDate(m.DateISO); err != nil {
		return fmt.Errorf("%w: dataISO deve ser uma data ISO-8601", domain.ErrInvalidInput)
	}
	if m.UnitPrice != nil && m.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: o preço unitário não pode ser negativo", domain.ErrInvalidInput)
	}
	if m.LotExpiry != "" {
		if m.Type != entity.MovementTypeIn {
			return fmt.Errorf("%w: validadeLote só vale para entradas", domain.ErrInvalidInput)
		}
		if _, err := entity.ParseDate(m.LotExpiry); err != nil {
			return fmt.Errorf("%w: validadeLote deve estar no formato AAAA-MM-DD", domain.ErrInvalidInput)
		}
	}
	if m.Reason != "" {
		if m.Type != entity.MovementTypeOut {
			return fmt.Errorf("%w: motivo só vale para saídas", domain.ErrInvalidInput)
		}
		if !entity.ValidReason(m.Reason) {
			return fmt.Errorf("%w: motivo deve ser sale, consumption, waste ou adjust", domain.ErrInvalidInput)
		}
	}
	return nil
}

// MovementFilterFrom valida os parâmetros de consulta. Datas aceitam AAAA-MM-DD ou RFC 3339
// e são reduzidas ao dia; cada limite vale sozinho.
func MovementFilterFrom(tipo, from, to, productID string) (repository.MovementFilter, error) {
	f := repository.MovementFilter{ProductID: strings.TrimSpace(productID)}
	tipo = strings.TrimSpace(tipo)
	switch tipo {
	case "", inventory.TypeAll:
	case entity.MovementTypeIn, entity.MovementTypeOut:
		f.Type = tipo
	default:
		return f, fmt.Errorf("%w: tipo deve ser all, in ou out", domain.ErrInvalidInput)
	}
	var err error
	if f.DateFrom, err = dayKey(from, "inicio"); err != nil {
		return f, err
	}
	if f.DateTo, err = dayKey(to, "fim"); err != nil {
		return f, err
	}
	return f, nil
}

func dayKey(raw, field string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	t, err := entity.ParseDate(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s deve ser uma data AAAA-MM-DD", domain.ErrInvalidInput, field)
	}
	if len(raw) > len(entity.DateLayout) {
		// RFC 3339: o dia do texto, como nos movimentos gravados.
		return raw[:len(entity.DateLayout)], nil
	}
	return t.Format(entity.DateLayout), nil
}

// ToMovementResponse converte a entidade.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		Tipo:          m.Type,
		Quantidade:    m.Quantity,
		DataISO:       m.DateISO,
		PrecoUnitario: m.UnitPrice,
		ValidadeLote:  m.LotExpiry,
		Motivo:        m.Reason,
	}
}
