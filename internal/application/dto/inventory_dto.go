package dto

import "github.com/shopspring/decimal"

// CreateMovementRequest corpo de POST /api/movements.
type CreateMovementRequest struct {
	ProductID     string `json:"productId"`
	Tipo          string `json:"tipo"`
	Quantidade    Number `json:"quantidade"`
	DataISO       string `json:"dataISO"`
	PrecoUnitario Number `json:"precoUnitario"`
	ValidadeLote  string `json:"validadeLote"`
	Motivo        string `json:"motivo"`
}

// UpdateMovementRequest corpo de PUT /api/movements/:id.
type UpdateMovementRequest struct {
	ProductID     *string `json:"productId"`
	Tipo          *string `json:"tipo"`
	Quantidade    Number  `json:"quantidade"`
	DataISO       *string `json:"dataISO"`
	PrecoUnitario Number  `json:"precoUnitario"`
	ValidadeLote  *string `json:"validadeLote"`
	Motivo        *string `json:"motivo"`
}

// MovementFilterRequest query de GET /api/movements.
type MovementFilterRequest struct {
	Tipo      string `query:"tipo"`
	Inicio    string `query:"inicio"`
	Fim       string `query:"fim"`
	ProductID string `query:"productId"`
}

// MovementResponse movimento na saída.
type MovementResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"productId"`
	Tipo          string           `json:"tipo"`
	Quantidade    decimal.Decimal  `json:"quantidade"`
	DataISO       string           `json:"dataISO"`
	PrecoUnitario *decimal.Decimal `json:"precoUnitario"`
	ValidadeLote  string           `json:"validadeLote,omitempty"`
	Motivo        string           `json:"motivo,omitempty"`
}

// MovementListResponse resposta de GET /api/movements.
type MovementListResponse struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message,omitempty"`
	Movements []MovementResponse `json:"movements"`
}

// MovementItemResponse resposta de GET e PUT /api/movements/:id.
type MovementItemResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Movement MovementResponse `json:"movement"`
}

// MovementDeletedResponse resposta de DELETE /api/movements/:id.
type MovementDeletedResponse struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	DeletedMovement MovementResponse `json:"deletedMovement"`
}
