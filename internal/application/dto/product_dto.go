package dto

import "github.com/shopspring/decimal"

// CreateProductRequest corpo de POST /api/products.
type CreateProductRequest struct {
	Nome      string `json:"nome"`
	Unidade   string `json:"unidade"`
	Minimo    Number `json:"minimo"`
	Preco     Number `json:"preco"`
	Categoria string `json:"categoria"`
}

// UpdateProductRequest corpo de PUT /api/products/:id. Números inválidos contam como ausentes.
type UpdateProductRequest struct {
	Nome      *string `json:"nome"`
	Unidade   *string `json:"unidade"`
	Minimo    Number  `json:"minimo"`
	Preco     Number  `json:"preco"`
	Categoria *string `json:"categoria"`
}

// ProductResponse produto na saída. Estoque e Status são derivados dos movimentos.
type ProductResponse struct {
	ID        string           `json:"id"`
	Nome      string           `json:"nome"`
	Unidade   string           `json:"unidade"`
	Minimo    decimal.Decimal  `json:"minimo"`
	Preco     *decimal.Decimal `json:"preco"`
	Categoria string           `json:"categoria"`
	Estoque   *decimal.Decimal `json:"estoque,omitempty"`
	Status    string           `json:"status,omitempty"`
}

// ProductListResponse resposta de GET /api/products.
type ProductListResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message,omitempty"`
	Products []ProductResponse `json:"products"`
}

// ProductItemResponse resposta de GET e PUT /api/products/:id.
type ProductItemResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Product ProductResponse `json:"product"`
}

// ProductDeletedResponse resposta de DELETE /api/products/:id.
type ProductDeletedResponse struct {
	Success             bool            `json:"success"`
	Message             string          `json:"message"`
	DeletedProduct      ProductResponse `json:"deletedProduct"`
	MovimentosRemovidos int             `json:"movimentosRemovidos"`
	Pendentes           bool            `json:"pendentes"`
}

// ProductStockResponse resposta de GET /api/products/:id/stock.
type ProductStockResponse struct {
	Success         bool            `json:"success"`
	ProductID       string          `json:"productId"`
	Estoque         decimal.Decimal `json:"estoque"`
	Minimo          decimal.Decimal `json:"minimo"`
	Status          string          `json:"status"`
	ProximaValidade string          `json:"proximaValidade,omitempty"`
}
