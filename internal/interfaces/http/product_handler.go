package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
)

// ProductHandler trata as requisições de produtos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler constrói o handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Criar produto
// @Description  A categoria não é validada na criação.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateProductRequest  true  "nome, unidade, minimo, preco?, categoria?"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
		Success: true, Message: "Produto criado com sucesso", ProductID: id,
	})
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  dto.ProductItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductItemResponse{Success: true, Product: *out})
}

// List godoc
// @Summary      Listar produtos com estoque e status
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	resp := dto.ProductListResponse{Success: true, Products: list}
	if len(list) == 0 {
		resp.Message = "Nenhum produto encontrado"
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Atualizar produto
// @Description  Categoria não vazia precisa existir.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID do produto"
// @Param        body  body      dto.UpdateProductRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.ProductItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductItemResponse{Success: true, Message: "Produto atualizado com sucesso", Product: *out})
}

// Delete godoc
// @Summary      Excluir produto
// @Description  Apaga os movimentos do produto, até o limite do lote por chamada.
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  dto.ProductDeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	res, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ProductDeletedResponse{
		Success:             true,
		Message:             "Produto excluído com sucesso",
		DeletedProduct:      res.Product,
		MovimentosRemovidos: res.MovementsDeleted,
		Pendentes:           res.Remaining,
	})
}

// Stock godoc
// @Summary      Estoque atual do produto
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
