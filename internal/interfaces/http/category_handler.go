package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
)

// CategoryHandler trata as requisições de categorias.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler constrói o handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Criar categoria
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCategoryRequest  true  "Nome da categoria"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
		Success: true, Message: "Categoria criada com sucesso", CategoryID: id,
	})
}

// List godoc
// @Summary      Listar categorias
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	resp := dto.CategoryListResponse{Success: true, Categories: list}
	if len(list) == 0 {
		resp.Message = "Nenhuma categoria encontrada"
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Atualizar categoria
// @Description  Renomear não altera o nome gravado nos produtos.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID da categoria"
// @Param        body  body      dto.UpdateCategoryRequest  true  "Novo nome"
// @Success      200   {object}  dto.CategoryUpdatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryUpdatedResponse{Success: true, Message: "Categoria atualizada com sucesso", Category: *out})
}

// Delete godoc
// @Summary      Excluir categoria
// @Description  Limpa a categoria dos produtos que a usam, até o limite do lote por chamada.
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "ID da categoria"
// @Success      200  {object}  dto.CategoryDeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	res, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryDeletedResponse{
		Success:             true,
		Message:             "Categoria excluída com sucesso",
		DeletedCategory:     res.Category,
		ProdutosAtualizados: res.ProductsCleared,
		Pendentes:           res.Remaining,
	})
}
