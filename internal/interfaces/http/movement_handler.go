package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
)

// MovementHandler trata as requisições do livro de movimentos.
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateMovementRequest  true  "productId, tipo, quantidade, dataISO, precoUnitario?, validadeLote?, motivo?"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
		Success: true, Message: "Movimento registrado com sucesso", MovementID: id,
	})
}

// List godoc
// @Summary      Listar movimentos
// @Tags         movements
// @Produce      json
// @Param        tipo       query     string  false  "all, in ou out"
// @Param        inicio     query     string  false  "Data inicial (AAAA-MM-DD), inclusiva"
// @Param        fim        query     string  false  "Data final (AAAA-MM-DD), inclusiva"
// @Param        productId  query     string  false  "ID do produto"
// @Success      200        {object}  dto.MovementListResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.MovementFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return invalidBody(err)
	}
	list, err := h.uc.List(c.Context(), in)
	if err != nil {
		return err
	}
	resp := dto.MovementListResponse{Success: true, Movements: list}
	if len(list) == 0 {
		resp.Message = "Nenhum movimento encontrado"
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obter movimento por ID
// @Tags         movements
// @Produce      json
// @Param        id   path      string  true  "ID do movimento"
// @Success      200  {object}  dto.MovementItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.MovementItemResponse{Success: true, Movement: *out})
}

// Update godoc
// @Summary      Atualizar movimento
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID do movimento"
// @Param        body  body      dto.UpdateMovementRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.MovementItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.MovementItemResponse{Success: true, Message: "Movimento atualizado com sucesso", Movement: *out})
}

// Delete godoc
// @Summary      Excluir movimento
// @Tags         movements
// @Produce      json
// @Param        id   path      string  true  "ID do movimento"
// @Success      200  {object}  dto.MovementDeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.MovementDeletedResponse{Success: true, Message: "Movimento excluído com sucesso", DeletedMovement: *out})
}
