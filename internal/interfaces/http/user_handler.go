package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/application/usecase"
)

// UserHandler trata os perfis de usuário. Mutações exigem o AuthMiddleware.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Criar o perfil do usuário autenticado
// @Description  Só o primeiro perfil escolhe o papel; os demais nascem operador.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserRequest  true  "nome, email?, role?"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	id, err := h.uc.Create(c.Context(), GetUserID(c), GetEmail(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
		Success: true, Message: "Usuário criado com sucesso", UserID: id,
	})
}

// List godoc
// @Summary      Listar usuários
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	resp := dto.UserListResponse{Success: true, Users: list}
	if len(list) == 0 {
		resp.Message = "Nenhum usuário encontrado"
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obter usuário por ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "uid do usuário"
// @Success      200  {object}  dto.UserItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UserItemResponse{Success: true, User: *out})
}

// Update godoc
// @Summary      Atualizar usuário
// @Description  Permitido ao próprio usuário ou a um admin. Role de quem não é admin é ignorado.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "uid do usuário"
// @Param        body  body      dto.UpdateUserRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.UserItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(err)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.UserItemResponse{Success: true, Message: "Usuário atualizado com sucesso", User: *out})
}

// Delete godoc
// @Summary      Excluir usuário
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "uid do usuário"
// @Success      200  {object}  dto.UserDeletedResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UserDeletedResponse{Success: true, Message: "Usuário excluído com sucesso", DeletedUser: *out})
}
