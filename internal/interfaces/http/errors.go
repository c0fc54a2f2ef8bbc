package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercogestor-api/internal/application/dto"
	"github.com/jhoicas/mercogestor-api/internal/domain"
	"github.com/jhoicas/mercogestor-api/pkg/logger"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// Ordem importa: erros específicos antes dos genéricos.
var errorMappings = []errorMapping{
	{domain.ErrNoFieldsProvided, fiber.StatusBadRequest, "NO_FIELDS"},
	{domain.ErrProductNotFound, fiber.StatusBadRequest, "PRODUCT_NOT_FOUND"},
	{domain.ErrCategoryNotFound, fiber.StatusBadRequest, "CATEGORY_NOT_FOUND"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrInvalidCredential, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicateName, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
}

// StatusFor devolve status HTTP e código para um erro. Erros desconhecidos viram 500.
func StatusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return fe.Code, "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			return fe.Code, "METHOD_NOT_ALLOWED"
		}
		if fe.Code < fiber.StatusInternalServerError {
			return fe.Code, "BAD_REQUEST"
		}
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// ErrorHandler renderiza qualquer erro devolvido por um handler como {success:false, error, code}.
// Falhas 5xx são registradas com a causa; o cliente recebe só uma mensagem genérica.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		status, code := StatusFor(err)
		msg := err.Error()
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("erro interno")
			msg = "erro interno do servidor"
		}
		return c.Status(status).JSON(dto.NewError(code, msg))
	}
}

func invalidBody(err error) error {
	return fmt.Errorf("%w: corpo da requisição inválido (%v)", domain.ErrInvalidInput, err)
}
