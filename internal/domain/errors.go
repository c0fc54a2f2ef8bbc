package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrNoFieldsProvided  = errors.New("nenhum campo para atualização foi enviado")
	ErrDuplicateName     = errors.New("nome já cadastrado")
	ErrProductNotFound   = errors.New("o código do produto deve referenciar um produto existente")
	ErrCategoryNotFound  = errors.New("a categoria informada não existe")
	ErrUnauthenticated   = errors.New("usuário não autenticado")
	ErrForbidden         = errors.New("acesso negado")
	ErrConflict          = errors.New("conflito com o estado atual")
	ErrInvalidCredential = errors.New("credenciais inválidas")
)
