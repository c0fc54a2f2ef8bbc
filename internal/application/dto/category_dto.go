package dto

// CreateCategoryRequest corpo de POST /api/categories.
type CreateCategoryRequest struct {
	Categoria string `json:"categoria"`
}

// UpdateCategoryRequest corpo de PUT /api/categories/:id. Campos nil não foram enviados.
type UpdateCategoryRequest struct {
	Categoria *string `json:"categoria"`
}

// CategoryResponse categoria na saída.
type CategoryResponse struct {
	ID        string `json:"id"`
	Categoria string `json:"categoria"`
}

// CategoryListResponse resposta de GET /api/categories.
type CategoryListResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Categories []CategoryResponse `json:"categories"`
}

// CategoryUpdatedResponse resposta de PUT /api/categories/:id.
type CategoryUpdatedResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Category CategoryResponse `json:"category"`
}

// CategoryDeletedResponse resposta de DELETE /api/categories/:id.
// ProdutosAtualizados conta os produtos que perderam a categoria; Pendentes indica que sobrou algum.
type CategoryDeletedResponse struct {
	Success             bool             `json:"success"`
	Message             string           `json:"message"`
	DeletedCategory     CategoryResponse `json:"deletedCategory"`
	ProdutosAtualizados int              `json:"produtosAtualizados"`
	Pendentes           bool             `json:"pendentes"`
}
