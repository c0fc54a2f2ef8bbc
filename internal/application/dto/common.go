package dto

// ErrorResponse corpo de erro HTTP: {success:false, error, code}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// NewError monta o corpo de erro.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, Code: code}
}

// CreatedResponse resposta de criação: {success, message, <recurso>Id}.
type CreatedResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CategoryID string `json:"categoryId,omitempty"`
	ProductID  string `json:"productId,omitempty"`
	MovementID string `json:"movementId,omitempty"`
	UserID     string `json:"userId,omitempty"`
}
