package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse aviso transitorio para el cliente (equivalente a un flash).
type MessageResponse struct {
	Message string `json:"message"`
}
