package dto

import "time"

// RegisterRequest entrada para el registro público. El username se recorta
// de espacios; el password se hashea en el caso de uso, nunca se persiste plano.
type RegisterRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT y la ruta de dashboard según el rol.
type LoginResponse struct {
	Token    string       `json:"token"`
	Redirect string       `json:"redirect"`
	User     UserResponse `json:"user"`
}
