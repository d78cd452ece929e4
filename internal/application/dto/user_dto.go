package dto

// CreateUserRequest entrada para que un admin cree un usuario. A diferencia
// del registro público, el admin elige el rol y la cuenta nace aprobada.
type CreateUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"role" validate:"required,oneof=ROLE_ADMIN ROLE_TEAMLEAD ROLE_USER"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

// UserFormResponse roles asignables en el formulario de usuario nuevo.
type UserFormResponse struct {
	Roles []string `json:"roles"`
}
