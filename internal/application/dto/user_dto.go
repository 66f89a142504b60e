package dto

// CreateUserRequest body para POST /api/users (solo admin).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin employee"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Total int            `json:"total"`
	Users []UserResponse `json:"users"`
}
