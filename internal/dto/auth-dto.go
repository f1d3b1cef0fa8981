package dto

import "gearguard/internal/entities"

type LoginDTO struct {
	Email    string `json:"email" validate:"required,custom_email"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,custom_email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin manager technician"`
}

// AuthResponseDTO - ответ /auth/login и /auth/register бэкенда.
type AuthResponseDTO struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}

// SessionDTO - что консоль знает о текущей сессии.
type SessionDTO struct {
	Authenticated bool           `json:"authenticated"`
	User          *entities.User `json:"user,omitempty"`
	Redirect      string         `json:"redirect,omitempty"`
}
