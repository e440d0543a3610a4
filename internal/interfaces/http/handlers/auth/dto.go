package auth

import (
	"residconnect/internal/application/auth/usecases"
	"residconnect/internal/shared/authorization"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=tenant professional"`
}

type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Unit          string `json:"unit"`
	Phone         string `json:"phone"`
	ResidenceName string `json:"residence_name"`
}

// UserDTO is shaped by role: tenant fields and professional fields are
// never both present. The password hash never leaves the server.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`

	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
	Unit          string `json:"unit,omitempty"`
	ResidenceName string `json:"residence_name,omitempty"`

	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Specialties string `json:"specialties,omitempty"`

	Phone string `json:"phone,omitempty"`
}

// AuthResponse is the auth-specific envelope: token and user ride at
// the top level, not under data.
type AuthResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

func toUserDTO(info usecases.UserInfo) UserDTO {
	dto := UserDTO{
		ID:    info.ID,
		Email: info.Email,
		Role:  info.Role.String(),
		Phone: info.Phone,
	}

	if info.Role == authorization.RoleTenant {
		dto.FirstName = info.FirstName
		dto.LastName = info.LastName
		dto.Unit = info.Unit
		dto.ResidenceName = info.ResidenceName
	} else {
		dto.Name = info.Name
		dto.Type = info.Type
		dto.Specialties = info.Specialties
	}

	return dto
}
