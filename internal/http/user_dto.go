package httpapi

import (
	"time"

	"viralalchemy-backend-go/internal/models"
)

type UserDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Plan        string     `json:"plan"`
	IsPro       bool       `json:"isPro"`
	Credits     int        `json:"credits"`
	Roles       []string   `json:"roles"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func buildUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Plan:        user.Plan,
		IsPro:       user.IsPro,
		Credits:     user.Credits,
		Roles:       user.Roles,
		LastLoginAt: user.LastLoginAt,
	}
}
