package dto

import (
	"time"

	"github.com/BruksfildServices01/softbarber/internal/models"
)

// UserDTO is the public projection of a user. No password material.
type UserDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUser(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.Active,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func NewUsers(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUser(&users[i]))
	}
	return out
}

// BarberDTO is the directory entry shown to every authenticated user.
type BarberDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func NewBarbers(users []models.User) []BarberDTO {
	out := make([]BarberDTO, 0, len(users))
	for _, u := range users {
		out = append(out, BarberDTO{
			ID:        u.ID,
			Name:      u.Name,
			LastName:  u.LastName,
			Email:     u.Email,
			AvatarURL: u.AvatarURL,
		})
	}
	return out
}
