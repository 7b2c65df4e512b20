package models

import "time"

const (
	RoleBarbero = "barbero"
	RoleAdmin   = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	LastName     string `gorm:"size:100;not null" json:"lastName"`
	Email        string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;not null" json:"role"`
	Active       bool   `gorm:"not null" json:"isActive"`
	AvatarURL    string `gorm:"size:500" json:"avatarUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName is "name lastName", trimmed when either part is empty.
func (u User) DisplayName() string {
	switch {
	case u.Name == "":
		return u.LastName
	case u.LastName == "":
		return u.Name
	}
	return u.Name + " " + u.LastName
}
