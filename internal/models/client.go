package models

import "time"

// Cliente sin login. Email y teléfono son opcionales.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	LastName string `gorm:"size:100;not null" json:"lastName"`
	Email    string `gorm:"size:150" json:"email,omitempty"`
	Phone    string `gorm:"size:30" json:"phone,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
