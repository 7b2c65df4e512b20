package models

import "time"

// Cut is an immutable record of a completed, paid service.
type Cut struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"not null;index" json:"barberId"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClientID       *uint  `gorm:"index" json:"clientId,omitempty"`
	ClientName     string `gorm:"size:100;not null" json:"clientName"`
	ClientLastName string `gorm:"size:100;not null" json:"clientLastName"`

	Amount        float64 `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod string  `gorm:"size:20;not null" json:"paymentMethod"`
	Observations  string  `gorm:"type:text" json:"observations"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
