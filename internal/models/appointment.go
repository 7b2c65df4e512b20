package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Client   string `gorm:"size:200;not null" json:"client"`
	ClientID *uint  `json:"clientId,omitempty"`

	Barber   string `gorm:"size:200" json:"barber"`
	BarberID *uint  `json:"barberId,omitempty"`

	Date        string    `gorm:"size:10;not null" json:"date"`
	Time        string    `gorm:"size:5;not null" json:"time"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduledAt"`

	Service string `gorm:"size:150" json:"service"`
	Status  string `gorm:"size:20;not null" json:"status"`
	Notes   string `gorm:"type:text" json:"notes"`

	ReminderSentAt *time.Time `json:"reminderSentAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
