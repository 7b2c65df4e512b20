package dto

import (
	"time"

	"github.com/BruksfildServices01/softbarber/internal/models"
)

type CutBarberDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

type CutDTO struct {
	ID             uint         `json:"id"`
	BarberID       uint         `json:"barberId"`
	Barber         CutBarberDTO `json:"barber"`
	BarberName     string       `json:"barberName"`
	ClientID       *uint        `json:"clientId,omitempty"`
	ClientName     string       `json:"clientName"`
	ClientLastName string       `json:"clientLastName"`
	Amount         float64      `json:"amount"`
	PaymentMethod  string       `json:"paymentMethod"`
	Observations   string       `json:"observations"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// NewCut expects c.Barber to be loaded; otherwise the barber fields stay
// empty except for the id.
func NewCut(c *models.Cut) CutDTO {
	return CutDTO{
		ID:       c.ID,
		BarberID: c.BarberID,
		Barber: CutBarberDTO{
			ID:       c.BarberID,
			Name:     c.Barber.Name,
			LastName: c.Barber.LastName,
		},
		BarberName:     c.Barber.DisplayName(),
		ClientID:       c.ClientID,
		ClientName:     c.ClientName,
		ClientLastName: c.ClientLastName,
		Amount:         c.Amount,
		PaymentMethod:  c.PaymentMethod,
		Observations:   c.Observations,
		CreatedAt:      c.CreatedAt,
	}
}

func NewCuts(cuts []models.Cut) []CutDTO {
	out := make([]CutDTO, 0, len(cuts))
	for i := range cuts {
		out = append(out, NewCut(&cuts[i]))
	}
	return out
}
