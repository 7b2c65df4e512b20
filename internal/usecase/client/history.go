package client

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

// ClientHistory lists the cuts linked to a client, newest first. A barbero
// only sees their own.
type ClientHistory struct {
	clients client.Repository
	cuts    cut.Repository
}

func NewClientHistory(
	clients client.Repository,
	cuts cut.Repository,
) *ClientHistory {
	return &ClientHistory{
		clients: clients,
		cuts:    cuts,
	}
}

func (uc *ClientHistory) Execute(
	ctx context.Context,
	id access.Identity,
	clientID uint,
) ([]models.Cut, error) {

	if _, err := uc.clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	return uc.cuts.List(ctx, cut.Filter{
		ClientID: &clientID,
		BarberID: access.ScopeBarber(id, nil),
	})
}
