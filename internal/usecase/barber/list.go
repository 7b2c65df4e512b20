package barber

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

type ListBarbers struct {
	users user.Repository
}

func NewListBarbers(users user.Repository) *ListBarbers {
	return &ListBarbers{users: users}
}

func (uc *ListBarbers) Execute(
	ctx context.Context,
	includeInactive bool,
) ([]models.User, error) {
	return uc.users.ListByRole(ctx, models.RoleBarbero, includeInactive)
}

// Directory lists active barbers for any authenticated user.
func (uc *ListBarbers) Directory(ctx context.Context) ([]models.User, error) {
	return uc.users.ListByRole(ctx, models.RoleBarbero, false)
}
