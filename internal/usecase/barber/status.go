package barber

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

// SetBarberActive flips the active flag. Barbers are never hard-deleted.
type SetBarberActive struct {
	users user.Repository
	audit audit.Recorder
}

func NewSetBarberActive(
	users user.Repository,
	audit audit.Recorder,
) *SetBarberActive {
	return &SetBarberActive{
		users: users,
		audit: audit,
	}
}

func (uc *SetBarberActive) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	active bool,
) (*models.User, error) {

	u, err := loadBarber(ctx, uc.users, id)
	if err != nil {
		return nil, err
	}

	if u.Active == active {
		return u, nil
	}

	u.Active = active
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	action := "barber_deactivated"
	if active {
		action = "barber_activated"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
