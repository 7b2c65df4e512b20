package barber

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

var (
	ErrMissingFields   = httperr.Validation("missing_fields", "Nombre, apellido, email y contraseña son requeridos.")
	ErrInvalidEmail    = httperr.Validation("invalid_email", "El email no es válido.")
	ErrPasswordTooLong = httperr.Validation("password_too_long", "La contraseña no puede superar los 72 bytes.")
	ErrNotABarber      = httperr.Validation("not_a_barber", "El usuario no es un barbero.")
)

const maxPasswordBytes = 72

// loadBarber fails with user.ErrNotFound for unknown ids and ErrNotABarber
// for users of another role.
func loadBarber(ctx context.Context, users user.Repository, id uint) (*models.User, error) {
	u, err := users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Role != models.RoleBarbero {
		return nil, ErrNotABarber
	}
	return u, nil
}
