package user

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

//go:generate mockgen -source=repository.go -destination=../../mocks/user_repository.go -package=mocks -mock_names=Repository=MockUserRepository

var (
	ErrNotFound   = httperr.NotFound("user_not_found", "Usuario no encontrado.")
	ErrEmailTaken = httperr.Conflict("email_already_exists", "El email ya está registrado.")
)

type Repository interface {
	Create(
		ctx context.Context,
		u *models.User,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// EmailExists ignores the user identified by excludeID (0 = none).
	EmailExists(
		ctx context.Context,
		email string,
		excludeID uint,
	) (bool, error)

	Update(
		ctx context.Context,
		u *models.User,
	) error

	ListByRole(
		ctx context.Context,
		role string,
		includeInactive bool,
	) ([]models.User, error)

	ListByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.User, error)
}
