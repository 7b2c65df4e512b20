package barber

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	authpkg "github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

type CreateBarberInput struct {
	ActorID  uint
	Name     string
	LastName string
	Email    string
	Password string
}

type CreateBarber struct {
	users  user.Repository
	emails validators.EmailChecker
	audit  audit.Recorder
}

func NewCreateBarber(
	users user.Repository,
	emails validators.EmailChecker,
	audit audit.Recorder,
) *CreateBarber {
	return &CreateBarber{
		users:  users,
		emails: emails,
		audit:  audit,
	}
}

func (uc *CreateBarber) Execute(
	ctx context.Context,
	in CreateBarberInput,
) (*models.User, error) {

	u := &models.User{
		Name:     strings.TrimSpace(in.Name),
		LastName: strings.TrimSpace(in.LastName),
		Email:    validators.NormalizeEmail(in.Email),
		Role:     models.RoleBarbero,
		Active:   true,
	}

	if u.Name == "" || u.LastName == "" || u.Email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrMissingFields
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	if !uc.emails.Valid(u.Email) {
		return nil, ErrInvalidEmail
	}

	taken, err := uc.users.EmailExists(ctx, u.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailTaken
	}

	if u.PasswordHash, err = authpkg.HashPassword(in.Password); err != nil {
		return nil, err
	}

	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "barber_created",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
