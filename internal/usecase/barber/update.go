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

// UpdateBarberInput only touches non-nil fields. An empty password keeps
// the current one.
type UpdateBarberInput struct {
	ActorID  uint
	ID       uint
	Name     *string
	LastName *string
	Email    *string
	Password *string
}

type UpdateBarber struct {
	users  user.Repository
	emails validators.EmailChecker
	audit  audit.Recorder
}

func NewUpdateBarber(
	users user.Repository,
	emails validators.EmailChecker,
	audit audit.Recorder,
) *UpdateBarber {
	return &UpdateBarber{
		users:  users,
		emails: emails,
		audit:  audit,
	}
}

func (uc *UpdateBarber) Execute(
	ctx context.Context,
	in UpdateBarberInput,
) (*models.User, error) {

	u, err := loadBarber(ctx, uc.users, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if u.Name == "" || u.LastName == "" {
		return nil, ErrMissingFields
	}

	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if !uc.emails.Valid(email) {
			return nil, ErrInvalidEmail
		}
		if email != u.Email {
			taken, err := uc.users.EmailExists(ctx, email, u.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, user.ErrEmailTaken
			}
			u.Email = email
		}
	}

	passwordChanged := false
	if in.Password != nil && strings.TrimSpace(*in.Password) != "" {
		if len(*in.Password) > maxPasswordBytes {
			return nil, ErrPasswordTooLong
		}
		if u.PasswordHash, err = authpkg.HashPassword(*in.Password); err != nil {
			return nil, err
		}
		passwordChanged = true
	}

	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "barber_updated",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]bool{"password_changed": passwordChanged},
	})

	return u, nil
}
