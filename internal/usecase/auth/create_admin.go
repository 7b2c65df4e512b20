package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	authpkg "github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

type CreateAdminInput struct {
	Name     string
	LastName string
	Email    string
	Password string
}

// CreateAdmin seeds an administrator from the command line. It ignores the
// ALLOW_ADMIN_SIGNUP switch, which only guards the public endpoint.
type CreateAdmin struct {
	users  user.Repository
	emails validators.EmailChecker
	audit  audit.Recorder
}

func NewCreateAdmin(
	users user.Repository,
	emails validators.EmailChecker,
	audit audit.Recorder,
) *CreateAdmin {
	return &CreateAdmin{
		users:  users,
		emails: emails,
		audit:  audit,
	}
}

func (uc *CreateAdmin) Execute(
	ctx context.Context,
	in CreateAdminInput,
) (*models.User, error) {

	name := strings.TrimSpace(in.Name)
	lastName := strings.TrimSpace(in.LastName)
	email := validators.NormalizeEmail(in.Email)

	if name == "" || lastName == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrMissingFields
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	if !uc.emails.Valid(email) {
		return nil, ErrInvalidEmail
	}

	exists, err := uc.users.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailTaken
	}

	hash, err := authpkg.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Active:       true,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "admin_created",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"source": "cli"},
	})

	return u, nil
}
