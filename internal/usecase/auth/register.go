package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	authpkg "github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	Name     string
	LastName string
	Email    string
	Password string
	Role     string
}

type Result struct {
	Token string
	User  *models.User
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	users      user.Repository
	tokens     *authpkg.TokenManager
	emails     validators.EmailChecker
	allowAdmin bool
	audit      audit.Recorder
}

func NewRegister(
	users user.Repository,
	tokens *authpkg.TokenManager,
	emails validators.EmailChecker,
	allowAdmin bool,
	audit audit.Recorder,
) *Register {
	return &Register{
		users:      users,
		tokens:     tokens,
		emails:     emails,
		allowAdmin: allowAdmin,
		audit:      audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*Result, error) {

	// --------------------------------------------------
	// 1. Campos requeridos
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	lastName := strings.TrimSpace(in.LastName)
	email := validators.NormalizeEmail(in.Email)

	if name == "" || lastName == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrMissingFields
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	role, ok := access.ParseRole(strings.TrimSpace(in.Role))
	if !ok {
		return nil, ErrInvalidRole
	}
	if role == access.RoleAdmin && !uc.allowAdmin {
		return nil, ErrAdminSignupDisabled
	}

	if !uc.emails.Valid(email) {
		return nil, ErrInvalidEmail
	}

	// --------------------------------------------------
	// 2. Email único
	// --------------------------------------------------
	exists, err := uc.users.EmailExists(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrEmailTaken
	}

	// --------------------------------------------------
	// 3. Persistencia
	// --------------------------------------------------
	hash, err := authpkg.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         string(role),
		Active:       true,
	}

	// a concurrent registration surfaces here as user.ErrEmailTaken
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	tok, err := uc.tokens.Issue(u.ID, role)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"role": u.Role},
	})

	return &Result{Token: tok.Value, User: u}, nil
}
