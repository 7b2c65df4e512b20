package auth

import (
	"context"
	"errors"
	"strings"

	authpkg "github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	users  user.Repository
	tokens *authpkg.TokenManager
}

func NewLogin(
	users user.Repository,
	tokens *authpkg.TokenManager,
) *Login {
	return &Login{
		users:  users,
		tokens: tokens,
	}
}

// Execute answers unknown emails and wrong passwords with the same error.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*Result, error) {

	email := validators.NormalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrMissingCredentials
	}

	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			authpkg.BurnCompare(in.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !authpkg.CheckPassword(u.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	if !u.Active {
		return nil, ErrAccountInactive
	}

	tok, err := uc.tokens.Issue(u.ID, access.Role(u.Role))
	if err != nil {
		return nil, err
	}

	return &Result{Token: tok.Value, User: u}, nil
}
