package auth

import (
	"context"

	authpkg "github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

// ======================================================
// LOGOUT
// ======================================================

type Logout struct {
	revoker authpkg.Revoker
}

func NewLogout(revoker authpkg.Revoker) *Logout {
	return &Logout{revoker: revoker}
}

func (uc *Logout) Execute(ctx context.Context, s authpkg.Session) error {
	return uc.revoker.Revoke(ctx, s.TokenID, s.ExpiresAt)
}

// ======================================================
// ME
// ======================================================

type SessionContext struct {
	User  *models.User
	Views []access.View
}

type GetSession struct {
	users user.Repository
}

func NewGetSession(users user.Repository) *GetSession {
	return &GetSession{users: users}
}

func (uc *GetSession) Execute(ctx context.Context, id access.Identity) (*SessionContext, error) {
	u, err := uc.users.GetByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	return &SessionContext{
		User:  u,
		Views: access.ViewsFor(access.Role(u.Role)),
	}, nil
}
