package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextIdentity = "identity"
	ContextSession  = "session"
)

// AuthMiddleware requires a valid, unrevoked bearer token.
func AuthMiddleware(tokens *auth.TokenManager, revoker auth.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortWith(c, err)
			return
		}

		session, err := tokens.Parse(raw)
		if err != nil {
			abortWith(c, err)
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), session.TokenID)
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}
		if revoked {
			abortWith(c, auth.ErrTokenRevoked)
			return
		}

		c.Set(ContextSession, *session)
		c.Set(ContextIdentity, session.Identity)
		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUserRole, session.Role)

		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", auth.ErrInvalidToken
	}

	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return "", auth.ErrMissingToken
	}
	return raw, nil
}

func abortWith(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.Abort(c, be.Status(), be.Code, be.Message)
		return
	}
	httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token inválido.")
}

// IdentityFrom is only valid behind AuthMiddleware.
func IdentityFrom(c *gin.Context) access.Identity {
	return c.MustGet(ContextIdentity).(access.Identity)
}

func SessionFrom(c *gin.Context) auth.Session {
	return c.MustGet(ContextSession).(auth.Session)
}
