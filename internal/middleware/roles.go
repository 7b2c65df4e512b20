package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
)

// RequireRoles must run after AuthMiddleware. An empty set admits any
// authenticated role.
func RequireRoles(roles ...access.Role) gin.HandlerFunc {
	allowed := make(map[access.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		id, ok := c.Get(ContextIdentity)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "missing_token", "Token no proporcionado.")
			return
		}

		if _, ok := allowed[id.(access.Identity).Role]; !ok {
			httperr.Abort(c, http.StatusForbidden, "forbidden", "No tienes permiso para esta acción.")
			return
		}

		c.Next()
	}
}
