package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(tokens *auth.TokenManager, revoker auth.Revoker, roles ...access.Role) *gin.Engine {
	r := gin.New()
	r.GET("/p",
		AuthMiddleware(tokens, revoker),
		RequireRoles(roles...),
		func(c *gin.Context) {
			id := IdentityFrom(c)
			c.JSON(http.StatusOK, gin.H{"userId": id.UserID, "role": id.Role})
		},
	)
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, "softbarber", time.Hour)
	revoker := auth.NewMemoryRevoker()
	r := newEngine(tokens, revoker)

	tok, err := tokens.Issue(4, access.RoleBarbero)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		w := do(r, "Bearer "+tok.Value)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":4,"role":"barbero"}`, w.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		w := do(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "missing_token")
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := do(r, "Basic "+tok.Value)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tampered", func(t *testing.T) {
		w := do(r, "Bearer "+tok.Value+"x")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_token")
	})

	t.Run("other secret", func(t *testing.T) {
		other := auth.NewTokenManager("ffffffffffffffffffffffffffffffff", "softbarber", time.Hour)
		foreign, err := other.Issue(4, access.RoleAdmin)
		require.NoError(t, err)

		w := do(r, "Bearer "+foreign.Value)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked", func(t *testing.T) {
		require.NoError(t, revoker.Revoke(context.Background(), tok.ID, tok.ExpiresAt))

		w := do(r, "Bearer "+tok.Value)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token_revoked")
	})
}

func TestRequireRoles(t *testing.T) {
	tokens := auth.NewTokenManager(testSecret, "softbarber", time.Hour)
	r := newEngine(tokens, auth.NewMemoryRevoker(), access.RoleAdmin)

	barbero, err := tokens.Issue(2, access.RoleBarbero)
	require.NoError(t, err)
	admin, err := tokens.Issue(1, access.RoleAdmin)
	require.NoError(t, err)

	w := do(r, "Bearer "+barbero.Value)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden")

	w = do(r, "Bearer "+admin.Value)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusInternalServerError)
	})

	for _, path := range []string{"/ok", "/boom"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["errors"], assert.AnError.Error())
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
