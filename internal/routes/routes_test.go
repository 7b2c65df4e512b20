package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/config"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/appointment"
	"github.com/BruksfildServices01/softbarber/internal/domain/cut"
	"github.com/BruksfildServices01/softbarber/internal/infra/storage"
	"github.com/BruksfildServices01/softbarber/internal/mocks"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

type harness struct {
	engine       *gin.Engine
	tokens       *auth.TokenManager
	users        *mocks.MockUserRepository
	clients      *mocks.MockClientRepository
	cuts         *mocks.MockCutRepository
	appointments *mocks.MockAppointmentRepository
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	h := &harness{
		engine:       gin.New(),
		tokens:       auth.NewTokenManager("0123456789abcdef0123456789abcdef", "softbarber", time.Hour),
		users:        mocks.NewMockUserRepository(ctrl),
		clients:      mocks.NewMockClientRepository(ctrl),
		cuts:         mocks.NewMockCutRepository(ctrl),
		appointments: mocks.NewMockAppointmentRepository(ctrl),
	}

	RegisterRoutes(h.engine, Deps{
		Config:       &config.Config{Timezone: "UTC"},
		Log:          zap.NewNop(),
		Users:        h.users,
		Clients:      h.clients,
		Cuts:         h.cuts,
		Appointments: h.appointments,
		Tokens:       h.tokens,
		Revoker:      auth.NewMemoryRevoker(),
		Audit:        audit.Nop{},
		AuditLogs:    audit.New(nil),
		Reminders:    mocks.NewMockReminderPublisher(ctrl),
		Storage:      storage.Disabled{},
	})
	return h
}

func (h *harness) bearer(t *testing.T, userID uint, role access.Role) string {
	t.Helper()
	tok, err := h.tokens.Issue(userID, role)
	require.NoError(t, err)
	return "Bearer " + tok.Value
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func TestAdminRoutes_ForbiddenForBarbero(t *testing.T) {
	h := newHarness(t)
	token := h.bearer(t, 2, access.RoleBarbero)

	for _, path := range []string{"/api/admin/barberos", "/api/stats", "/api/stats/daily", "/api/admin/audit-logs"} {
		w := h.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}

	w := h.do(http.MethodGet, "/api/admin/barberos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutes_ListBarbers(t *testing.T) {
	h := newHarness(t)

	h.users.EXPECT().
		ListByRole(gomock.Any(), models.RoleBarbero, true).
		Return([]models.User{
			{ID: 2, Name: "Juan", Role: models.RoleBarbero, Active: true, PasswordHash: "secret-hash"},
			{ID: 3, Name: "Ana", Role: models.RoleBarbero},
		}, nil)

	w := h.do(http.MethodGet, "/api/admin/barberos?includeInactive=true", h.bearer(t, 1, access.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-hash")

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestCuts_BarberoAttributionAndListing(t *testing.T) {
	h := newHarness(t)
	token := h.bearer(t, 2, access.RoleBarbero)

	var stored []models.Cut

	h.users.EXPECT().GetByID(gomock.Any(), uint(2)).
		Return(&models.User{ID: 2, Name: "Juan", LastName: "Rios", Role: models.RoleBarbero, Active: true}, nil)
	h.clients.EXPECT().FindByFullName(gomock.Any(), "Luis", "Perez").
		Return([]models.Client{{ID: 7}}, nil)
	h.cuts.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Cut) error {
			c.ID = 1
			c.CreatedAt = time.Now()
			stored = append(stored, *c)
			return nil
		})

	w := h.do(http.MethodPost, "/api/cuts", token, map[string]any{
		"barberId":       99,
		"clientName":     "Luis",
		"clientLastName": "Perez",
		"amount":         25000,
		"paymentMethod":  "efectivo",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.EqualValues(t, 2, created["barberId"])
	assert.Equal(t, "Juan Rios", created["barberName"])

	h.cuts.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f cut.Filter) ([]models.Cut, error) {
			require.NotNil(t, f.BarberID)
			assert.Equal(t, uint(2), *f.BarberID)
			return stored, nil
		})

	w = h.do(http.MethodGet, "/api/cuts?barberId=99", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.EqualValues(t, 2, listed[0]["barberId"])
}

func TestCuts_ValidationError(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/cuts", h.bearer(t, 2, access.RoleBarbero), map[string]any{
		"clientName":     "Luis",
		"clientLastName": "Perez",
		"amount":         -5,
		"paymentMethod":  "efectivo",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_amount")
}

func TestAppointments_CancelKeepsRecord(t *testing.T) {
	h := newHarness(t)
	token := h.bearer(t, 2, access.RoleBarbero)

	ap := &models.Appointment{
		ID:     5,
		Client: "Ana",
		Date:   "2026-10-20",
		Time:   "10:00",
		Status: string(appointment.StatusPending),
	}

	h.appointments.EXPECT().GetByID(gomock.Any(), uint(5)).Return(ap, nil)
	h.appointments.EXPECT().Update(gomock.Any(), ap).Return(nil)

	w := h.do(http.MethodPut, "/api/appointments/5/status", token, map[string]string{"status": "cancelada"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	h.appointments.EXPECT().List(gomock.Any(), gomock.Any()).Return([]models.Appointment{*ap}, nil)

	w = h.do(http.MethodGet, "/api/appointments", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "cancelada", listed[0]["status"])

	w = h.do(http.MethodPut, "/api/appointments/5/status", token, map[string]string{"status": "borrada"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppointments_UnknownIsNotFound(t *testing.T) {
	h := newHarness(t)
	h.appointments.EXPECT().GetByID(gomock.Any(), uint(404)).Return(nil, appointment.ErrNotFound)

	w := h.do(http.MethodGet, "/api/appointments/404", h.bearer(t, 2, access.RoleBarbero), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "appointment_not_found")
}

func TestAuthMe_ViewsByRole(t *testing.T) {
	h := newHarness(t)
	h.users.EXPECT().GetByID(gomock.Any(), uint(2)).
		Return(&models.User{ID: 2, Role: models.RoleBarbero, Active: true}, nil)

	w := h.do(http.MethodGet, "/api/auth/me", h.bearer(t, 2, access.RoleBarbero), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Views []string `json:"views"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body.Views, "stats")
	assert.Contains(t, body.Views, "cuts")
}

func TestLogout_RevokesToken(t *testing.T) {
	h := newHarness(t)
	token := h.bearer(t, 2, access.RoleBarbero)

	w := h.do(http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(http.MethodGet, "/api/cuts", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAvatarUpload_StorageDisabled(t *testing.T) {
	h := newHarness(t)
	h.users.EXPECT().GetByID(gomock.Any(), uint(3)).
		Return(&models.User{ID: 3, Role: models.RoleBarbero, Active: true}, nil)

	var body bytes.Buffer
	mw := newMultipart(t, &body)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/barberos/3/avatar", &body)
	req.Header.Set("Content-Type", mw)
	req.Header.Set("Authorization", h.bearer(t, 1, access.RoleAdmin))

	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "storage_disabled")
}
