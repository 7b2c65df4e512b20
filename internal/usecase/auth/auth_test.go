package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	authpkg "github.com/BruksfildServices01/softbarber/internal/auth"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/mocks"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/validators"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTokens() *authpkg.TokenManager {
	return authpkg.NewTokenManager(testSecret, "softbarber", 7*24*time.Hour)
}

func newRegister(t *testing.T, allowAdmin bool) (*Register, *mocks.MockUserRepository, *mocks.MockAuditRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	rec := mocks.NewMockAuditRecorder(ctrl)

	uc := NewRegister(users, newTokens(), validators.EmailChecker{}, allowAdmin, rec)
	return uc, users, rec
}

func TestRegister_ThenLogin_SameRole(t *testing.T) {
	ctx := context.Background()
	reg, users, rec := newRegister(t, true)

	var stored *models.User

	users.EXPECT().
		EmailExists(ctx, "ana@corte.co", uint(0)).
		Return(false, nil)
	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = 5
			stored = u
			return nil
		})
	rec.EXPECT().Dispatch(gomock.Any())

	res, err := reg.Execute(ctx, RegisterInput{
		Name:     "Ana",
		LastName: "Gomez",
		Email:    " Ana@Corte.co ",
		Password: "secreto123",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "ana@corte.co", stored.Email)
	assert.True(t, stored.Active)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)

	users.EXPECT().
		GetByEmail(ctx, "ana@corte.co").
		Return(stored, nil)

	login := NewLogin(users, newTokens())
	out, err := login.Execute(ctx, LoginInput{Email: "ana@corte.co", Password: "secreto123"})
	require.NoError(t, err)

	for _, raw := range []string{res.Token, out.Token} {
		s, err := newTokens().Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, access.RoleAdmin, s.Role)
		assert.Equal(t, uint(5), s.UserID)
	}
}

func TestRegister_DefaultsToBarbero(t *testing.T) {
	ctx := context.Background()
	reg, users, rec := newRegister(t, false)

	users.EXPECT().EmailExists(ctx, "luis@corte.co", uint(0)).Return(false, nil)
	users.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	rec.EXPECT().Dispatch(gomock.Any())

	res, err := reg.Execute(ctx, RegisterInput{Name: "Luis", LastName: "Pérez", Email: "luis@corte.co", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "barbero", res.User.Role)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	long := string(make([]byte, 73))

	cases := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"missing name", RegisterInput{LastName: "G", Email: "a@b.co", Password: "x"}, ErrMissingFields},
		{"blank password", RegisterInput{Name: "A", LastName: "G", Email: "a@b.co", Password: "   "}, ErrMissingFields},
		{"bad role", RegisterInput{Name: "A", LastName: "G", Email: "a@b.co", Password: "x", Role: "owner"}, ErrInvalidRole},
		{"bad email", RegisterInput{Name: "A", LastName: "G", Email: "nope", Password: "x"}, ErrInvalidEmail},
		{"long password", RegisterInput{Name: "A", LastName: "G", Email: "a@b.co", Password: long}, ErrPasswordTooLong},
		{"admin disabled", RegisterInput{Name: "A", LastName: "G", Email: "a@b.co", Password: "x", Role: "admin"}, ErrAdminSignupDisabled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg, _, _ := newRegister(t, false)
			_, err := reg.Execute(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	reg, users, _ := newRegister(t, true)

	users.EXPECT().EmailExists(ctx, "ana@corte.co", uint(0)).Return(true, nil)

	_, err := reg.Execute(ctx, RegisterInput{Name: "Ana", LastName: "Gomez", Email: "ana@corte.co", Password: "x"})

	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestRegister_EmailTakenRace(t *testing.T) {
	ctx := context.Background()
	reg, users, _ := newRegister(t, true)

	users.EXPECT().EmailExists(ctx, "ana@corte.co", uint(0)).Return(false, nil)
	users.EXPECT().Create(ctx, gomock.Any()).Return(user.ErrEmailTaken)

	_, err := reg.Execute(ctx, RegisterInput{Name: "Ana", LastName: "Gomez", Email: "ana@corte.co", Password: "x"})

	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	login := NewLogin(users, newTokens())

	hash, err := authpkg.HashPassword("correcta")
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "nadie@corte.co").
		Return(nil, user.ErrNotFound)
	users.EXPECT().
		GetByEmail(ctx, "ana@corte.co").
		Return(&models.User{ID: 1, Email: "ana@corte.co", PasswordHash: hash, Role: "barbero", Active: true}, nil)

	_, errUnknown := login.Execute(ctx, LoginInput{Email: "nadie@corte.co", Password: "correcta"})
	_, errWrong := login.Execute(ctx, LoginInput{Email: "ana@corte.co", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrong)
}

func TestLogin_Inactive(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	login := NewLogin(users, newTokens())

	hash, err := authpkg.HashPassword("correcta")
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "ana@corte.co").
		Return(&models.User{ID: 1, PasswordHash: hash, Role: "barbero", Active: false}, nil)

	_, err = login.Execute(ctx, LoginInput{Email: "ana@corte.co", Password: "correcta"})

	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestLogin_MissingFields(t *testing.T) {
	login := NewLogin(nil, newTokens())

	_, err := login.Execute(context.Background(), LoginInput{Email: "ana@corte.co"})

	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestLogout_RevokesToken(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	revoker := mocks.NewMockRevoker(ctrl)

	exp := time.Now().Add(time.Hour)
	revoker.EXPECT().Revoke(ctx, "jti-1", exp).Return(nil)

	err := NewLogout(revoker).Execute(ctx, authpkg.Session{TokenID: "jti-1", ExpiresAt: exp})

	require.NoError(t, err)
}

func TestGetSession_ResolvesViews(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().GetByID(ctx, uint(2)).Return(&models.User{ID: 2, Role: "barbero"}, nil)

	s, err := NewGetSession(users).Execute(ctx, access.Identity{UserID: 2, Role: access.RoleBarbero})

	require.NoError(t, err)
	assert.Equal(t, access.ViewsFor(access.RoleBarbero), s.Views)
}

var _ audit.Recorder = (*mocks.MockAuditRecorder)(nil)
