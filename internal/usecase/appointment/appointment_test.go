package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/appointment"
	"github.com/BruksfildServices01/softbarber/internal/mocks"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

var barbero = access.Identity{UserID: 2, Role: access.RoleBarbero}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	t.Run("defaults to pendiente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAppointmentRepository(ctrl)
		users := mocks.NewMockUserRepository(ctrl)
		rec := mocks.NewMockAuditRecorder(ctrl)

		barberID := uint(3)
		users.EXPECT().GetByID(ctx, barberID).
			Return(&models.User{ID: 3, Name: "Juan", LastName: "Rios"}, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		rec.EXPECT().Dispatch(gomock.Any())

		uc := NewCreateAppointment(repo, mocks.NewMockClientRepository(ctrl), users, rec, loc)
		ap, err := uc.Execute(ctx, CreateAppointmentInput{
			Identity: barbero,
			Client:   "Luis Perez",
			BarberID: &barberID,
			Date:     "2026-10-20",
			Time:     "15:30",
			Service:  "Corte",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), ap.Status)
		assert.Equal(t, "Juan Rios", ap.Barber)
		assert.Equal(t, time.Date(2026, 10, 20, 15, 30, 0, 0, loc), ap.ScheduledAt)
	})

	t.Run("free-text client is not linked or created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAppointmentRepository(ctrl)
		rec := mocks.NewMockAuditRecorder(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		rec.EXPECT().Dispatch(gomock.Any())

		// no client or user repository call is expected
		uc := NewCreateAppointment(repo, mocks.NewMockClientRepository(ctrl), mocks.NewMockUserRepository(ctrl), rec, loc)
		ap, err := uc.Execute(ctx, CreateAppointmentInput{
			Identity: barbero,
			Client:   "Luis Perez",
			Date:     "2026-10-20",
			Time:     "09:00",
		})
		require.NoError(t, err)
		assert.Nil(t, ap.ClientID)
		assert.Equal(t, "Luis Perez", ap.Client)
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewCreateAppointment(
			mocks.NewMockAppointmentRepository(ctrl),
			mocks.NewMockClientRepository(ctrl),
			mocks.NewMockUserRepository(ctrl),
			mocks.NewMockAuditRecorder(ctrl),
			loc,
		)

		_, err := uc.Execute(ctx, CreateAppointmentInput{Date: "2026-10-20", Time: "10:00"})
		assert.ErrorIs(t, err, ErrMissingFields)

		_, err = uc.Execute(ctx, CreateAppointmentInput{Client: "Ana", Date: "20/10/2026", Time: "10:00"})
		assert.ErrorIs(t, err, ErrInvalidDate)

		_, err = uc.Execute(ctx, CreateAppointmentInput{Client: "Ana", Date: "2026-10-20", Time: "10:00", Status: "scheduled"})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestUpdateStatus_CancelKeepsRecord(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAppointmentRepository(ctrl)
	rec := mocks.NewMockAuditRecorder(ctrl)

	stored := &models.Appointment{ID: 4, Client: "Ana", Status: string(domain.StatusPending)}

	repo.EXPECT().GetByID(ctx, uint(4)).Return(stored, nil)
	repo.EXPECT().Update(ctx, stored).Return(nil)
	rec.EXPECT().Dispatch(gomock.Any())

	got, err := NewUpdateStatus(repo, rec).Execute(ctx, barbero, 4, "cancelada")
	require.NoError(t, err)
	assert.Equal(t, "cancelada", got.Status)
	assert.Equal(t, uint(4), got.ID)
}

func TestUpdateStatus_AnyTransition(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAppointmentRepository(ctrl)
	rec := mocks.NewMockAuditRecorder(ctrl)

	repo.EXPECT().GetByID(ctx, uint(4)).
		Return(&models.Appointment{ID: 4, Status: string(domain.StatusCompleted)}, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	rec.EXPECT().Dispatch(gomock.Any())

	got, err := NewUpdateStatus(repo, rec).Execute(ctx, barbero, 4, "pendiente")
	require.NoError(t, err)
	assert.Equal(t, "pendiente", got.Status)
}

func TestUpdateStatus_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAppointmentRepository(ctrl)
	uc := NewUpdateStatus(repo, mocks.NewMockAuditRecorder(ctrl))

	_, err := uc.Execute(ctx, barbero, 4, "borrada")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	repo.EXPECT().GetByID(ctx, uint(99)).Return(nil, domain.ErrNotFound)
	_, err = uc.Execute(ctx, barbero, 99, "confirmada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSendReminder(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	t.Run("stamps on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAppointmentRepository(ctrl)
		pub := mocks.NewMockReminderPublisher(ctrl)

		ap := &models.Appointment{ID: 4, Client: "Ana", Service: "Barba"}
		repo.EXPECT().GetByID(ctx, uint(4)).Return(ap, nil)
		pub.EXPECT().PublishReminder(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r domain.Reminder) error {
				assert.Equal(t, uint(4), r.AppointmentID)
				assert.Equal(t, "Ana", r.Client)
				return nil
			})
		repo.EXPECT().Update(ctx, ap).Return(nil)

		uc := NewSendReminder(repo, pub, zap.NewNop())
		uc.now = func() time.Time { return fixed }

		res, err := uc.Execute(ctx, 4)
		require.NoError(t, err)
		assert.True(t, res.Sent)
		require.NotNil(t, ap.ReminderSentAt)
		assert.Equal(t, fixed, *ap.ReminderSentAt)
	})

	t.Run("publish failure is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAppointmentRepository(ctrl)
		pub := mocks.NewMockReminderPublisher(ctrl)

		ap := &models.Appointment{ID: 4}
		repo.EXPECT().GetByID(ctx, uint(4)).Return(ap, nil)
		pub.EXPECT().PublishReminder(ctx, gomock.Any()).Return(errors.New("redis down"))

		res, err := NewSendReminder(repo, pub, zap.NewNop()).Execute(ctx, 4)
		require.NoError(t, err)
		assert.False(t, res.Sent)
		assert.Nil(t, ap.ReminderSentAt)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockAppointmentRepository(ctrl)
		repo.EXPECT().GetByID(ctx, uint(9)).Return(nil, domain.ErrNotFound)

		_, err := NewSendReminder(repo, mocks.NewMockReminderPublisher(ctrl), zap.NewNop()).Execute(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestListAppointments_Filters(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAppointmentRepository(ctrl)

	repo.EXPECT().
		List(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.Filter) ([]models.Appointment, error) {
			require.NotNil(t, f.BarberID)
			assert.Equal(t, uint(3), *f.BarberID)
			assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), *f.From)
			assert.Nil(t, f.To)
			assert.Equal(t, domain.StatusConfirmed, f.Status)
			return nil, nil
		})

	barberID := uint(3)
	uc := NewListAppointments(repo, time.UTC)
	_, err := uc.Execute(ctx, ListAppointmentsInput{
		BarberID:  &barberID,
		StartDate: "2026-10-01",
		Status:    "confirmada",
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, ListAppointmentsInput{EndDate: "mañana"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
