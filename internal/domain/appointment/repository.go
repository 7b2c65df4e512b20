package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

//go:generate mockgen -source=repository.go -destination=../../mocks/appointment_repository.go -package=mocks -mock_names=Repository=MockAppointmentRepository,ReminderPublisher=MockReminderPublisher

var ErrNotFound = httperr.NotFound("appointment_not_found", "Cita no encontrada.")

// Filter bounds apply to ScheduledAt and are inclusive.
type Filter struct {
	BarberID *uint
	From     *time.Time
	To       *time.Time
	Status   Status
}

type Repository interface {
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// List is ordered by ScheduledAt ascending.
	List(
		ctx context.Context,
		f Filter,
	) ([]models.Appointment, error)
}

// Reminder is the event handed to the delivery pipeline.
type Reminder struct {
	AppointmentID uint      `json:"appointmentId"`
	Client        string    `json:"client"`
	ClientID      *uint     `json:"clientId,omitempty"`
	Barber        string    `json:"barber"`
	Service       string    `json:"service"`
	ScheduledAt   time.Time `json:"scheduledAt"`
}

type ReminderPublisher interface {
	PublishReminder(
		ctx context.Context,
		r Reminder,
	) error
}
