package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/appointment"
	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/domain/user"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/timezone"
)

var (
	ErrMissingFields = httperr.Validation("missing_fields", "Cliente, fecha y hora son requeridos.")
	ErrInvalidDate   = httperr.Validation("invalid_date_or_time", "Fecha u hora inválida.")
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Identity access.Identity

	Client   string
	ClientID *uint
	Barber   string
	BarberID *uint

	Date    string
	Time    string
	Service string
	Status  string
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	clients client.Repository
	users   user.Repository
	audit   audit.Recorder
	loc     *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	clients client.Repository,
	users user.Repository,
	audit audit.Recorder,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		clients: clients,
		users:   users,
		audit:   audit,
		loc:     loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		Client:  strings.TrimSpace(in.Client),
		Barber:  strings.TrimSpace(in.Barber),
		Date:    strings.TrimSpace(in.Date),
		Time:    strings.TrimSpace(in.Time),
		Service: strings.TrimSpace(in.Service),
		Notes:   strings.TrimSpace(in.Notes),
	}

	// --------------------------------------------------
	// Linked client / barber
	// --------------------------------------------------
	// Client is free text. Only an explicit clientId links a client record;
	// appointments never create one.
	if in.ClientID != nil && *in.ClientID != 0 {
		c, err := uc.clients.GetByID(ctx, *in.ClientID)
		if err != nil {
			return nil, err
		}
		ap.ClientID = &c.ID
		if ap.Client == "" {
			ap.Client = strings.TrimSpace(c.Name + " " + c.LastName)
		}
	}

	if in.BarberID != nil && *in.BarberID != 0 {
		b, err := uc.users.GetByID(ctx, *in.BarberID)
		if err != nil {
			return nil, err
		}
		ap.BarberID = &b.ID
		if ap.Barber == "" {
			ap.Barber = b.DisplayName()
		}
	}

	if ap.Client == "" || ap.Date == "" || ap.Time == "" {
		return nil, ErrMissingFields
	}

	// --------------------------------------------------
	// Date / time in the shop timezone
	// --------------------------------------------------
	at, err := timezone.ParseDateTime(ap.Date, ap.Time, uc.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	ap.ScheduledAt = at

	// --------------------------------------------------
	// Status
	// --------------------------------------------------
	status := domain.InitialStatus()
	if s := strings.TrimSpace(in.Status); s != "" {
		if status, err = domain.ParseStatus(s); err != nil {
			return nil, err
		}
	}
	ap.Status = string(status)

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	actor := in.Identity.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
