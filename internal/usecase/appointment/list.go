package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/softbarber/internal/domain/appointment"
	"github.com/BruksfildServices01/softbarber/internal/models"
	"github.com/BruksfildServices01/softbarber/internal/timezone"
)

type ListAppointmentsInput struct {
	BarberID  *uint
	StartDate string
	EndDate   string
	Status    string
}

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	var f domain.Filter

	if in.BarberID != nil && *in.BarberID != 0 {
		f.BarberID = in.BarberID
	}

	if s := strings.TrimSpace(in.StartDate); s != "" {
		from, err := timezone.ParseBound(s, uc.loc, false)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.From = &from
	}
	if s := strings.TrimSpace(in.EndDate); s != "" {
		to, err := timezone.ParseBound(s, uc.loc, true)
		if err != nil {
			return nil, ErrInvalidDate
		}
		f.To = &to
	}

	if s := strings.TrimSpace(in.Status); s != "" {
		st, err := domain.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		f.Status = st
	}

	return uc.repo.List(ctx, f)
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.GetByID(ctx, id)
}
