package appointment

import (
	"context"

	"github.com/BruksfildServices01/softbarber/internal/audit"
	"github.com/BruksfildServices01/softbarber/internal/domain/access"
	domain "github.com/BruksfildServices01/softbarber/internal/domain/appointment"
	"github.com/BruksfildServices01/softbarber/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateStatus(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	id access.Identity,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	prev := ap.Status
	if err := domain.ChangeStatus(ap, next); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	actor := id.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": prev, "to": ap.Status},
	})

	return ap, nil
}
