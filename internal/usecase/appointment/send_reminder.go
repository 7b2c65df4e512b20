package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/softbarber/internal/domain/appointment"
)

type SendReminderResult struct {
	Sent bool `json:"sent"`
}

// SendReminder is best effort: a failed publish is logged and reported as
// sent=false, never as an error.
type SendReminder struct {
	repo      domain.Repository
	publisher domain.ReminderPublisher
	log       *zap.Logger
	now       func() time.Time
}

func NewSendReminder(
	repo domain.Repository,
	publisher domain.ReminderPublisher,
	log *zap.Logger,
) *SendReminder {
	return &SendReminder{
		repo:      repo,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

func (uc *SendReminder) Execute(
	ctx context.Context,
	appointmentID uint,
) (*SendReminderResult, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	err = uc.publisher.PublishReminder(ctx, domain.Reminder{
		AppointmentID: ap.ID,
		Client:        ap.Client,
		ClientID:      ap.ClientID,
		Barber:        ap.Barber,
		Service:       ap.Service,
		ScheduledAt:   ap.ScheduledAt,
	})
	if err != nil {
		uc.log.Warn("reminder publish failed",
			zap.Uint("appointment_id", ap.ID),
			zap.Error(err),
		)
		return &SendReminderResult{Sent: false}, nil
	}

	domain.MarkReminded(ap, uc.now())
	if err := uc.repo.Update(ctx, ap); err != nil {
		uc.log.Warn("reminder sent but stamp failed",
			zap.Uint("appointment_id", ap.ID),
			zap.Error(err),
		)
	}

	return &SendReminderResult{Sent: true}, nil
}
