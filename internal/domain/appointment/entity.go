package appointment

import (
	"time"

	"github.com/BruksfildServices01/softbarber/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ChangeStatus accepts any transition inside the enumeration.
func ChangeStatus(ap *models.Appointment, next Status) error {
	if _, err := ParseStatus(string(next)); err != nil {
		return err
	}
	ap.Status = string(next)
	return nil
}

func MarkReminded(ap *models.Appointment, now time.Time) {
	ap.ReminderSentAt = &now
}
