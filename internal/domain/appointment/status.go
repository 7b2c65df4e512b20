package appointment

import "github.com/BruksfildServices01/softbarber/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusCancelled Status = "cancelada"
	StatusCompleted Status = "completada"
)

var ErrInvalidStatus = httperr.Validation("invalid_status", "Estado de cita inválido.")

func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusCancelled,
		StatusCompleted,
	}
}

// ===============================
// Validations
// ===============================

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// InitialStatus is used when a booking does not name one.
func InitialStatus() Status {
	return StatusPending
}
