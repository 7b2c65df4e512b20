package cut

import "github.com/BruksfildServices01/softbarber/internal/httperr"

var (
	ErrMissingClient        = httperr.Validation("missing_fields", "Nombre y apellido del cliente son requeridos.")
	ErrInvalidAmount        = httperr.Validation("invalid_amount", "El monto debe ser mayor a cero.")
	ErrInvalidPaymentMethod = httperr.Validation("invalid_payment_method", "Método de pago inválido.")
	ErrInvalidBarber        = httperr.Validation("invalid_barber", "El barbero no existe o no está activo.")
	ErrInvalidDate          = httperr.Validation("invalid_date", "Fecha inválida.")
)
