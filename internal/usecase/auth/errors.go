package auth

import "github.com/BruksfildServices01/softbarber/internal/httperr"

var (
	ErrMissingFields       = httperr.Validation("missing_fields", "Todos los campos son requeridos.")
	ErrMissingCredentials  = httperr.Validation("missing_fields", "Email y contraseña requeridos.")
	ErrInvalidRole         = httperr.Validation("invalid_role", "Rol inválido.")
	ErrInvalidEmail        = httperr.Validation("invalid_email", "El email no es válido.")
	ErrPasswordTooLong     = httperr.Validation("password_too_long", "La contraseña no puede superar los 72 bytes.")
	ErrAdminSignupDisabled = httperr.Forbidden("admin_signup_disabled", "El registro de administradores está deshabilitado.")
	ErrInvalidCredentials  = httperr.Auth("invalid_credentials", "Credenciales inválidas.")
	ErrAccountInactive     = httperr.Forbidden("account_inactive", "La cuenta está desactivada.")
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72
