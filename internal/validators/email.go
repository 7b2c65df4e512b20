package validators

import (
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmailSyntaxValid(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// EmailChecker validates syntax and, when enabled, that the domain resolves.
type EmailChecker struct {
	CheckDomain bool
}

func (c EmailChecker) Valid(email string) bool {
	if !IsEmailSyntaxValid(email) {
		return false
	}
	if c.CheckDomain {
		return IsEmailDomainValid(email)
	}
	return true
}
