package discord

import (
	"schooladmin/internal/domain"
	"schooladmin/internal/ports/output"
)

const keyGenericError = "error.generic"

// DomainErrorMessage maps err to a user-facing message in locale. Errors
// that are not domain errors get the generic message.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return t.T(locale, "error."+code, nil)
	}
	return t.T(locale, keyGenericError, nil)
}
