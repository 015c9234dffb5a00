package domain

import "errors"

// Domain errors.
var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUnrenderableMath  = errors.New("unrenderable math")
	ErrUnknownLanguage   = errors.New("unknown language")
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrNotAdministrator  = errors.New("administrator permission required")
	ErrEmptyQueryResults = errors.New("no matching records")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrRecordNotFound, "record_not_found"},
	{ErrUnrenderableMath, "unrenderable_math"},
	{ErrUnknownLanguage, "unknown_language"},
	{ErrInvalidCatalog, "invalid_catalog"},
	{ErrNotAdministrator, "not_administrator"},
	{ErrEmptyQueryResults, "no_results"},
}

// Code returns the stable code of the domain error wrapped in err, or "" when
// err is not a domain error. Codes are used as message keys ("error.<code>").
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}
