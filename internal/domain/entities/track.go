package entities

import "schooladmin/internal/domain/localize"

// Track is a driving track (circuit, urban route, parking area) lessons
// take place on.
type Track struct {
	ID         string  `toml:"id"`
	Name       string  `toml:"name"`
	NameArabic string  `toml:"name_arabic"`
	NameFrench string  `toml:"name_french"`
	LengthKM   float64 `toml:"length_km"`
}

func (t Track) Fields() localize.Record {
	return localize.Record{
		"name":        t.Name,
		"name_arabic": t.NameArabic,
		"name_french": t.NameFrench,
	}
}
