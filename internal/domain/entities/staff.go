package entities

import "schooladmin/internal/domain/localize"

// Staff position codes. Labels live in the message catalogs under
// "staff.position.<code>".
const (
	PositionDirector     = "director"
	PositionInstructor   = "instructor"
	PositionExaminer     = "examiner"
	PositionSecretary    = "secretary"
	PositionMechanic     = "mechanic"
	PositionAccountant   = "accountant"
	PositionReceptionist = "receptionist"
)

// StaffMember represents an employee of the school.
type StaffMember struct {
	ID         string `toml:"id"`
	Name       string `toml:"name"`
	NameArabic string `toml:"name_arabic"`
	NameFrench string `toml:"name_french"`
	Position   string `toml:"position"`
	Phone      string `toml:"phone"`
}

func (s StaffMember) Fields() localize.Record {
	return localize.Record{
		"name":        s.Name,
		"name_arabic": s.NameArabic,
		"name_french": s.NameFrench,
	}
}
