package entities

import "schooladmin/internal/domain/localize"

// Exercise belongs to a lesson. Statements may embed $...$ and $$...$$ math.
type Exercise struct {
	ID              string `toml:"id"`
	LessonID        string `toml:"lesson_id"`
	Title           string `toml:"title"`
	TitleArabic     string `toml:"title_arabic"`
	TitleFrench     string `toml:"title_french"`
	Statement       string `toml:"statement"`
	StatementArabic string `toml:"statement_arabic"`
	StatementFrench string `toml:"statement_french"`
	Points          int    `toml:"points"`
}

func (e Exercise) Fields() localize.Record {
	return localize.Record{
		"title":            e.Title,
		"title_arabic":     e.TitleArabic,
		"title_french":     e.TitleFrench,
		"statement":        e.Statement,
		"statement_arabic": e.StatementArabic,
		"statement_french": e.StatementFrench,
	}
}
