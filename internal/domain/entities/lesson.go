package entities

import "schooladmin/internal/domain/localize"

// Lesson is a course unit taught on a track.
type Lesson struct {
	ID                string `toml:"id"`
	TrackID           string `toml:"track_id"`
	Title             string `toml:"title"`
	TitleArabic       string `toml:"title_arabic"`
	TitleFrench       string `toml:"title_french"`
	Description       string `toml:"description"`
	DescriptionArabic string `toml:"description_arabic"`
	DescriptionFrench string `toml:"description_french"`
	DurationMinutes   int    `toml:"duration_minutes"`
}

func (l Lesson) Fields() localize.Record {
	return localize.Record{
		"title":              l.Title,
		"title_arabic":       l.TitleArabic,
		"title_french":       l.TitleFrench,
		"description":        l.Description,
		"description_arabic": l.DescriptionArabic,
		"description_french": l.DescriptionFrench,
	}
}
