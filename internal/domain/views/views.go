// Package views holds records resolved for one display language.
package views

// Track is a track resolved for display.
type Track struct {
	ID       string
	Name     string
	LengthKM float64
}

// Lesson is a lesson resolved for display. Description is already rendered.
type Lesson struct {
	ID              string
	Title           string
	Description     string
	Track           string
	DurationMinutes int
	Exercises       []Exercise
}

// Exercise is an exercise resolved for display. Statement is already rendered.
type Exercise struct {
	ID        string
	LessonID  string
	Title     string
	Lesson    string
	Statement string
	Points    int
}

// Staff is a staff member resolved for display.
type Staff struct {
	ID       string
	Name     string
	Position string
	Phone    string
}
