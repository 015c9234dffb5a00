package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/views"
)

const (
	embedColor = 0x5865F2

	// Discord limits.
	maxDescription = 4096
	maxFieldValue  = 1024
	maxFieldName   = 256
	maxTitle       = 256
	maxFields      = 25

	// rlm is the right-to-left mark prefixed to Arabic lines.
	rlm = "\u200f"
)

// Labels renders a message key in the interaction language.
type Labels func(key string, data map[string]any) string

// Truncate cuts s to at most limit runes, ending with an ellipsis when cut.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return string(r[:max(limit, 0)])
	}
	return string(r[:limit-1]) + "…"
}

// Directional marks every line of s as right-to-left for RTL languages.
func Directional(s string, dir locale.Direction) string {
	if dir != locale.RTL || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = rlm + l
		}
	}
	return strings.Join(lines, "\n")
}

func field(name, value string, dir locale.Direction, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   Truncate(Directional(name, dir), maxFieldName),
		Value:  Truncate(Directional(value, dir), maxFieldValue),
		Inline: inline,
	}
}

// BuildLessonEmbed builds the detail embed of a lesson with its exercises.
func BuildLessonEmbed(l *views.Lesson, tr Labels, dir locale.Direction) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       Truncate(Directional("📘 "+l.Title, dir), maxTitle),
		Description: Truncate(Directional(l.Description, dir), maxDescription),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: l.ID},
	}
	if l.Track != "" {
		embed.Fields = append(embed.Fields, field(tr("embed.track", nil), l.Track, dir, true))
	}
	if l.DurationMinutes > 0 {
		embed.Fields = append(embed.Fields, field(tr("embed.duration", nil),
			tr("embed.duration_value", map[string]any{"Minutes": l.DurationMinutes}), dir, true))
	}
	if len(l.Exercises) > 0 {
		lines := make([]string, 0, len(l.Exercises))
		for _, e := range l.Exercises {
			lines = append(lines, fmt.Sprintf("• %s (`%s`)", e.Title, e.ID))
		}
		embed.Fields = append(embed.Fields, field(tr("embed.exercises", nil), strings.Join(lines, "\n"), dir, false))
	}
	return embed
}

// BuildExerciseEmbed builds the detail embed of an exercise.
func BuildExerciseEmbed(e *views.Exercise, tr Labels, dir locale.Direction) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       Truncate(Directional("✏️ "+e.Title, dir), maxTitle),
		Description: Truncate(Directional(e.Statement, dir), maxDescription),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: e.ID},
	}
	if e.Lesson != "" {
		embed.Fields = append(embed.Fields, field(tr("embed.lesson", nil), e.Lesson, dir, true))
	}
	if e.Points > 0 {
		embed.Fields = append(embed.Fields, field(tr("embed.points", nil), fmt.Sprint(e.Points), dir, true))
	}
	return embed
}

// ListItem is one line of a result list.
type ListItem struct {
	Name  string
	Value string
}

// BuildListEmbed builds a result list; items beyond Discord's field limit are
// dropped.
func BuildListEmbed(title string, items []ListItem, dir locale.Direction) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: Truncate(Directional(title, dir), maxTitle),
		Color: embedColor,
	}
	for i, it := range items {
		if i == maxFields {
			break
		}
		value := it.Value
		if strings.TrimSpace(value) == "" {
			value = "—"
		}
		embed.Fields = append(embed.Fields, field(it.Name, value, dir, false))
	}
	return embed
}

// StaffItems turns staff views into list items.
func StaffItems(staff []views.Staff, tr Labels) []ListItem {
	items := make([]ListItem, 0, len(staff))
	for _, s := range staff {
		parts := []string{}
		if s.Position != "" {
			parts = append(parts, fmt.Sprintf("%s : %s", tr("embed.position", nil), s.Position))
		}
		if s.Phone != "" {
			parts = append(parts, fmt.Sprintf("%s : %s", tr("embed.phone", nil), s.Phone))
		}
		items = append(items, ListItem{Name: s.Name, Value: strings.Join(parts, "\n")})
	}
	return items
}

// TrackItems turns track views into list items.
func TrackItems(tracks []views.Track, tr Labels) []ListItem {
	items := make([]ListItem, 0, len(tracks))
	for _, t := range tracks {
		value := fmt.Sprintf("`%s`", t.ID)
		if t.LengthKM > 0 {
			value += " · " + tr("embed.length", map[string]any{"Length": fmt.Sprintf("%.1f", t.LengthKM)})
		}
		items = append(items, ListItem{Name: t.Name, Value: value})
	}
	return items
}

// LessonItems turns lesson views into list items.
func LessonItems(lessons []views.Lesson) []ListItem {
	items := make([]ListItem, 0, len(lessons))
	for _, l := range lessons {
		value := fmt.Sprintf("`%s`", l.ID)
		if l.Track != "" {
			value += " · " + l.Track
		}
		items = append(items, ListItem{Name: l.Title, Value: value})
	}
	return items
}

// ExerciseItems turns exercise views into list items.
func ExerciseItems(exercises []views.Exercise) []ListItem {
	items := make([]ListItem, 0, len(exercises))
	for _, e := range exercises {
		value := fmt.Sprintf("`%s`", e.ID)
		if e.Lesson != "" {
			value += " · " + e.Lesson
		}
		items = append(items, ListItem{Name: e.Title, Value: value})
	}
	return items
}
