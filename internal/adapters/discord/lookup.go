package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	pkgdiscord "schooladmin/pkg/discord"
)

// lookup builds the reply of a lookup command. A query naming a record id,
// or matching a single record, yields the detail embed; otherwise the
// matching records are listed.
func (h *Handler) lookup(ctx context.Context, command string, lang localize.Language, query string) (*discordgo.InteractionResponseData, error) {
	query = strings.TrimSpace(query)
	labels := h.labels(lang)
	dir := locale.DirectionOf(lang)

	title := labels("embed.all_results", nil)
	if query != "" {
		title = labels("embed.results", map[string]any{"Query": query})
	}

	var embed *discordgo.MessageEmbed
	switch command {
	case cmdLesson:
		e, err := h.lessonEmbed(ctx, lang, query, title)
		if err != nil {
			return nil, err
		}
		embed = e
	case cmdExercise:
		e, err := h.exerciseEmbed(ctx, lang, query, title)
		if err != nil {
			return nil, err
		}
		embed = e
	case cmdStaff:
		staff, err := h.catalogUseCase.SearchStaff(ctx, lang, query)
		if err != nil {
			return nil, err
		}
		if len(staff) == 0 {
			return nil, domain.ErrEmptyQueryResults
		}
		embed = pkgdiscord.BuildListEmbed("👥 "+title, pkgdiscord.StaffItems(staff, labels), dir)
	case cmdTrack:
		tracks, err := h.catalogUseCase.ListTracks(ctx, lang, query)
		if err != nil {
			return nil, err
		}
		if len(tracks) == 0 {
			return nil, domain.ErrEmptyQueryResults
		}
		embed = pkgdiscord.BuildListEmbed("🛣️ "+title, pkgdiscord.TrackItems(tracks, labels), dir)
	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}

	return &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}, nil
}

func (h *Handler) lessonEmbed(ctx context.Context, lang localize.Language, query, title string) (*discordgo.MessageEmbed, error) {
	labels, dir := h.labels(lang), locale.DirectionOf(lang)
	if query != "" {
		l, err := h.catalogUseCase.Lesson(ctx, lang, query)
		if err == nil {
			return pkgdiscord.BuildLessonEmbed(l, labels, dir), nil
		}
		if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
	}

	lessons, err := h.catalogUseCase.SearchLessons(ctx, lang, query)
	if err != nil {
		return nil, err
	}
	switch len(lessons) {
	case 0:
		return nil, domain.ErrEmptyQueryResults
	case 1:
		l, err := h.catalogUseCase.Lesson(ctx, lang, lessons[0].ID)
		if err != nil {
			return nil, err
		}
		return pkgdiscord.BuildLessonEmbed(l, labels, dir), nil
	default:
		return pkgdiscord.BuildListEmbed("📚 "+title, pkgdiscord.LessonItems(lessons), dir), nil
	}
}

func (h *Handler) exerciseEmbed(ctx context.Context, lang localize.Language, query, title string) (*discordgo.MessageEmbed, error) {
	labels, dir := h.labels(lang), locale.DirectionOf(lang)
	if query != "" {
		e, err := h.catalogUseCase.Exercise(ctx, lang, query)
		if err == nil {
			return pkgdiscord.BuildExerciseEmbed(e, labels, dir), nil
		}
		if !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err
		}
	}

	exercises, err := h.catalogUseCase.SearchExercises(ctx, lang, query)
	if err != nil {
		return nil, err
	}
	switch len(exercises) {
	case 0:
		return nil, domain.ErrEmptyQueryResults
	case 1:
		return pkgdiscord.BuildExerciseEmbed(&exercises[0], labels, dir), nil
	default:
		return pkgdiscord.BuildListEmbed("✏️ "+title, pkgdiscord.ExerciseItems(exercises), dir), nil
	}
}
