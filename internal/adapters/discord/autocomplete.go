package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"schooladmin/internal/domain/localize"
	pkgdiscord "schooladmin/pkg/discord"
)

// Discord accepts at most 25 choices of at most 100 characters.
const (
	maxChoices    = 25
	maxChoiceName = 100
)

// HandleAutocomplete suggests records for the focused query option. The
// choice value is the record id so the command resolves it exactly.
func (h *Handler) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	opts := parseOptions(data.Options)
	if opts.focused != optQuery {
		return
	}
	lang := h.interactionLanguage(opts.lang, i.Locale)

	choices, err := h.choices(context.Background(), data.Name, lang, opts.query)
	if err != nil {
		h.logger.Warn("autocomplete failed", zap.String("command", data.Name), zap.Error(err))
		choices = nil
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		h.logger.Error("❌ Erreur lors de l'envoi des suggestions", zap.Error(err))
	}
}

func (h *Handler) choices(ctx context.Context, command string, lang localize.Language, query string) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	var items []choiceItem
	switch command {
	case cmdLesson:
		lessons, err := h.catalogUseCase.SearchLessons(ctx, lang, query)
		if err != nil {
			return nil, err
		}
		for _, l := range lessons {
			items = append(items, choiceItem{name: l.Title, value: l.ID})
		}
	case cmdExercise:
		exercises, err := h.catalogUseCase.SearchExercises(ctx, lang, query)
		if err != nil {
			return nil, err
		}
		for _, e := range exercises {
			items = append(items, choiceItem{name: e.Title, value: e.ID})
		}
	case cmdStaff:
		staff, err := h.catalogUseCase.SearchStaff(ctx, lang, query)
		if err != nil {
			return nil, err
		}
		for _, m := range staff {
			items = append(items, choiceItem{name: m.Name, value: m.Name})
		}
	case cmdTrack:
		tracks, err := h.catalogUseCase.ListTracks(ctx, lang, query)
		if err != nil {
			return nil, err
		}
		for _, t := range tracks {
			items = append(items, choiceItem{name: t.Name, value: t.ID})
		}
	}

	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(items), maxChoices))
	for _, it := range items {
		if len(out) == maxChoices {
			break
		}
		out = append(out, &discordgo.ApplicationCommandOptionChoice{
			Name:  pkgdiscord.Truncate(it.name, maxChoiceName),
			Value: it.value,
		})
	}
	return out, nil
}

type choiceItem struct {
	name  string
	value string
}
