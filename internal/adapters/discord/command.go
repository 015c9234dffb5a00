package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	pkgdiscord "schooladmin/pkg/discord"
)

const (
	cmdLesson   = "lesson"
	cmdExercise = "exercise"
	cmdStaff    = "staff"
	cmdTrack    = "track"
	cmdLanguage = "language"

	optQuery = "query"
	optLang  = "lang"
)

var lookupCommands = []string{cmdLesson, cmdExercise, cmdStaff, cmdTrack}

// languageChoices are shown in their own language.
var languageChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "English", Value: string(localize.English)},
	{Name: "Français", Value: string(localize.French)},
	{Name: "العربية", Value: string(localize.Arabic)},
}

// localized returns the French and English renderings of key for Discord's
// client-side localization.
func (h *Handler) localized(key string) *map[discordgo.Locale]string {
	fr := h.translator.T(string(localize.French), key, nil)
	en := h.translator.T(string(localize.English), key, nil)
	return &map[discordgo.Locale]string{
		discordgo.French:    fr,
		discordgo.EnglishUS: en,
		discordgo.EnglishGB: en,
	}
}

func (h *Handler) langOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionString,
		Name:                     optLang,
		Description:              h.translator.T(string(localize.English), "cmd.option.lang", nil),
		DescriptionLocalizations: *h.localized("cmd.option.lang"),
		Required:                 required,
		Choices:                  languageChoices,
	}
}

// Commands returns the slash commands registered by the bot.
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	en := string(localize.English)
	commands := make([]*discordgo.ApplicationCommand, 0, len(lookupCommands)+1)
	for _, name := range lookupCommands {
		key := "cmd." + name + ".description"
		commands = append(commands, &discordgo.ApplicationCommand{
			Name:                     name,
			Description:              h.translator.T(en, key, nil),
			DescriptionLocalizations: h.localized(key),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:                     discordgo.ApplicationCommandOptionString,
					Name:                     optQuery,
					Description:              h.translator.T(en, "cmd.option.query", nil),
					DescriptionLocalizations: *h.localized("cmd.option.query"),
					Autocomplete:             true,
				},
				h.langOption(false),
			},
		})
	}

	perm := int64(discordgo.PermissionManageServer)
	commands = append(commands, &discordgo.ApplicationCommand{
		Name:                     cmdLanguage,
		Description:              h.translator.T(en, "cmd.language.description", nil),
		DescriptionLocalizations: h.localized("cmd.language.description"),
		DefaultMemberPermissions: &perm,
		Options:                  []*discordgo.ApplicationCommandOption{h.langOption(true)},
	})
	return commands
}

type commandOptions struct {
	query   string
	lang    string
	focused string
}

func parseOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) commandOptions {
	var out commandOptions
	for _, o := range opts {
		if o == nil || o.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		switch o.Name {
		case optQuery:
			out.query = o.StringValue()
		case optLang:
			out.lang = o.StringValue()
		}
		if o.Focused {
			out.focused = o.Name
		}
	}
	return out
}

// interactionLanguage picks the explicit lang option, then the user's
// Discord locale, then the bot's default language.
func (h *Handler) interactionLanguage(explicit string, userLocale discordgo.Locale) localize.Language {
	if lang, ok := locale.Parse(explicit); ok {
		return lang
	}
	if lang, ok := locale.Parse(string(userLocale)); ok {
		return lang
	}
	return h.locale.Language()
}

// HandleCommand dispatches an application command.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	opts := parseOptions(data.Options)

	if data.Name == cmdLanguage {
		h.handleLanguage(s, i, opts)
		return
	}

	lang := h.interactionLanguage(opts.lang, i.Locale)
	ctx := context.Background()
	resp, err := h.lookup(ctx, data.Name, lang, opts.query)
	if err != nil {
		h.logger.Info("lookup failed",
			zap.String("command", data.Name),
			zap.String("query", opts.query),
			zap.String("lang", string(lang)),
			zap.Error(err),
		)
		respondEphemeral(s, i.Interaction, "❌ "+pkgdiscord.DomainErrorMessage(h.translator, string(lang), err))
		return
	}
	if err := respond(s, i.Interaction, resp); err != nil {
		h.logger.Error("❌ Erreur lors de la réponse à la commande", zap.String("command", data.Name), zap.Error(err))
	}
}
