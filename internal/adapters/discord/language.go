package discord

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"schooladmin/internal/domain"
	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	pkgdiscord "schooladmin/pkg/discord"
)

// canManage reports whether member may change the bot settings.
func canManage(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	return member.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageServer) != 0
}

// setDefaultLanguage validates and applies a new default language.
func (h *Handler) setDefaultLanguage(member *discordgo.Member, value string) (localize.Language, error) {
	if !canManage(member) {
		return "", domain.ErrNotAdministrator
	}
	lang, ok := locale.Parse(value)
	if !ok {
		return "", domain.ErrUnknownLanguage
	}
	if h.locale.SetLanguage(lang) {
		h.logger.Info("default language changed", zap.String("lang", string(lang)))
	}
	return lang, nil
}

func (h *Handler) handleLanguage(s *discordgo.Session, i *discordgo.InteractionCreate, opts commandOptions) {
	replyLang := h.interactionLanguage("", i.Locale)
	lang, err := h.setDefaultLanguage(i.Member, opts.lang)
	if err != nil {
		respondEphemeral(s, i.Interaction, "❌ "+pkgdiscord.DomainErrorMessage(h.translator, string(replyLang), err))
		return
	}
	name := h.translator.T(string(lang), "language."+string(lang), nil)
	msg := h.translator.T(string(lang), "language.changed", map[string]any{"Language": name})
	respondEphemeral(s, i.Interaction, "✅ "+msg)
}
