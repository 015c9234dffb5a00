package discord

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"schooladmin/internal/application"
	"schooladmin/internal/config"
	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	"schooladmin/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session    *discordgo.Session
	config     *config.Config
	handler    *Handler
	locale     *locale.Context
	translator output.T
	logger     *zap.Logger
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	source output.CatalogSource,
	translator output.T,
	math output.MathRenderer,
	logger *zap.Logger,
) (*Bot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer := application.NewTextRenderer(math, logger.Named("render"))
	catalogUC := application.NewCatalogService(source, renderer, translator, logger.Named("catalog"))
	localeCtx := locale.NewContext(cfg.DefaultLanguage)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}

	bot := &Bot{
		session:    s,
		config:     cfg,
		handler:    NewHandler(catalogUC, translator, localeCtx, logger.Named("discord")),
		locale:     localeCtx,
		translator: translator,
		logger:     logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handler.HandleCommand(s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handler.HandleAutocomplete(s, i)
	}
}

// updateStatus shows the command hint in lang as the bot activity.
func (b *Bot) updateStatus(lang localize.Language) {
	status := b.translator.T(string(lang), "bot.status", nil)
	if err := b.session.UpdateGameStatus(0, status); err != nil {
		b.logger.Warn("⚠️ Erreur lors de la mise à jour du statut", zap.Error(err))
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	commands := b.handler.Commands()
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands); err != nil {
		b.logger.Error("⚠️ Erreur lors de l'enregistrement des commandes", zap.Error(err))
	}

	cancel := b.locale.Subscribe(func(c locale.Change) {
		b.logger.Info("language switched",
			zap.String("from", string(c.From)),
			zap.String("to", string(c.To)),
			zap.String("direction", string(c.Direction)),
		)
		b.updateStatus(c.To)
	})
	defer cancel()
	b.updateStatus(b.locale.Language())

	b.logger.Info("🤖 "+b.translator.T(string(b.locale.Language()), "bot.ready", nil),
		zap.Int("commands", len(commands)),
		zap.String("guild", b.config.GuildID),
	)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
