package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"schooladmin/internal/adapters/discord"
	"schooladmin/internal/config"
	"schooladmin/internal/infrastructure/catalog"
	"schooladmin/internal/infrastructure/i18n"
	"schooladmin/internal/infrastructure/logging"
	"schooladmin/internal/infrastructure/mathrender"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	var source *catalog.Catalog
	if cfg.CatalogPath != "" {
		source, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		source, err = catalog.Embedded()
	}
	if err != nil {
		logger.Fatal("❌ Erreur lors du chargement du catalogue", zap.Error(err))
	}
	tracks, lessons, exercises, staff := source.Counts()
	logger.Info("✅ Catalogue chargé",
		zap.String("path", cfg.CatalogPath),
		zap.Int("tracks", tracks),
		zap.Int("lessons", lessons),
		zap.Int("exercises", exercises),
		zap.Int("staff", staff),
	)

	translator := i18n.NewTranslator(string(cfg.DefaultLanguage), logger.Named("i18n"))

	bot, err := discord.NewBot(cfg, source, translator, mathrender.NewUnicodeRenderer(), logger)
	if err != nil {
		logger.Fatal("❌ Erreur lors de l'initialisation du bot", zap.Error(err))
	}
	if err := bot.Start(); err != nil {
		logger.Error("❌ Erreur lors du démarrage du bot", zap.Error(err))
		os.Exit(1)
	}
}
