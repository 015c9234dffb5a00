package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	"schooladmin/internal/infrastructure/logging"
)

type Config struct {
	Token           string
	GuildID         string
	DefaultLanguage localize.Language
	CatalogPath     string
	LogLevel        string
	LogFormat       string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds and validates a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Token:       strings.TrimSpace(getenv("TOKEN")),
		GuildID:     strings.TrimSpace(getenv("GUILD_ID")),
		CatalogPath: strings.TrimSpace(getenv("CATALOG_PATH")),
		LogLevel:    strings.ToLower(strings.TrimSpace(getenv("LOG_LEVEL"))),
		LogFormat:   strings.ToLower(strings.TrimSpace(getenv("LOG_FORMAT"))),
	}

	if err := cfg.validate(strings.TrimSpace(getenv("DEFAULT_LANGUAGE"))); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles sur la configuration chargée.
func (c *Config) validate(defaultLanguage string) error {
	if c.Token == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}

	if defaultLanguage == "" {
		// Valeur par défaut : l'interface de l'école est en français.
		defaultLanguage = string(localize.French)
	}
	lang, ok := locale.Parse(defaultLanguage)
	if !ok {
		return fmt.Errorf("config: DEFAULT_LANGUAGE invalide (%q), attendu en, fr ou ar", defaultLanguage)
	}
	c.DefaultLanguage = lang

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("config: LOG_LEVEL invalide (%q), attendu debug, info, warn ou error", c.LogLevel)
	}

	switch c.LogFormat {
	case "":
		c.LogFormat = "json"
	case "json", "console":
	default:
		return fmt.Errorf("config: LOG_FORMAT invalide (%q), attendu json ou console", c.LogFormat)
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("config: CATALOG_PATH invalide (%q): %w", c.CatalogPath, err)
		}
	}

	return nil
}
