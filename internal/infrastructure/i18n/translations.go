package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	"schooladmin/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.T = (*Translator)(nil)

// Translator serves the bot's UI messages from the embedded active.*.toml
// bundles, one per supported language.
type Translator struct {
	bundle     *i18n.Bundle
	defaultTag localize.Language
	localizers map[localize.Language]*i18n.Localizer
	logger     *zap.Logger
}

// NewTranslator loads the message bundles. defaultLocale is matched against
// the supported languages ("ar-DZ" selects Arabic) and is English when it
// matches none.
func NewTranslator(defaultLocale string, logger *zap.Logger) *Translator {
	if logger == nil {
		logger = zap.NewNop()
	}
	def, ok := locale.Parse(defaultLocale)
	if !ok {
		def = localize.English
	}

	bundle := i18n.NewBundle(locale.Tag(def))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, lang := range locale.Supported() {
		file := "active." + string(lang) + ".toml"
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Error("i18n: failed to load message file", zap.String("file", file), zap.Error(err))
		}
	}

	// Each localizer tries its own language, then the default one.
	localizers := make(map[localize.Language]*i18n.Localizer, len(locale.Supported()))
	for _, lang := range locale.Supported() {
		localizers[lang] = i18n.NewLocalizer(bundle, string(lang), string(def))
	}

	return &Translator{
		bundle:     bundle,
		defaultTag: def,
		localizers: localizers,
		logger:     logger,
	}
}

// DefaultLanguage returns the language used when a key is missing.
func (t *Translator) DefaultLanguage() string {
	return string(t.defaultTag)
}

// T renders key in the language matching loc, falling back to the default
// language and finally to the key itself. Blank or unsupported locales use
// the default language.
func (t *Translator) T(loc, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	lang, ok := locale.Parse(loc)
	if !ok {
		lang = t.defaultTag
	}

	msg, err := t.localizers[lang].Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Debug("i18n: missing message",
			zap.String("key", key),
			zap.String("locale", loc),
			zap.String("resolved", string(lang)),
			zap.Error(err),
		)
		return key
	}
	return msg
}
