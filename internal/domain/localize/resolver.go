package localize

import "strings"

// Language identifies the language a display string is requested in.
// Only Arabic and French have dedicated field suffixes; any other code reads
// the base field.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	French  Language = "fr"
)

// Record is a multilingual record as produced by the data layer: for a base
// field F it may hold F, F_arabic and F_french, any of them missing or blank.
type Record map[string]string

const (
	fieldName  = "name"
	fieldTitle = "title"
)

// suffixRule binds a language to the key suffix holding its translation.
type suffixRule struct {
	lang   Language
	suffix string
}

// fallbackRules is the fixed walk order used when the preferred key is blank.
var fallbackRules = []suffixRule{
	{lang: English, suffix: ""},
	{lang: Arabic, suffix: "_arabic"},
	{lang: French, suffix: "_french"},
}

func normalize(lang Language) Language {
	if lang == "" {
		return English
	}
	return lang
}

// Suffix returns the key suffix used for lang ("" for the base field).
func Suffix(lang Language) string {
	switch normalize(lang) {
	case Arabic:
		return "_arabic"
	case French:
		return "_french"
	default:
		return ""
	}
}

// KeyFor returns the preferred record key for baseField in lang,
// e.g. KeyFor("title", French) == "title_french".
func KeyFor(baseField string, lang Language) string {
	return baseField + Suffix(lang)
}

// FallbackOrder lists the languages tried, in order, once the preferred key
// for lang turned out blank. The requested language itself is skipped.
func FallbackOrder(lang Language) []Language {
	lang = normalize(lang)
	out := make([]Language, 0, len(fallbackRules))
	for _, rule := range fallbackRules {
		if rule.lang == lang {
			continue
		}
		out = append(out, rule.lang)
	}
	return out
}

// Field resolves the display string of baseField for lang. It never fails:
// when neither the preferred key nor any fallback holds a non-blank value,
// fallback is returned.
func Field(record Record, baseField string, lang Language, fallback string) string {
	if record == nil {
		return fallback
	}
	if v, ok := nonBlank(record, KeyFor(baseField, lang)); ok {
		return v
	}
	for _, l := range FallbackOrder(lang) {
		if v, ok := nonBlank(record, baseField+Suffix(l)); ok {
			return v
		}
	}
	return fallback
}

// Name is Field for the "name" base field.
func Name(record Record, lang Language, fallback string) string {
	return Field(record, fieldName, lang, fallback)
}

// Title is Field for the "title" base field.
func Title(record Record, lang Language, fallback string) string {
	return Field(record, fieldTitle, lang, fallback)
}

// Variants returns every non-blank value stored for baseField, base first.
func Variants(record Record, baseField string) []string {
	out := make([]string, 0, len(fallbackRules))
	for _, rule := range fallbackRules {
		if v, ok := nonBlank(record, baseField+rule.suffix); ok {
			out = append(out, v)
		}
	}
	return out
}

func nonBlank(record Record, key string) (string, bool) {
	v, ok := record[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}
