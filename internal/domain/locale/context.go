// Package locale holds the active display language and its text direction.
package locale

import (
	"strings"
	"sync"

	"golang.org/x/text/language"

	"schooladmin/internal/domain/localize"
)

// Direction is the writing direction of a language.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

var supported = []language.Tag{
	language.English,
	language.French,
	language.Arabic,
}

var matcher = language.NewMatcher(supported)

// Supported returns the languages records can be localized in.
func Supported() []localize.Language {
	return []localize.Language{localize.English, localize.French, localize.Arabic}
}

// Parse maps a BCP 47 value ("ar-DZ", "fr", "en-US") to a supported language.
// The bool is false when value is blank, malformed or unrelated to any
// supported language.
func Parse(value string) (localize.Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return fromTag(supported[idx]), true
}

func fromTag(tag language.Tag) localize.Language {
	base, _ := tag.Base()
	return localize.Language(base.String())
}

// Tag returns the x/text tag of lang, English for unknown codes.
func Tag(lang localize.Language) language.Tag {
	tag, err := language.Parse(string(lang))
	if err != nil {
		return language.English
	}
	return tag
}

// DirectionOf returns RTL for Arabic and LTR otherwise.
func DirectionOf(lang localize.Language) Direction {
	if lang == localize.Arabic {
		return RTL
	}
	return LTR
}

// Change describes a language switch delivered to subscribers.
type Change struct {
	From      localize.Language
	To        localize.Language
	Direction Direction
}

// Context is the active language of a surface. It replaces a process-wide
// singleton: callers own it and pass it explicitly to rendering code.
type Context struct {
	mu     sync.RWMutex
	lang   localize.Language
	subs   map[int]func(Change)
	nextID int
}

// NewContext returns a Context set to lang (English when blank).
func NewContext(lang localize.Language) *Context {
	if lang == "" {
		lang = localize.English
	}
	return &Context{
		lang: lang,
		subs: make(map[int]func(Change)),
	}
}

func (c *Context) Language() localize.Language {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

func (c *Context) Direction() Direction {
	return DirectionOf(c.Language())
}

// SetLanguage switches the active language and notifies subscribers.
// Setting the current language again is a no-op. It reports whether the
// language changed.
func (c *Context) SetLanguage(lang localize.Language) bool {
	if lang == "" {
		lang = localize.English
	}

	c.mu.Lock()
	if c.lang == lang {
		c.mu.Unlock()
		return false
	}
	change := Change{From: c.lang, To: lang, Direction: DirectionOf(lang)}
	c.lang = lang
	subs := make([]func(Change), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	// Callbacks run outside the lock so they may read the context.
	for _, fn := range subs {
		fn(change)
	}
	return true
}

// Subscribe registers fn for language changes. The returned func cancels
// the subscription.
func (c *Context) Subscribe(fn func(Change)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}
