package discord

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin/internal/application"
	"schooladmin/internal/domain"
	"schooladmin/internal/domain/locale"
	"schooladmin/internal/domain/localize"
	"schooladmin/internal/infrastructure/catalog"
	"schooladmin/internal/infrastructure/i18n"
	"schooladmin/internal/infrastructure/mathrender"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	source, err := catalog.Embedded()
	require.NoError(t, err)
	translator := i18n.NewTranslator("fr", nil)
	renderer := application.NewTextRenderer(mathrender.NewUnicodeRenderer(), nil)
	uc := application.NewCatalogService(source, renderer, translator, nil)
	return NewHandler(uc, translator, locale.NewContext(localize.French), nil)
}

func stringOption(name, value string, focused bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionString,
		Value:   value,
		Focused: focused,
	}
}

func TestParseOptions(t *testing.T) {
	opts := parseOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOption(optQuery, "brak", true),
		nil,
		{Name: "count", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
		stringOption(optLang, "ar", false),
	})

	assert.Equal(t, commandOptions{query: "brak", lang: "ar", focused: optQuery}, opts)
	assert.Equal(t, commandOptions{}, parseOptions(nil))
}

func TestInteractionLanguage(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name     string
		explicit string
		locale   discordgo.Locale
		want     localize.Language
	}{
		{name: "explicit option wins", explicit: "ar", locale: discordgo.EnglishUS, want: localize.Arabic},
		{name: "user locale", locale: discordgo.EnglishGB, want: localize.English},
		{name: "unsupported user locale uses default", locale: discordgo.Japanese, want: localize.French},
		{name: "nothing set uses default", want: localize.French},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.interactionLanguage(tt.explicit, tt.locale))
		})
	}

	h.locale.SetLanguage(localize.Arabic)
	assert.Equal(t, localize.Arabic, h.interactionLanguage("", ""))
}

func TestCommands(t *testing.T) {
	h := newTestHandler(t)
	commands := h.Commands()
	require.Len(t, commands, len(lookupCommands)+1)

	byName := make(map[string]*discordgo.ApplicationCommand, len(commands))
	for _, c := range commands {
		byName[c.Name] = c
	}

	lesson := byName[cmdLesson]
	require.NotNil(t, lesson)
	assert.Equal(t, "Find a lesson", lesson.Description)
	require.NotNil(t, lesson.DescriptionLocalizations)
	assert.Equal(t, "Rechercher une leçon", (*lesson.DescriptionLocalizations)[discordgo.French])
	require.Len(t, lesson.Options, 2)
	assert.True(t, lesson.Options[0].Autocomplete)
	assert.False(t, lesson.Options[1].Required)
	assert.Len(t, lesson.Options[1].Choices, len(locale.Supported()))

	lang := byName[cmdLanguage]
	require.NotNil(t, lang)
	require.NotNil(t, lang.DefaultMemberPermissions)
	assert.Equal(t, int64(discordgo.PermissionManageServer), *lang.DefaultMemberPermissions)
	require.Len(t, lang.Options, 1)
	assert.True(t, lang.Options[0].Required)
}

func TestLookup(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	t.Run("lesson by id", func(t *testing.T) {
		resp, err := h.lookup(ctx, cmdLesson, localize.English, "lesson-braking")
		require.NoError(t, err)
		require.Len(t, resp.Embeds, 1)
		assert.Equal(t, "📘 Braking distances", resp.Embeds[0].Title)
		assert.Equal(t, "lesson-braking", resp.Embeds[0].Footer.Text)
		assert.NotContains(t, resp.Embeds[0].Description, "$$")
	})

	t.Run("single match shows detail", func(t *testing.T) {
		resp, err := h.lookup(ctx, cmdLesson, localize.English, "roundabout")
		require.NoError(t, err)
		assert.Equal(t, "📘 Roundabouts", resp.Embeds[0].Title)
	})

	t.Run("empty query lists everything", func(t *testing.T) {
		resp, err := h.lookup(ctx, cmdLesson, localize.English, "  ")
		require.NoError(t, err)
		assert.Len(t, resp.Embeds[0].Fields, 3)
		assert.Equal(t, "📚 All records", resp.Embeds[0].Title)
	})

	t.Run("exercise by id", func(t *testing.T) {
		resp, err := h.lookup(ctx, cmdExercise, localize.French, "ex-reaction")
		require.NoError(t, err)
		assert.Equal(t, "✏️ Distance de réaction", resp.Embeds[0].Title)
		assert.NotContains(t, resp.Embeds[0].Description, "$")
	})

	t.Run("arabic output is marked right-to-left", func(t *testing.T) {
		resp, err := h.lookup(ctx, cmdTrack, localize.Arabic, "")
		require.NoError(t, err)
		for _, f := range resp.Embeds[0].Fields {
			assert.True(t, strings.HasPrefix(f.Name, rlmMark), f.Name)
		}
	})

	t.Run("staff list", func(t *testing.T) {
		resp, err := h.lookup(ctx, cmdStaff, localize.English, "")
		require.NoError(t, err)
		assert.Len(t, resp.Embeds[0].Fields, 3)
	})

	t.Run("no results", func(t *testing.T) {
		_, err := h.lookup(ctx, cmdStaff, localize.English, "zzzzqqqq")
		assert.ErrorIs(t, err, domain.ErrEmptyQueryResults)
		_, err = h.lookup(ctx, cmdLesson, localize.English, "zzzzqqqq")
		assert.ErrorIs(t, err, domain.ErrEmptyQueryResults)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := h.lookup(ctx, "nope", localize.English, "")
		assert.Error(t, err)
	})
}

const rlmMark = "\u200f"

func TestChoices(t *testing.T) {
	h := newTestHandler(t)
	ctx := context.Background()

	choices, err := h.choices(ctx, cmdLesson, localize.English, "")
	require.NoError(t, err)
	require.Len(t, choices, 3)
	values := make([]any, 0, len(choices))
	for _, c := range choices {
		values = append(values, c.Value)
	}
	assert.ElementsMatch(t, []any{"lesson-braking", "lesson-parking", "lesson-roundabout"}, values)

	choices, err = h.choices(ctx, cmdStaff, localize.English, "yacine")
	require.NoError(t, err)
	require.Len(t, choices, 1)
	assert.Equal(t, "Yacine Mansouri", choices[0].Name)
	assert.Equal(t, "Yacine Mansouri", choices[0].Value)

	choices, err = h.choices(ctx, "unknown", localize.English, "")
	require.NoError(t, err)
	assert.Empty(t, choices)
}

func TestCanManage(t *testing.T) {
	assert.False(t, canManage(nil))
	assert.False(t, canManage(&discordgo.Member{Permissions: discordgo.PermissionSendMessages}))
	assert.True(t, canManage(&discordgo.Member{Permissions: discordgo.PermissionManageServer}))
	assert.True(t, canManage(&discordgo.Member{Permissions: discordgo.PermissionAdministrator}))
}

func TestSetDefaultLanguage(t *testing.T) {
	h := newTestHandler(t)
	admin := &discordgo.Member{Permissions: discordgo.PermissionAdministrator}

	var changes []locale.Change
	cancel := h.locale.Subscribe(func(c locale.Change) { changes = append(changes, c) })
	defer cancel()

	_, err := h.setDefaultLanguage(&discordgo.Member{}, "ar")
	assert.ErrorIs(t, err, domain.ErrNotAdministrator)

	_, err = h.setDefaultLanguage(admin, "klingon")
	assert.ErrorIs(t, err, domain.ErrUnknownLanguage)
	assert.Equal(t, localize.French, h.locale.Language())

	lang, err := h.setDefaultLanguage(admin, "ar")
	require.NoError(t, err)
	assert.Equal(t, localize.Arabic, lang)
	assert.Equal(t, localize.Arabic, h.locale.Language())
	require.Len(t, changes, 1)
	assert.Equal(t, locale.RTL, changes[0].Direction)
}
