package locale

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"schooladmin/internal/domain/localize"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   localize.Language
		wantOK bool
	}{
		{name: "french", value: "fr", want: localize.French, wantOK: true},
		{name: "regional arabic", value: "ar-DZ", want: localize.Arabic, wantOK: true},
		{name: "american english", value: "en-US", want: localize.English, wantOK: true},
		{name: "canadian french", value: " fr-CA ", want: localize.French, wantOK: true},
		{name: "blank", value: "  ", wantOK: false},
		{name: "malformed", value: "not a tag!!", wantOK: false},
		{name: "unsupported", value: "de", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTag(t *testing.T) {
	assert.Equal(t, language.Arabic, Tag(localize.Arabic))
	assert.Equal(t, language.French, Tag(localize.French))
	assert.Equal(t, language.English, Tag("???"))
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, RTL, DirectionOf(localize.Arabic))
	assert.Equal(t, LTR, DirectionOf(localize.French))
	assert.Equal(t, LTR, DirectionOf(localize.English))
}

func TestContextSubscribe(t *testing.T) {
	ctx := NewContext("")
	require.Equal(t, localize.English, ctx.Language())

	var got []Change
	cancel := ctx.Subscribe(func(c Change) {
		got = append(got, c)
		assert.Equal(t, c.To, ctx.Language())
	})

	assert.True(t, ctx.SetLanguage(localize.Arabic))
	assert.False(t, ctx.SetLanguage(localize.Arabic))
	assert.Equal(t, RTL, ctx.Direction())

	cancel()
	cancel()
	assert.True(t, ctx.SetLanguage(localize.French))

	require.Len(t, got, 1)
	assert.Equal(t, Change{From: localize.English, To: localize.Arabic, Direction: RTL}, got[0])
}

func TestContextConcurrentAccess(t *testing.T) {
	ctx := NewContext(localize.French)

	var mu sync.Mutex
	count := 0
	ctx.Subscribe(func(Change) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				ctx.SetLanguage(localize.Arabic)
			} else {
				ctx.SetLanguage(localize.French)
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = ctx.Direction()
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, count, 50)
}
