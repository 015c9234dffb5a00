package application

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"schooladmin/internal/domain"
)

// stubMath renders content upper-cased, tagged with the display mode, and
// rejects any content containing "bad".
type stubMath struct {
	calls int
}

func (s *stubMath) RenderMath(content string, displayMode bool) (string, error) {
	s.calls++
	if strings.Contains(content, "bad") {
		return "", fmt.Errorf("%w: %s", domain.ErrUnrenderableMath, content)
	}
	if displayMode {
		return "[" + strings.ToUpper(content) + "]", nil
	}
	return "<" + strings.ToUpper(content) + ">", nil
}

func TestTextRendererRender(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantCalls int
	}{
		{name: "empty", input: "", want: "", wantCalls: 0},
		{name: "plain text skips renderer", input: "no math", want: "no math", wantCalls: 0},
		{name: "inline", input: "speed $v$ now", want: "speed <V> now", wantCalls: 1},
		{name: "block", input: "a $$x^2$$ b", want: "a [X^2] b", wantCalls: 1},
		{name: "mixed", input: "$$a$$$b$", want: "[A]<B>", wantCalls: 2},
		{name: "failure keeps source", input: "ok $x$ and $bad$", want: "ok <X> and $bad$", wantCalls: 2},
		{name: "block failure keeps delimiters", input: "$$bad$$", want: "$$bad$$", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			math := &stubMath{}
			r := NewTextRenderer(math, nil)
			assert.Equal(t, tt.want, r.Render(tt.input))
			assert.Equal(t, tt.wantCalls, math.calls)
		})
	}
}

func TestTextRendererLogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := NewTextRenderer(&stubMath{}, zap.New(core))

	assert.Equal(t, "$bad$", r.Render("$bad$"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "math rendering failed, showing source", entry.Message)
	assert.Equal(t, "inline-math", entry.ContextMap()["kind"])
}

func TestTextRendererWithoutMathBackend(t *testing.T) {
	r := NewTextRenderer(nil, nil)
	assert.Equal(t, "a $x$ b", r.Render("a $x$ b"))
}
