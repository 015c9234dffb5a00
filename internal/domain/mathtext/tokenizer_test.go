package mathtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "empty input yields nothing",
			input: "",
			want:  nil,
		},
		{
			name:  "plain text",
			input: "plain text",
			want:  []Segment{{Kind: Text, Content: "plain text"}},
		},
		{
			name:  "block math between text",
			input: "a $$x^2$$ b",
			want: []Segment{
				{Kind: Text, Content: "a "},
				{Kind: BlockMath, Content: "x^2"},
				{Kind: Text, Content: " b"},
			},
		},
		{
			name:  "inline math between text",
			input: "cost is $5$ today",
			want: []Segment{
				{Kind: Text, Content: "cost is "},
				{Kind: InlineMath, Content: "5"},
				{Kind: Text, Content: " today"},
			},
		},
		{
			name:  "block preferred over inline",
			input: "$$a$$$b$",
			want: []Segment{
				{Kind: BlockMath, Content: "a"},
				{Kind: InlineMath, Content: "b"},
			},
		},
		{
			name:  "math only",
			input: "$\\alpha$",
			want:  []Segment{{Kind: InlineMath, Content: "\\alpha"}},
		},
		{
			name:  "unmatched dollar stays text",
			input: "price: 5$",
			want:  []Segment{{Kind: Text, Content: "price: 5$"}},
		},
		{
			name:  "empty delimiters stay text",
			input: "$$$$",
			want:  []Segment{{Kind: Text, Content: "$$$$"}},
		},
		{
			name:  "adjacent inline runs",
			input: "$a$$b$",
			want: []Segment{
				{Kind: InlineMath, Content: "a"},
				{Kind: InlineMath, Content: "b"},
			},
		},
		{
			name:  "multiline block",
			input: "see:\n$$\nv = d / t\n$$\ndone",
			want: []Segment{
				{Kind: Text, Content: "see:\n"},
				{Kind: BlockMath, Content: "\nv = d / t\n"},
				{Kind: Text, Content: "\ndone"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, Join(got))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "text", Text.String())
	assert.Equal(t, "inline-math", InlineMath.String())
	assert.Equal(t, "block-math", BlockMath.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestHasMath(t *testing.T) {
	assert.False(t, HasMath(Tokenize("no math here")))
	assert.False(t, HasMath(nil))
	assert.True(t, HasMath(Tokenize("speed $v$")))
}

func TestTokenizeRoundTrip(t *testing.T) {
	alphabet := rapid.SampledFrom([]rune{'a', 'x', ' ', '$', '^', '2', '\n', 'é'})
	rapid.Check(t, func(rt *rapid.T) {
		input := string(rapid.SliceOf(alphabet).Draw(rt, "input"))

		segments := Tokenize(input)
		require.Equal(rt, input, Join(segments))

		for i, s := range segments {
			assert.NotEmpty(rt, s.Content, "segment %d is empty", i)
			if s.IsMath() {
				assert.NotContains(rt, s.Content, "$")
			}
			if i > 0 && s.Kind == Text {
				assert.NotEqual(rt, Text, segments[i-1].Kind, "consecutive text segments at %d", i)
			}
		}
	})
}
