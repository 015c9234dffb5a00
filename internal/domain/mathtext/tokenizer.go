// Package mathtext splits free text into plain-text and math runs delimited
// by $$...$$ (block) and $...$ (inline).
package mathtext

import (
	"regexp"
	"strings"
)

// Kind classifies a Segment.
type Kind int

const (
	Text Kind = iota
	InlineMath
	BlockMath
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case InlineMath:
		return "inline-math"
	case BlockMath:
		return "block-math"
	default:
		return "unknown"
	}
}

const (
	inlineDelim = "$"
	blockDelim  = "$$"
)

// Block is listed first: RE2 alternation is leftmost-first, so $$x$$ is never
// read as two inline runs.
var mathPattern = regexp.MustCompile(`\$\$[^$]+\$\$|\$[^$]+\$`)

// Segment is one classified run of the input. Content excludes delimiters.
type Segment struct {
	Kind    Kind
	Content string
}

// Delimited returns the segment as it appeared in the input.
func (s Segment) Delimited() string {
	switch s.Kind {
	case InlineMath:
		return inlineDelim + s.Content + inlineDelim
	case BlockMath:
		return blockDelim + s.Content + blockDelim
	default:
		return s.Content
	}
}

// IsMath reports whether the segment must go through a math renderer.
func (s Segment) IsMath() bool {
	return s.Kind == InlineMath || s.Kind == BlockMath
}

// Tokenize splits input into ordered segments. An empty input yields no
// segments; an input without math yields a single Text segment.
func Tokenize(input string) []Segment {
	if input == "" {
		return nil
	}

	matches := mathPattern.FindAllStringIndex(input, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: Text, Content: input}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			segments = append(segments, Segment{Kind: Text, Content: input[last:start]})
		}
		segments = append(segments, classify(input[start:end]))
		last = end
	}
	if last < len(input) {
		segments = append(segments, Segment{Kind: Text, Content: input[last:]})
	}
	return segments
}

func classify(match string) Segment {
	if len(match) >= 4 && strings.HasPrefix(match, blockDelim) && strings.HasSuffix(match, blockDelim) {
		return Segment{Kind: BlockMath, Content: match[2 : len(match)-2]}
	}
	return Segment{Kind: InlineMath, Content: match[1 : len(match)-1]}
}

// Join reassembles segments into the text they were tokenized from.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Delimited())
	}
	return b.String()
}

// HasMath reports whether any segment holds math.
func HasMath(segments []Segment) bool {
	for _, s := range segments {
		if s.IsMath() {
			return true
		}
	}
	return false
}
