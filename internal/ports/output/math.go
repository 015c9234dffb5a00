package output

// MathRenderer typesets a math expression. displayMode is true for block
// ($$...$$) math. Implementations return an error wrapping
// domain.ErrUnrenderableMath for malformed markup.
type MathRenderer interface {
	RenderMath(content string, displayMode bool) (string, error)
}
