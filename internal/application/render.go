package application

import (
	"strings"

	"go.uber.org/zap"

	"schooladmin/internal/domain/mathtext"
	"schooladmin/internal/ports/output"
)

// TextRenderer turns free text with embedded math into display text. Math
// runs go through a MathRenderer; a run the renderer rejects is shown as it
// was written, delimiters included.
type TextRenderer struct {
	math   output.MathRenderer
	logger *zap.Logger
}

func NewTextRenderer(math output.MathRenderer, logger *zap.Logger) *TextRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextRenderer{math: math, logger: logger}
}

// Render never fails. Input without math is returned untouched and the math
// renderer is not called.
func (r *TextRenderer) Render(input string) string {
	segments := mathtext.Tokenize(input)
	if !mathtext.HasMath(segments) || r.math == nil {
		return input
	}

	var b strings.Builder
	for _, seg := range segments {
		if !seg.IsMath() {
			b.WriteString(seg.Content)
			continue
		}
		out, err := r.math.RenderMath(seg.Content, seg.Kind == mathtext.BlockMath)
		if err != nil {
			r.logger.Warn("math rendering failed, showing source",
				zap.String("kind", seg.Kind.String()),
				zap.String("content", seg.Content),
				zap.Error(err),
			)
			b.WriteString(seg.Delimited())
			continue
		}
		b.WriteString(out)
	}
	return b.String()
}
