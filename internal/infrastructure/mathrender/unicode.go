// Package mathrender typesets TeX math for surfaces that only display plain
// text, such as Discord messages.
package mathrender

import (
	"fmt"
	"strings"
	"unicode"

	"schooladmin/internal/domain"
	"schooladmin/internal/ports/output"
)

var _ output.MathRenderer = (*UnicodeRenderer)(nil)

// UnicodeRenderer converts a TeX subset (Greek letters, common operators,
// scripts, \frac, \sqrt, \text) to Unicode text.
type UnicodeRenderer struct{}

func NewUnicodeRenderer() *UnicodeRenderer {
	return &UnicodeRenderer{}
}

// RenderMath returns content as Unicode. Display math is placed on its own
// line. Malformed or unsupported markup yields domain.ErrUnrenderableMath.
func (r *UnicodeRenderer) RenderMath(content string, displayMode bool) (string, error) {
	p := &parser{src: []rune(content)}
	out, err := p.sequence(false)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty expression", domain.ErrUnrenderableMath)
	}
	if displayMode {
		return "\n" + out + "\n", nil
	}
	return out, nil
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", domain.ErrUnrenderableMath, fmt.Sprintf(format, args...), p.pos)
}

// sequence reads atoms until the end of input, or until the closing brace
// when inGroup is set.
func (p *parser) sequence(inGroup bool) (string, error) {
	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		switch c {
		case '}':
			if !inGroup {
				return "", p.fail("unbalanced '}'")
			}
			p.pos++
			return b.String(), nil
		case '^', '_':
			p.pos++
			arg, err := p.argument()
			if err != nil {
				return "", err
			}
			b.WriteString(script(arg, c == '^'))
		default:
			atom, err := p.atom()
			if err != nil {
				return "", err
			}
			b.WriteString(atom)
		}
	}
	if inGroup {
		return "", p.fail("missing '}'")
	}
	return b.String(), nil
}

// atom reads one command, group or character.
func (p *parser) atom() (string, error) {
	c := p.src[p.pos]
	switch c {
	case '{':
		p.pos++
		return p.sequence(true)
	case '\\':
		return p.command()
	default:
		p.pos++
		return string(c), nil
	}
}

// argument reads the operand of a script or command: a group, a command or
// a single character. Leading spaces are skipped.
func (p *parser) argument() (string, error) {
	for !p.eof() && p.src[p.pos] == ' ' {
		p.pos++
	}
	if p.eof() {
		return "", p.fail("missing argument")
	}
	if p.src[p.pos] == '}' {
		return "", p.fail("missing argument")
	}
	return p.atom()
}

func (p *parser) command() (string, error) {
	p.pos++ // backslash
	if p.eof() {
		return "", p.fail("dangling '\\'")
	}
	c := p.src[p.pos]
	if !unicode.IsLetter(c) {
		p.pos++
		if s, ok := escapes[c]; ok {
			return s, nil
		}
		return "", p.fail("unknown escape '\\%c'", c)
	}

	start := p.pos
	for !p.eof() && unicode.IsLetter(p.src[p.pos]) {
		p.pos++
	}
	name := string(p.src[start:p.pos])

	if s, ok := symbols[name]; ok {
		return s, nil
	}
	switch name {
	case "frac":
		num, err := p.argument()
		if err != nil {
			return "", err
		}
		den, err := p.argument()
		if err != nil {
			return "", err
		}
		return wrap(num) + "/" + wrap(den), nil
	case "sqrt":
		arg, err := p.argument()
		if err != nil {
			return "", err
		}
		return "√" + wrap(arg), nil
	case "text", "mathrm", "mathbf", "mathit", "operatorname":
		return p.argument()
	case "left", "right":
		// Delimiter sizing has no plain-text equivalent.
		if p.eof() {
			return "", p.fail("missing delimiter after \\%s", name)
		}
		if p.src[p.pos] == '.' {
			p.pos++
			return "", nil
		}
		return p.atom()
	}
	return "", p.fail("unknown command '\\%s'", name)
}

// wrap parenthesizes multi-character operands.
func wrap(s string) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= 1 {
		return s
	}
	return "(" + s + ")"
}

// script maps s to superscript or subscript runes, falling back to the
// ^(...) / _(...) notation when a rune has no such form.
func script(s string, sup bool) string {
	table, marker := subscripts, "_"
	if sup {
		table, marker = superscripts, "^"
	}
	var b strings.Builder
	for _, r := range s {
		m, ok := table[r]
		if !ok {
			return marker + wrap(s)
		}
		b.WriteRune(m)
	}
	return b.String()
}

var escapes = map[rune]string{
	',':  " ",
	';':  " ",
	' ':  " ",
	'!':  "",
	'{':  "{",
	'}':  "}",
	'%':  "%",
	'$':  "$",
	'#':  "#",
	'&':  "&",
	'_':  "_",
	'\\': "\n",
}

var symbols = map[string]string{
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ", "epsilon": "ε",
	"varepsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ", "iota": "ι",
	"kappa": "κ", "lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ", "pi": "π",
	"rho": "ρ", "sigma": "σ", "tau": "τ", "upsilon": "υ", "phi": "φ",
	"varphi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ", "Xi": "Ξ",
	"Pi": "Π", "Sigma": "Σ", "Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",

	"times": "×", "cdot": "·", "div": "÷", "pm": "±", "mp": "∓",
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥", "neq": "≠", "ne": "≠",
	"approx": "≈", "equiv": "≡", "sim": "∼", "propto": "∝",
	"infty": "∞", "partial": "∂", "nabla": "∇", "sum": "∑", "prod": "∏",
	"int": "∫", "degree": "°", "circ": "∘", "prime": "′",
	"to": "→", "rightarrow": "→", "leftarrow": "←", "Rightarrow": "⇒",
	"Leftarrow": "⇐", "leftrightarrow": "↔", "Leftrightarrow": "⇔",
	"in": "∈", "notin": "∉", "subset": "⊂", "cup": "∪", "cap": "∩",
	"forall": "∀", "exists": "∃", "angle": "∠", "perp": "⊥",
	"ldots": "…", "cdots": "⋯", "quad": "  ", "qquad": "    ",
	"sin": "sin", "cos": "cos", "tan": "tan", "log": "log", "ln": "ln",
	"exp": "exp", "min": "min", "max": "max", "lim": "lim",
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '−': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ', 'x': 'ˣ', 'y': 'ʸ', 'a': 'ᵃ', 'b': 'ᵇ',
	'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ', 'k': 'ᵏ', 'm': 'ᵐ', 't': 'ᵗ',
	'∘': '°', '°': '°',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '−': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'o': 'ₒ', 'x': 'ₓ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'm': 'ₘ', 'n': 'ₙ', 'r': 'ᵣ', 't': 'ₜ', 'v': 'ᵥ',
}
