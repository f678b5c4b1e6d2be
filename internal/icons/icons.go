// Package icons resolves symbolic asset names to terminal glyphs.
package icons

import (
	"fmt"
	"strings"
)

// Symbolic names understood by every provider.
const (
	ResetName = "arrow.counterclockwise"
	DotName   = "circle.fill"
	diePrefix = "die.face."
)

// DieFace returns the symbolic name for face n.
func DieFace(n int) string {
	return fmt.Sprintf("%s%d", diePrefix, n)
}

// Provider turns a symbolic name into something printable.
type Provider interface {
	Glyph(name string) string
}

// Set names a glyph set in config.
type Set string

const (
	SetUnicode Set = "unicode"
	SetASCII   Set = "ascii"
)

// New returns the provider for set.
func New(set Set) (Provider, error) {
	switch set {
	case SetUnicode, "":
		return Unicode{}, nil
	case SetASCII:
		return ASCII{}, nil
	default:
		return nil, fmt.Errorf("unknown glyph set %q (want unicode or ascii)", set)
	}
}

// Unicode uses the die face block and a counterclockwise arrow.
type Unicode struct{}

var dieFaces = []rune{'⚀', '⚁', '⚂', '⚃', '⚄', '⚅'}

func (Unicode) Glyph(name string) string {
	switch name {
	case ResetName:
		return "↺"
	case DotName:
		return "●"
	}
	if n, ok := parseDieFace(name); ok {
		return string(dieFaces[n-1])
	}
	return "?"
}

// ASCII falls back to plain characters for terminals without the glyphs.
type ASCII struct{}

func (ASCII) Glyph(name string) string {
	switch name {
	case ResetName:
		return "<-"
	case DotName:
		return "o"
	}
	if n, ok := parseDieFace(name); ok {
		return fmt.Sprintf("[%d]", n)
	}
	return "?"
}

func parseDieFace(name string) (int, bool) {
	if !strings.HasPrefix(name, diePrefix) {
		return 0, false
	}
	var n int
	if _, err := fmt.Sscanf(strings.TrimPrefix(name, diePrefix), "%d", &n); err != nil {
		return 0, false
	}
	if n < 1 || n > len(dieFaces) {
		return 0, false
	}
	return n, true
}
