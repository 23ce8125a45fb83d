// Package display formats snippets and statistics for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode selects when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color setting. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	}
	return "", fmt.Errorf("invalid color mode %q (valid: auto, always, never)", s)
}

// NewRenderer returns a lipgloss renderer for w. In auto mode the renderer
// detects the profile itself: no color unless w is a terminal and NO_COLOR
// is unset.
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Bright ANSI palette.
var (
	colorRed    = lipgloss.Color("9")
	colorGreen  = lipgloss.Color("10")
	colorYellow = lipgloss.Color("11")
	colorCyan   = lipgloss.Color("14")
	colorWhite  = lipgloss.Color("15")
)

// styles holds the styles a Printer uses, bound to one renderer.
type styles struct {
	bold   lipgloss.Style
	dim    lipgloss.Style
	red    lipgloss.Style
	green  lipgloss.Style
	yellow lipgloss.Style
	cyan   lipgloss.Style
	title  lipgloss.Style
	logo   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	// Code is printed verbatim, so tabs must survive rendering.
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return styles{
		bold:   base.Bold(true),
		dim:    base.Faint(true),
		red:    base.Foreground(colorRed),
		green:  base.Foreground(colorGreen),
		yellow: base.Foreground(colorYellow),
		cyan:   base.Foreground(colorCyan),
		title:  base.Bold(true).Foreground(colorWhite),
		logo:   base.Bold(true).Foreground(colorCyan),
	}
}
