// Package ui renders command results and errors as colored terminal text.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color modes accepted by NewRenderer.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles holds the palette used for all output.
type Styles struct {
	Plain     lipgloss.Style
	Success   lipgloss.Style // green
	Warning   lipgloss.Style // yellow
	Error     lipgloss.Style // red
	Detail    lipgloss.Style // magenta
	Highlight lipgloss.Style // cyan
	Farewell  lipgloss.Style // bold green
	Welcome   lipgloss.Style // bold cyan
	Prompt    lipgloss.Style // yellow
}

// NewStyles builds the palette on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Plain:     r.NewStyle(),
		Success:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Warning:   r.NewStyle().Foreground(lipgloss.Color("3")),
		Error:     r.NewStyle().Foreground(lipgloss.Color("1")),
		Detail:    r.NewStyle().Foreground(lipgloss.Color("5")),
		Highlight: r.NewStyle().Foreground(lipgloss.Color("6")),
		Farewell:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Welcome:   r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Prompt:    r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// NewRenderer returns a renderer for w honoring mode. In auto mode the
// color profile is detected from w.
func NewRenderer(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "", ColorAuto:
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("ui: unknown color mode %q", mode)
	}
	return r, nil
}
