// Package theme maps semantic output roles to terminal styles.
package theme

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is a read-only set of styles keyed by role. Commands style output
// through a Theme only, so swapping it (for instance Plain in tests) changes
// every report at once.
type Theme struct {
	Name string

	Title     lipgloss.Style
	Muted     lipgloss.Style
	Border    lipgloss.Style
	Neutral   lipgloss.Style
	Accent    lipgloss.Style
	Secondary lipgloss.Style
	Gold      lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style

	// Header and Cell pad table cells; they carry no color of their own.
	Header lipgloss.Style
	Cell   lipgloss.Style
}

// Light palette, matching the website.
var (
	colorPrimary   = lipgloss.Color("4")
	colorSecondary = lipgloss.Color("8")
	colorGold      = lipgloss.Color("3")
	colorWarm      = lipgloss.Color("130")
	colorSuccess   = lipgloss.Color("2")
	colorError     = lipgloss.Color("1")
)

// Light returns the light palette rendered through r.
func Light(r *lipgloss.Renderer) Theme {
	return Theme{
		Name:      "light",
		Title:     r.NewStyle().Bold(true),
		Muted:     r.NewStyle().Faint(true),
		Border:    r.NewStyle().Foreground(colorSecondary),
		Neutral:   r.NewStyle().Foreground(colorSecondary),
		Accent:    r.NewStyle().Foreground(colorPrimary),
		Secondary: r.NewStyle().Foreground(colorWarm),
		Gold:      r.NewStyle().Foreground(colorGold),
		Success:   r.NewStyle().Foreground(colorSuccess),
		Warning:   r.NewStyle().Foreground(colorWarm),
		Error:     r.NewStyle().Foreground(colorError),
		Header:    r.NewStyle().Bold(true).Padding(0, 1),
		Cell:      r.NewStyle().Padding(0, 1),
	}
}

// Plain returns a theme that emits no escape sequences.
func Plain() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	t := Light(r)
	t.Name = "plain"
	return t
}

// ForWriter picks the light palette for w. Color is dropped when w is not a
// terminal or NO_COLOR is set.
func ForWriter(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		r.SetColorProfile(termenv.Ascii)
	}
	return Light(r)
}

// Divider is the horizontal rule printed under report headings.
func (t Theme) Divider() string {
	return t.Border.Render(divider)
}

const divider = "────────────────────────────────────────────────────────────"
