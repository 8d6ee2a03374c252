package theme

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPlain_EmitsNoEscapes(t *testing.T) {
	th := Plain()
	for _, s := range []lipgloss.Style{th.Title, th.Success, th.Warning, th.Error, th.Gold, th.Secondary} {
		assert.Equal(t, "ALPHA", s.Render("ALPHA"))
	}
	assert.False(t, strings.Contains(th.Divider(), "\x1b["))
}

func TestLight_ColorsWhenProfileAllows(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	th := Light(r)

	assert.Contains(t, th.Success.Render("ok"), "\x1b[")
	assert.Equal(t, "light", th.Name)
}

func TestForWriter_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	th := ForWriter(&bytes.Buffer{})
	assert.Equal(t, "VERIFIED", th.Success.Render("VERIFIED"))
}
