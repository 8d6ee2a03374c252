package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Footer joins navigation tips with a consistent separator and applies style.
func Footer(style lipgloss.Style, parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return style.Render(strings.Join(parts, "  •  "))
}
