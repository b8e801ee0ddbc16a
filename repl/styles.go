package repl

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorError  = lipgloss.Color("#EF4444") // Red
	colorResult = lipgloss.Color("#10B981") // Emerald
	colorBanner = lipgloss.Color("#F59E0B") // Amber
	colorMuted  = lipgloss.Color("#6B7280") // Gray
)

type styles struct {
	enabled bool

	err    lipgloss.Style
	result lipgloss.Style
	banner lipgloss.Style
	muted  lipgloss.Style
}

// newStyles binds the palette to out, so colour is only emitted when out is
// a terminal that supports it.
func newStyles(out io.Writer, enabled bool) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		enabled: enabled,
		err:     r.NewStyle().Foreground(colorError),
		result:  r.NewStyle().Foreground(colorResult),
		banner:  r.NewStyle().Foreground(colorBanner).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted).Italic(true),
	}
}

// paint renders text line by line so lipgloss never pads lines to a common
// width.
func (s styles) paint(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
