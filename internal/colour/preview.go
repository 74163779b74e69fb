package colour

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultWidth = 8

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// SupportsANSIColours reports whether previews should be styled.
// Styling is skipped when disabled, when NO_COLOR is set or when stdout is not a terminal.
func SupportsANSIColours() bool {
	if DisableColourOutput || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Preview renders text centred on a swatch of c.
// The label is black or white, whichever contrasts more with c.
// Without colour support the padded text is returned unstyled.
func Preview(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	if len(text) > width {
		text = text[:width]
	}

	if !SupportsANSIColours() {
		return padCentre(text, width)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(BestTextColour(c).Hex())).
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}

// ColourString returns a coloured string if colour output is enabled, plain text otherwise.
func ColourString(rgb RGB, text string) string {
	if !SupportsANSIColours() {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(rgb.Hex())).Render(text)
}

func padCentre(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
