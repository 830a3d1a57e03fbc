package keyboard

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Theme holds the semantic colors the keyboard views draw with.
type Theme struct {
	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Surface lipgloss.Color
	Base    lipgloss.Color
}

// MochaTheme is the standard dark theme.
func MochaTheme() Theme {
	return Theme{
		Accent:  colorPink,
		Focus:   colorLavender,
		Text:    colorText,
		Muted:   colorOverlay0,
		Surface: colorSurface0,
		Base:    colorBase,
	}
}

var accentsByName = map[string]lipgloss.Color{
	"pink":     colorPink,
	"mauve":    colorMauve,
	"red":      colorRed,
	"yellow":   colorYellow,
	"green":    colorGreen,
	"teal":     colorTeal,
	"blue":     colorBlue,
	"lavender": colorLavender,
}

// AccentNames returns the accent names configuration accepts, in
// display order.
func AccentNames() []string {
	return []string{"pink", "mauve", "red", "yellow", "green", "teal", "blue", "lavender"}
}

// AccentByName resolves a configured accent name, falling back to the
// standard pink accent for unknown names.
func AccentByName(name string) lipgloss.Color {
	if c, ok := accentsByName[name]; ok {
		return c
	}
	return colorPink
}
