// Package styles holds the lipgloss styles shared by the CLI and the REPL.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/pengelbrecht/sum/internal/calculator"
)

var (
	ColorGreen = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#7BD88F"}
	ColorRed   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6B6B"}
	ColorBlue  = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#7AB8FF"}
	ColorAmber = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFC857"}
	ColorGray  = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
)

var (
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	ResultStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorRed)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorGray)
	IntStyle    = lipgloss.NewStyle().Foreground(ColorBlue)
	FloatStyle  = lipgloss.NewStyle().Foreground(ColorAmber)
	PassStyle   = lipgloss.NewStyle().Foreground(ColorGreen)
	FailStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray).
			Padding(0, 1)
)

// SetColor turns styled output on or off for the whole process.
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// RenderValue renders a number in the style of its kind.
func RenderValue(v calculator.Value) string {
	if v.IsInt() {
		return IntStyle.Render(v.String())
	}
	return FloatStyle.Render(v.String())
}

// RenderKind renders a bracketed kind badge, e.g. "[int]".
func RenderKind(k calculator.Kind) string {
	return MutedStyle.Render("[" + k.String() + "]")
}

// RenderResult renders "a + b = sum [kind]".
func RenderResult(a, b, sum calculator.Value) string {
	return RenderValue(a) + " + " + RenderValue(b) + " = " +
		ResultStyle.Render(sum.String()) + " " + RenderKind(sum.Kind())
}

// RenderPass renders a pass or fail marker.
func RenderPass(passed bool) string {
	if passed {
		return PassStyle.Render("✓")
	}
	return FailStyle.Render("✗")
}

// PadRight pads s with spaces to the given display width. Escape sequences
// and wide characters are measured by their on-screen width.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
