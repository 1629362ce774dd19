package ui

import "github.com/charmbracelet/lipgloss"

// UI chrome colors - structural elements
var (
	// Primary is the accent/focus color
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// Warning is for the terminal-too-small notice
	Warning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}
)

// TileColors cycle across tiles so neighbouring cells are distinguishable.
var TileColors = []lipgloss.AdaptiveColor{
	{Light: "#7D56F4", Dark: "#9F7AEA"},
	{Light: "#0EA5E9", Dark: "#38BDF8"},
	{Light: "#22C55E", Dark: "#4ADE80"},
	{Light: "#F59E0B", Dark: "#FBBF24"},
	{Light: "#EF4444", Dark: "#F87171"},
}

// TileStyle returns the style of the i-th tile.
func TileStyle(i int) lipgloss.Style {
	if i < 0 {
		i = -i
	}
	color := TileColors[i%len(TileColors)]
	return lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderForeground(color)
}

// BorderColor returns the border color of s, or Border when s sets none.
func BorderColor(s lipgloss.Style) lipgloss.TerminalColor {
	if _, unset := s.GetBorderTopForeground().(lipgloss.NoColor); unset {
		return Border
	}
	return s.GetBorderTopForeground()
}

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Title     lipgloss.Style
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Warning   lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(Primary),
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Warning:   lipgloss.NewStyle().Bold(true).Foreground(Warning),
}

// SpaceSM separates items on a single line.
const SpaceSM = 2
