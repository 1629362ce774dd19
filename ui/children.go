package ui

import (
	"strings"

	"customgrid/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// fillRune paints boxes too small for a border.
const fillRune = "░"

// Box is a square tile of a fixed density-independent size with a centered
// label inside a rounded border.
type Box struct {
	Label   string
	Size    layout.Dp
	Style   lipgloss.Style
	Density layout.Density
}

// NewTile creates the i-th tile of the demo grid.
func NewTile(i int, label string, size layout.Dp, density layout.Density) Box {
	return Box{
		Label:   label,
		Size:    size,
		Style:   TileStyle(i),
		Density: density,
	}
}

// Measure sizes the box to its own size clamped by c.
func (b Box) Measure(c layout.Constraints) layout.Placeable {
	density := b.Density
	if density.Scale == 0 {
		density = layout.DefaultDensity
	}
	w, h := c.Constrain(density.ToPx(b.Size), density.ToPxVertical(b.Size))
	return NewBlock(b.render(w, h), w, h)
}

func (b Box) render(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}

	if w < 3 || h < 3 {
		fill := b.Style.UnsetBorderStyle().UnsetPadding().UnsetMargins().
			Foreground(BorderColor(b.Style))
		lines := make([]string, h)
		for i := range lines {
			lines[i] = fill.Render(strings.Repeat(fillRune, w))
		}
		return strings.Join(lines, "\n")
	}

	label := strings.ReplaceAll(b.Label, "\n", " ")
	label = truncate.String(label, uint(w-2))

	return b.Style.
		UnsetPadding().
		UnsetMargins().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor(b.Style)).
		Width(w-2).
		Height(h-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}

// Text is a paragraph that wraps to the available width.
type Text struct {
	Content string
	Style   lipgloss.Style
}

// Measure wraps the text to c's max width and sizes it to its widest line.
func (t Text) Measure(c layout.Constraints) layout.Placeable {
	content := t.Content
	if c.HasBoundedWidth() && c.MaxWidth > 0 {
		// Word wrap first, then hard wrap words longer than the line.
		content = wrap.String(wordwrap.String(content, c.MaxWidth), c.MaxWidth)
	}

	lines := strings.Split(content, "\n")
	natural := 0
	for _, line := range lines {
		natural = max(natural, ansi.PrintableRuneWidth(line))
	}

	w, h := c.Constrain(natural, len(lines))
	rendered := make([]string, h)
	for i := range rendered {
		line := ""
		if i < len(lines) {
			line = truncate.String(lines[i], uint(w))
		}
		rendered[i] = t.Style.Render(line)
	}
	return NewBlock(strings.Join(rendered, "\n"), w, h)
}
