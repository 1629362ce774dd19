package ui

import (
	"strings"
	"testing"

	"customgrid/testing/snapshot"
	"customgrid/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitDensity = layout.Density{Scale: 1, CellAspect: 1}

func measureBlock(t *testing.T, m layout.Measurable, c layout.Constraints) *Block {
	t.Helper()
	b, ok := m.Measure(c).(*Block)
	require.True(t, ok, "Measure should return a *Block")
	return b
}

func TestBoxMeasure(t *testing.T) {
	tests := []struct {
		name       string
		size       layout.Dp
		density    layout.Density
		c          layout.Constraints
		wantWidth  int
		wantHeight int
	}{
		{name: "natural size", size: 5, density: unitDensity, c: layout.Unbounded(), wantWidth: 5, wantHeight: 5},
		{name: "clamped by max width", size: 5, density: unitDensity, c: layout.Loose(3, 10), wantWidth: 3, wantHeight: 5},
		{name: "grown by min size", size: 1, density: unitDensity, c: layout.Tight(4, 4), wantWidth: 4, wantHeight: 4},
		{name: "density aspect", size: 10, density: layout.Density{Scale: 1, CellAspect: 2}, c: layout.Unbounded(), wantWidth: 10, wantHeight: 5},
		{name: "zero density falls back to default", size: 100, c: layout.Unbounded(), wantWidth: 12, wantHeight: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := Box{Label: "x", Size: tt.size, Style: TileStyle(0), Density: tt.density}
			b := measureBlock(t, box, tt.c)

			assert.Equal(t, tt.wantWidth, b.Width())
			assert.Equal(t, tt.wantHeight, b.Height())
			assert.Equal(t, tt.wantWidth, snapshot.Width(b.View()))
			assert.Equal(t, tt.wantHeight, snapshot.Lines(b.View()))
		})
	}
}

func TestBoxRendersBorderAndLabel(t *testing.T) {
	b := measureBlock(t, NewTile(0, "cat", 7, unitDensity), layout.Unbounded())
	view := b.View()

	assert.Equal(t, '╭', snapshot.Cell(view, 0, 0))
	assert.Equal(t, '╮', snapshot.Cell(view, 6, 0))
	assert.Equal(t, '╰', snapshot.Cell(view, 0, 6))
	assert.Equal(t, '╯', snapshot.Cell(view, 6, 6))
	snapshot.New(t).AssertContains(view, "cat")
}

func TestBoxTruncatesLongLabel(t *testing.T) {
	b := measureBlock(t, NewTile(1, "a very long label", 5, unitDensity), layout.Unbounded())

	assert.Equal(t, 5, snapshot.Width(b.View()))
	assert.Equal(t, 5, snapshot.Lines(b.View()))
	snapshot.New(t).AssertContains(b.View(), "a v")
}

func TestBoxTooSmallForBorderIsFilled(t *testing.T) {
	b := measureBlock(t, NewTile(2, "x", 2, unitDensity), layout.Unbounded())

	stripped := snapshot.StripANSI(b.View())
	assert.Equal(t, strings.Repeat(fillRune, 2)+"\n"+strings.Repeat(fillRune, 2), stripped)
}

func TestBoxZeroSizeRendersNothing(t *testing.T) {
	b := measureBlock(t, NewTile(0, "x", 0, unitDensity), layout.Unbounded())

	assert.Equal(t, 0, b.Width())
	assert.Equal(t, 0, b.Height())
	assert.Empty(t, b.View())
}

func TestTextMeasure(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		c          layout.Constraints
		wantWidth  int
		wantHeight int
		wantLines  []string
	}{
		{
			name:       "unbounded keeps one line",
			content:    "hello world",
			c:          layout.Unbounded(),
			wantWidth:  11,
			wantHeight: 1,
			wantLines:  []string{"hello world"},
		},
		{
			name:       "wraps at word boundary",
			content:    "hello world",
			c:          layout.Loose(5, 10),
			wantWidth:  5,
			wantHeight: 2,
			wantLines:  []string{"hello", "world"},
		},
		{
			name:       "hard wraps long words",
			content:    "abcdefgh",
			c:          layout.Loose(3, 10),
			wantWidth:  3,
			wantHeight: 3,
			wantLines:  []string{"abc", "def", "gh"},
		},
		{
			name:       "clipped by max height",
			content:    "a\nb\nc",
			c:          layout.Loose(10, 2),
			wantWidth:  1,
			wantHeight: 2,
			wantLines:  []string{"a", "b"},
		},
		{
			name:       "padded to min height",
			content:    "a",
			c:          layout.Constraints{MaxWidth: layout.Infinity, MinHeight: 2, MaxHeight: layout.Infinity},
			wantWidth:  1,
			wantHeight: 2,
			wantLines:  []string{"a", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := measureBlock(t, Text{Content: tt.content, Style: lipgloss.NewStyle()}, tt.c)

			assert.Equal(t, tt.wantWidth, b.Width())
			assert.Equal(t, tt.wantHeight, b.Height())
			lines := strings.Split(snapshot.StripANSI(b.View()), "\n")
			for i := range lines {
				lines[i] = strings.TrimRight(lines[i], " ")
			}
			assert.Equal(t, tt.wantLines, lines)
		})
	}
}

func TestBlockPlacement(t *testing.T) {
	b := NewBlock("x", 1, 1)

	_, _, placed := b.Position()
	assert.False(t, placed)

	b.Place(3, 4)
	x, y, placed := b.Position()
	assert.True(t, placed)
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
}

func TestBorderColor(t *testing.T) {
	assert.Equal(t, TileColors[1], BorderColor(TileStyle(1)))
	assert.Equal(t, Border, BorderColor(lipgloss.NewStyle()))
}

func TestBoxWithoutStyleStillDrawsBorder(t *testing.T) {
	b := measureBlock(t, Box{Label: "x", Size: 5, Density: unitDensity}, layout.Unbounded())

	assert.Equal(t, '╭', snapshot.Cell(b.View(), 0, 0))
	assert.Equal(t, 'x', snapshot.Cell(b.View(), 2, 2))
}
