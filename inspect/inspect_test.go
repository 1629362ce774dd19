package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"customgrid/ui/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sized struct{ w, h int }

func (s sized) Measure(c layout.Constraints) layout.Placeable {
	w, h := c.Constrain(s.w, s.h)
	return &cell{w: w, h: h}
}

type cell struct {
	w, h, x, y int
	placed     bool
}

func (c *cell) Width() int  { return c.w }
func (c *cell) Height() int { return c.h }
func (c *cell) Place(x, y int) {
	c.x, c.y, c.placed = x, y, true
}
func (c *cell) Position() (int, int, bool) { return c.x, c.y, c.placed }

func measure(direction layout.Direction) *layout.MeasureResult {
	children := []layout.Measurable{sized{4, 4}, sized{2, 2}, sized{6, 3}}
	policy := layout.Grid{Columns: 2}.Policy(layout.Density{Scale: 1, CellAspect: 1})
	return layout.Layout(children, layout.Loose(8, 20), policy, direction)
}

func TestGridNode(t *testing.T) {
	r := measure(layout.LeftToRight)
	root := GridNode(r, []string{"a", "b", "long label"})

	assert.Equal(t, "Grid", root.Type)
	assert.Equal(t, Bounds{Width: 8, Height: 7}, root.Bounds)
	require.Len(t, root.Children, 3)

	assert.Equal(t, Bounds{X: 1, Y: 0, Width: 4, Height: 4}, root.Children[0].Bounds)
	assert.Equal(t, Bounds{X: 6, Y: 1, Width: 2, Height: 2}, root.Children[1].Bounds)
	assert.Equal(t, Bounds{X: 0, Y: 4, Width: 6, Height: 3}, root.Children[2].Bounds)

	assert.Equal(t, 1, root.Children[2].State["row"])
	assert.Equal(t, 0, root.Children[2].State["column"])
	assert.Equal(t, "b", root.Children[1].Content)
	assert.Nil(t, root.Children[0].Truncated)
	require.NotNil(t, root.Children[2].Truncated)
	assert.Equal(t, 10, root.Children[2].Truncated.OriginalLength)
	assert.Equal(t, 4, root.Children[2].Truncated.DisplayLength)
}

func TestGridNodeUsesCommittedPositions(t *testing.T) {
	r := measure(layout.RightToLeft)
	root := GridNode(r, nil)

	// Mirrored inside an 8 wide container.
	assert.Equal(t, 3, root.Children[0].Bounds.X)
	assert.Equal(t, 0, root.Children[1].Bounds.X)
	assert.Equal(t, "", root.Children[0].ID)
}

func TestSnapshotWithGrid(t *testing.T) {
	r := measure(layout.LeftToRight)
	s := NewSnapshot().
		WithTerminal(80, 24).
		WithGrid(0, layout.Loose(6, 20), r, layout.LeftToRight).
		WithComponents(GridNode(r, []string{"a", "b", "c"}))

	assert.Equal(t, 0, s.Grid.RequestedColumns)
	assert.Equal(t, 2, s.Grid.Columns)
	assert.Equal(t, 2, s.Grid.Rows)
	assert.Equal(t, []int{6, 2}, s.Grid.ColumnWidths)
	assert.Equal(t, []int{4, 3}, s.Grid.RowHeights)
	assert.Equal(t, "ltr", s.Grid.Direction)
	assert.True(t, s.Viewport.Overflow)

	text := s.ToText()
	assert.Contains(t, text, "Columns: 2 (requested 0)")
	assert.Contains(t, text, "Column widths: [6 2]")
	assert.Contains(t, text, "OVERFLOW")
	assert.Contains(t, text, "Cell [a] @1,0 (4x4)")
}

func TestSnapshotUnboundedViewport(t *testing.T) {
	r := measure(layout.LeftToRight)
	s := NewSnapshot().WithGrid(2, layout.Unbounded(), r, layout.LeftToRight)

	assert.Equal(t, -1, s.Viewport.MaxWidth)
	assert.Equal(t, -1, s.Viewport.MaxHeight)
	assert.False(t, s.Viewport.Overflow)
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	r := measure(layout.LeftToRight)
	s := NewSnapshot().WithGrid(2, layout.Unbounded(), r, layout.RightToLeft)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, WriteSnapshotToPath(s, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s.Grid, decoded.Grid)
	assert.Equal(t, "rtl", decoded.Grid.Direction)
}

func TestWriteSnapshotToPathReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	s := NewSnapshot().WithGrid(2, layout.Unbounded(), measure(layout.LeftToRight), layout.LeftToRight)
	require.NoError(t, WriteSnapshotToPath(s, path))

	var decoded Snapshot
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Grid.Columns)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestWriteSnapshotToMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "snapshot.json")
	s := NewSnapshot().WithGrid(2, layout.Unbounded(), measure(layout.LeftToRight), layout.LeftToRight)

	assert.Error(t, WriteSnapshotToPath(s, path))
}

func TestInspectFileFollowsEnabled(t *testing.T) {
	assert.Equal(t, IsEnabled(), GetInspectFile() != "")
}

func TestExtractStyleInfo(t *testing.T) {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)

	info := ExtractStyleInfo(style, "tile")

	assert.True(t, info.Bold)
	assert.Equal(t, "#FFFFFF", info.Foreground)
	assert.Equal(t, "", info.Background)
	assert.Equal(t, "rounded", info.Border)
	assert.Equal(t, "62", info.BorderColor)
	assert.Equal(t, []int{1, 2, 1, 2}, info.Padding)
	assert.Equal(t, []string{"tile"}, info.AppliedStyles)
}

func TestNodeBuilders(t *testing.T) {
	n := NewNode("Cell").WithID("x").WithBounds(1, 2, 3, 4).WithState("k", "v").WithContent("hi")

	assert.True(t, n.Visible)
	assert.Equal(t, "x", n.ID)
	assert.Equal(t, Bounds{X: 1, Y: 2, Width: 3, Height: 4}, n.Bounds)
	assert.Equal(t, "v", n.State["k"])
	assert.Equal(t, "hi", n.Content)
}
