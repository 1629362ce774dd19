package app

import (
	"context"
	"errors"
	"testing"

	"customgrid/config"
	"customgrid/testing/harness"
	"customgrid/testing/snapshot"
	"customgrid/ui"
	"customgrid/ui/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHome(t *testing.T, width, height int) (*harness.Harness, *home) {
	t.Helper()
	m := newHome(context.Background(), config.DefaultConfig(), false)
	m.writeClipboard = func(string) error { return nil }
	return harness.New(t, m, width, height), m
}

func TestColumnKeys(t *testing.T) {
	h, m := newTestHome(t, 80, 24)

	h.SendKey("+")
	assert.Equal(t, 4, m.cfg.Columns)

	h.SendKeys("-", "-", "-", "-", "-")
	assert.Equal(t, -1, m.cfg.Columns)

	view := h.View()
	require.NotNil(t, m.frame.Result)
	assert.Equal(t, 1, m.frame.Result.Columns)
	assert.Equal(t, 10, m.frame.Result.RowCount())
	assert.Contains(t, view, "columns -1 (1)")
}

func TestSpacingKeys(t *testing.T) {
	h, m := newTestHome(t, 80, 24)

	h.SendKeys("]", "]")
	assert.Equal(t, 20.0, m.cfg.HorizontalSpacing)
	h.View()
	assert.Equal(t, layout.DefaultDensity.ToPx(20), m.frame.Result.HorizontalSpacing)

	h.SendKeys("[", "[", "[")
	assert.Equal(t, 0.0, m.cfg.HorizontalSpacing)

	h.SendKey("}")
	assert.Equal(t, 10.0, m.cfg.VerticalSpacing)
	h.SendKeys("{", "{")
	assert.Equal(t, 0.0, m.cfg.VerticalSpacing)
}

func TestToggleDirection(t *testing.T) {
	h, m := newTestHome(t, 80, 24)

	h.View()
	x, _, _ := m.frame.Result.Rows[0][0].(*ui.Block).Position()
	assert.Equal(t, 1, x)

	h.SendKey("r")
	assert.Equal(t, config.DirectionRTL, m.cfg.Direction)
	h.View()
	// The first tile now sits at the right end of its mirrored column.
	x, _, _ = m.frame.Result.Rows[0][0].(*ui.Block).Position()
	assert.Equal(t, 40-1-12, x)

	h.SendKey("r")
	assert.Equal(t, config.DirectionLTR, m.cfg.Direction)
}

func TestAddAndRemoveTiles(t *testing.T) {
	h, m := newTestHome(t, 80, 24)

	h.SendKey("a")
	require.Len(t, m.cfg.Tiles, 11)
	assert.Equal(t, config.Tile{Label: "cat 11", Size: 100}, m.cfg.Tiles[10])

	for i := 0; i < 12; i++ {
		h.SendKey("x")
	}
	assert.Empty(t, m.cfg.Tiles)

	h.View()
	assert.Equal(t, 0, m.frame.Result.Width)
	assert.Equal(t, 0, m.frame.Result.Height)
}

func TestCopyGrid(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := newHome(ctx, config.DefaultConfig(), false)
	var copied string
	m.writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	h := harness.New(t, m, 80, 24)

	cmd := h.SendKey("y")
	require.NotNil(t, cmd)
	assert.Contains(t, copied, "╭")
	assert.NotContains(t, copied, "\x1b")
	assert.Equal(t, "copied 40x25 grid", m.status)
	assert.Contains(t, h.View(), "copied 40x25 grid")

	cancel()
	assert.IsType(t, hideStatusMsg{}, h.Exec(cmd))
	assert.Empty(t, m.status)
}

func TestCopyGridFailure(t *testing.T) {
	h, m := newTestHome(t, 80, 24)
	m.writeClipboard = func(string) error { return errors.New("no clipboard") }

	h.SendKey("y")
	assert.Equal(t, "copy failed: no clipboard", m.status)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			h, _ := newTestHome(t, 80, 24)
			cmd := h.SendKey(k)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestQuitSavesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	m := newHome(context.Background(), config.DefaultConfig(), true)
	h := harness.New(t, m, 80, 24)
	h.SendKeys("+", "r", "q")

	saved := config.LoadConfig()
	assert.Equal(t, 4, saved.Columns)
	assert.Equal(t, config.DirectionRTL, saved.Direction)
}

func TestHelpToggle(t *testing.T) {
	h, m := newTestHome(t, 80, 24)

	assert.NotContains(t, h.View(), "wider gaps")

	h.SendKey("?")
	assert.True(t, m.showHelp)
	assert.Contains(t, h.View(), "wider gaps")

	h.SendKey("?")
	assert.False(t, m.showHelp)
}

func TestTooSmallWarning(t *testing.T) {
	h, _ := newTestHome(t, 80, 24)

	h.Resize(30, 10)
	assert.Equal(t, 30, h.Width())
	assert.Equal(t, 10, h.Height())
	assert.Contains(t, h.View(), "terminal too small: 30x10 (need 40x12)")
}

func TestTitleSummarizesGrid(t *testing.T) {
	h, _ := newTestHome(t, 80, 24)

	m, ok := h.Model().(*home)
	require.True(t, ok)
	m.cfg.HorizontalSpacing = 10

	assert.Contains(t, h.View(), "customgrid  columns 3 (3)  gaps 10x0 dp  ltr  tiles 10")
}

func TestViewFitsTerminal(t *testing.T) {
	harness.RunWithCommonSizes(t, func(t *testing.T, size harness.TerminalSize) {
		h, _ := newTestHome(t, size.Width, size.Height)
		view := h.View()

		assert.Equal(t, h.Height(), snapshot.Lines(view))
		assert.LessOrEqual(t, snapshot.Width(view), h.Width())
	})
}

func TestInspectNode(t *testing.T) {
	h, m := newTestHome(t, 80, 24)
	h.View()

	root := m.InspectNode()
	require.Len(t, root.Children, 3)
	assert.Equal(t, "Title", root.Children[0].Type)
	assert.Equal(t, "Help", root.Children[2].Type)

	grid := root.Children[1]
	assert.Equal(t, "Grid", grid.Type)
	assert.Equal(t, layout.TitleHeight, grid.Bounds.Y)
	require.Len(t, grid.Children, 10)
	assert.Equal(t, "cat 1", grid.Children[0].ID)
	require.NotNil(t, grid.Children[0].Styles)
	assert.NotEmpty(t, grid.Children[0].Styles.BorderColor)
}
