package app

import (
	"customgrid/config"
	"customgrid/inspect"
	"customgrid/ui"
	"customgrid/ui/layout"
)

// Tiles builds the grid children for the configured tiles.
func Tiles(tiles []config.Tile, density layout.Density) []layout.Measurable {
	children := make([]layout.Measurable, len(tiles))
	for i, t := range tiles {
		children[i] = ui.NewTile(i, t.Label, layout.Dp(t.Size), density)
	}
	return children
}

func labels(tiles []config.Tile) []string {
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = t.Label
	}
	return out
}

// Frame is one rendered grid together with its geometry.
type Frame struct {
	View   string
	Result *layout.MeasureResult
}

// RenderConfig renders cfg's tiles under c.
func RenderConfig(cfg *config.Config, c layout.Constraints) Frame {
	view, result := ui.RenderGrid(Tiles(cfg.Tiles, cfg.Density()), c, cfg.Grid(), cfg.Density(), cfg.LayoutDirection())
	return Frame{View: view, Result: result}
}

// Snapshot describes f as an inspection snapshot.
func (f Frame) Snapshot(cfg *config.Config, c layout.Constraints) *inspect.Snapshot {
	return inspect.NewSnapshot().
		WithGrid(cfg.Columns, c, f.Result, cfg.LayoutDirection()).
		WithComponents(inspect.GridNode(f.Result, labels(cfg.Tiles)))
}
