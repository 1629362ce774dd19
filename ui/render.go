package ui

import (
	"customgrid/log"
	"customgrid/ui/layout"
)

// Render lays out children with policy under c and draws every placed child
// onto a canvas the size of the container. The canvas is not clipped to c;
// use Clip to fit it into a viewport.
func Render(children []layout.Measurable, c layout.Constraints, policy layout.MeasurePolicy, direction layout.Direction) (string, *layout.MeasureResult) {
	profiler := log.GetProfiler()

	done := profiler.StartPhase("layout")
	result := layout.Layout(children, c, policy, direction)
	done()

	done = profiler.StartPhase("draw")
	defer done()

	canvas := NewCanvas(result.Width, result.Height)
	drawn := 0
	for _, row := range result.Rows {
		for _, p := range row {
			d, ok := p.(Drawable)
			if !ok {
				continue
			}
			x, y, placed := d.Position()
			if !placed {
				continue
			}
			canvas.Draw(x, y, d.View())
			drawn++
		}
	}

	log.RenderTrace("grid", "drew %d children on %dx%d canvas", drawn, canvas.Width(), canvas.Height())
	return canvas.String(), result
}

// RenderGrid renders children in grid under density.
func RenderGrid(children []layout.Measurable, c layout.Constraints, grid layout.Grid, density layout.Density, direction layout.Direction) (string, *layout.MeasureResult) {
	return Render(children, c, grid.Policy(density), direction)
}
