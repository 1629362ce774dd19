package layout

import "math"

// Infinity marks an unbounded maximum dimension.
const Infinity = math.MaxInt

// Constraints holds the min/max bounds a layout must respect when sizing
// itself and its children. All values are in terminal cells.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unbounded returns constraints with no lower bound and no upper bound.
func Unbounded() Constraints {
	return Constraints{MaxWidth: Infinity, MaxHeight: Infinity}
}

// Loose returns constraints allowing any size up to width x height.
func Loose(width, height int) Constraints {
	return Constraints{
		MaxWidth:  max(width, 0),
		MaxHeight: max(height, 0),
	}
}

// Tight returns constraints that only allow exactly width x height.
func Tight(width, height int) Constraints {
	width, height = max(width, 0), max(height, 0)
	return Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MinHeight: height,
		MaxHeight: height,
	}
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth != Infinity
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight != Infinity
}

// ConstrainWidth clamps width into [MinWidth, MaxWidth].
func (c Constraints) ConstrainWidth(width int) int {
	return clamp(width, c.MinWidth, c.MaxWidth)
}

// ConstrainHeight clamps height into [MinHeight, MaxHeight].
func (c Constraints) ConstrainHeight(height int) int {
	return clamp(height, c.MinHeight, c.MaxHeight)
}

// Constrain clamps a size into the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	return c.ConstrainWidth(width), c.ConstrainHeight(height)
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
