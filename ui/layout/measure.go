// Package layout provides the measurement protocol, the custom grid layout
// and the screen regions of the demo.
package layout

import (
	"time"

	"customgrid/log"
)

// Measurable is a child that can be asked for its size before placement.
type Measurable interface {
	// Measure sizes the child under the given constraints.
	Measure(c Constraints) Placeable
}

// Placeable is a measured child waiting for its final position.
type Placeable interface {
	Width() int
	Height() int
	// Place commits the child's offset relative to its parent's top-left corner.
	Place(x, y int)
}

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Direction is the horizontal reading direction used by relative placement.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	default:
		return "unknown"
	}
}

// PlacementScope issues placement commands inside a parent of a given width.
type PlacementScope struct {
	// Width is the parent's measured width, used to mirror RTL offsets.
	Width     int
	Direction Direction
}

// Place positions p at (x, y) regardless of direction.
func (s PlacementScope) Place(p Placeable, x, y int) {
	p.Place(x, y)
}

// PlaceRelative positions p at a start-relative x. In right-to-left scopes x
// is measured from the right edge.
func (s PlacementScope) PlaceRelative(p Placeable, x, y int) {
	p.Place(s.mirror(x, p.Width()), y)
}

func (s PlacementScope) mirror(x, width int) int {
	if s.Direction == RightToLeft {
		return s.Width - x - width
	}
	return x
}

// MeasurePolicy is the custom layout hook: it measures children under the
// container's constraints and returns the container size plus the geometry
// needed to place them.
type MeasurePolicy func(children []Measurable, c Constraints) *MeasureResult

// Layout runs one full pass: measure with policy, then place in direction.
func Layout(children []Measurable, c Constraints, policy MeasurePolicy, direction Direction) *MeasureResult {
	start := time.Now()
	result := policy(children, c)
	result.Place(PlacementScope{Width: result.Width, Direction: direction})

	if elapsed := time.Since(start); elapsed > 4*time.Millisecond {
		log.PerformanceWarning("layout of %d children took %v", len(children), elapsed)
	}
	return result
}
