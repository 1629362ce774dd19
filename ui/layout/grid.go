package layout

import "customgrid/log"

// Grid is the caller-facing configuration of a grid container.
type Grid struct {
	// Columns is the fixed column count. Values <= 0 lay out as one column.
	Columns           int
	HorizontalSpacing Dp
	VerticalSpacing   Dp
}

// GridSpec is a Grid with spacing already converted to cells.
type GridSpec struct {
	Columns             int
	HorizontalSpacingPx int
	VerticalSpacingPx   int
}

// Spec converts the grid's spacing with density.
func (g Grid) Spec(density Density) GridSpec {
	return GridSpec{
		Columns:             g.Columns,
		HorizontalSpacingPx: density.ToPx(g.HorizontalSpacing),
		VerticalSpacingPx:   density.ToPxVertical(g.VerticalSpacing),
	}
}

// Policy returns the grid's measure policy under density.
func (g Grid) Policy(density Density) MeasurePolicy {
	spec := g.Spec(density)
	return func(children []Measurable, c Constraints) *MeasureResult {
		return MeasureGrid(children, c, spec)
	}
}

// EffectiveColumns normalizes a column count: anything below one becomes one.
func EffectiveColumns(columns int) int {
	if columns <= 0 {
		return 1
	}
	return columns
}

// MeasureResult is the geometry of one grid measure pass.
type MeasureResult struct {
	// Width and Height are the container size. They are not clamped to the
	// incoming constraints, so a grid may overflow its parent.
	Width  int
	Height int

	Columns      int
	ColumnWidths []int
	RowHeights   []int
	// Rows holds the measured children, Columns per row, the last row possibly short.
	Rows [][]Placeable

	HorizontalSpacing int
	VerticalSpacing   int
}

// MeasureGrid measures every child under c, partitions them into rows of
// spec.Columns and sizes each column to its widest child and each row to its
// tallest child.
func MeasureGrid(children []Measurable, c Constraints, spec GridSpec) *MeasureResult {
	columns := EffectiveColumns(spec.Columns)
	hSpacing := max(spec.HorizontalSpacingPx, 0)
	vSpacing := max(spec.VerticalSpacingPx, 0)

	// Every child sees the same constraints; columns never feed back into
	// a child's measurement.
	placeables := make([]Placeable, len(children))
	for i, child := range children {
		placeables[i] = child.Measure(c)
	}

	rows := chunk(placeables, columns)

	columnWidths := make([]int, columns)
	for _, row := range rows {
		for col, p := range row {
			columnWidths[col] = max(columnWidths[col], p.Width())
		}
	}

	rowHeights := make([]int, len(rows))
	for i, row := range rows {
		for _, p := range row {
			rowHeights[i] = max(rowHeights[i], p.Height())
		}
	}

	result := &MeasureResult{
		Columns:           columns,
		ColumnWidths:      columnWidths,
		RowHeights:        rowHeights,
		Rows:              rows,
		HorizontalSpacing: hSpacing,
		VerticalSpacing:   vSpacing,
	}
	if len(rows) > 0 {
		result.Width = sum(columnWidths) + hSpacing*gaps(columns)
		result.Height = sum(rowHeights) + vSpacing*gaps(len(rows))
	}

	log.LayoutTrace("grid: %d children, %d columns, %d rows -> %dx%d (columns=%v rows=%v)",
		len(children), columns, len(rows), result.Width, result.Height, columnWidths, rowHeights)

	return result
}

// RowCount returns the number of rows.
func (r *MeasureResult) RowCount() int {
	return len(r.Rows)
}

// Place commits every child's position in scope, centering it in its cell.
func (r *MeasureResult) Place(scope PlacementScope) {
	r.walk(func(p Placeable, x, y int) {
		scope.PlaceRelative(p, x, y)
	})
}

// Positions returns each child's start-relative offset in input order.
func (r *MeasureResult) Positions() []Point {
	var points []Point
	r.walk(func(_ Placeable, x, y int) {
		points = append(points, Point{X: x, Y: y})
	})
	return points
}

// walk visits the children row by row with their centered start-relative offsets.
func (r *MeasureResult) walk(fn func(p Placeable, x, y int)) {
	yOffset := 0
	for rowIndex, row := range r.Rows {
		rowHeight := r.RowHeights[rowIndex]
		xOffset := 0
		for col, p := range row {
			x := xOffset + (r.ColumnWidths[col]-p.Width())/2
			y := yOffset + (rowHeight-p.Height())/2
			fn(p, x, y)
			xOffset += r.ColumnWidths[col] + r.HorizontalSpacing
		}
		yOffset += rowHeight + r.VerticalSpacing
	}
}

func chunk(items []Placeable, size int) [][]Placeable {
	rows := make([][]Placeable, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		rows = append(rows, items[start:end])
	}
	return rows
}

// gaps is the number of spacings between count items, never negative.
func gaps(count int) int {
	return max(count-1, 0)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
