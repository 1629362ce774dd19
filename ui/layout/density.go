package layout

// Dp is a density-independent length.
type Dp float64

// Density converts density-independent lengths to terminal cells.
type Density struct {
	// Scale is the number of cells per dp along the horizontal axis.
	Scale float64
	// CellAspect is the height/width ratio of one terminal cell.
	CellAspect float64
}

// DefaultDensity maps 100dp to 12 columns and 6 rows.
var DefaultDensity = Density{Scale: 0.12, CellAspect: 2}

// ToPx converts a horizontal length to cells, truncating toward zero.
func (d Density) ToPx(dp Dp) int {
	return toCells(float64(dp) * d.Scale)
}

// ToPxVertical converts a vertical length to cells, truncating toward zero.
func (d Density) ToPxVertical(dp Dp) int {
	aspect := d.CellAspect
	if aspect <= 0 {
		aspect = 1
	}
	return toCells(float64(dp) * d.Scale / aspect)
}

func toCells(px float64) int {
	if px <= 0 {
		return 0
	}
	return int(px)
}
