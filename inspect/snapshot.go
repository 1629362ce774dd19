package inspect

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"customgrid/ui/layout"
)

// Snapshot represents a complete layout pass at a point in time.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// Viewport contains the constraints the grid was measured under.
	Viewport ViewportInfo `json:"viewport"`

	// Grid contains the measured grid geometry.
	Grid GridInfo `json:"grid"`

	// Components is the root of the component tree.
	Components *Node `json:"components"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ViewportInfo contains incoming constraints. Unbounded maxima are -1.
type ViewportInfo struct {
	MinWidth  int  `json:"min_width"`
	MaxWidth  int  `json:"max_width"`
	MinHeight int  `json:"min_height"`
	MaxHeight int  `json:"max_height"`
	Overflow  bool `json:"overflow"`
}

// GridInfo contains the geometry of one measure pass.
type GridInfo struct {
	// RequestedColumns is the column count before normalization.
	RequestedColumns  int    `json:"requested_columns"`
	Columns           int    `json:"columns"`
	Rows              int    `json:"rows"`
	Width             int    `json:"width"`
	Height            int    `json:"height"`
	ColumnWidths      []int  `json:"column_widths"`
	RowHeights        []int  `json:"row_heights"`
	HorizontalSpacing int    `json:"horizontal_spacing"`
	VerticalSpacing   int    `json:"vertical_spacing"`
	Direction         string `json:"direction"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithGrid records a measured grid and the constraints it was measured under.
func (s *Snapshot) WithGrid(requestedColumns int, c layout.Constraints, r *layout.MeasureResult, dir layout.Direction) *Snapshot {
	s.Viewport = ViewportInfo{
		MinWidth:  c.MinWidth,
		MaxWidth:  bound(c.MaxWidth),
		MinHeight: c.MinHeight,
		MaxHeight: bound(c.MaxHeight),
		Overflow: (c.HasBoundedWidth() && r.Width > c.MaxWidth) ||
			(c.HasBoundedHeight() && r.Height > c.MaxHeight),
	}
	s.Grid = GridInfo{
		RequestedColumns:  requestedColumns,
		Columns:           r.Columns,
		Rows:              r.RowCount(),
		Width:             r.Width,
		Height:            r.Height,
		ColumnWidths:      r.ColumnWidths,
		RowHeights:        r.RowHeights,
		HorizontalSpacing: r.HorizontalSpacing,
		VerticalSpacing:   r.VerticalSpacing,
		Direction:         dir.String(),
	}
	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// JSON returns the indented JSON encoding of the snapshot.
func (s *Snapshot) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== Grid Snapshot ===\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", s.Timestamp.Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height))

	b.WriteString("\n--- Grid ---\n")
	b.WriteString(fmt.Sprintf("Columns: %d (requested %d)\n", s.Grid.Columns, s.Grid.RequestedColumns))
	b.WriteString(fmt.Sprintf("Rows: %d\n", s.Grid.Rows))
	b.WriteString(fmt.Sprintf("Size: %dx%d\n", s.Grid.Width, s.Grid.Height))
	b.WriteString(fmt.Sprintf("Column widths: %v\n", s.Grid.ColumnWidths))
	b.WriteString(fmt.Sprintf("Row heights: %v\n", s.Grid.RowHeights))
	b.WriteString(fmt.Sprintf("Spacing: %d horizontal, %d vertical\n", s.Grid.HorizontalSpacing, s.Grid.VerticalSpacing))
	b.WriteString(fmt.Sprintf("Direction: %s\n", s.Grid.Direction))
	if s.Viewport.Overflow {
		b.WriteString(fmt.Sprintf("OVERFLOW: grid exceeds viewport %s x %s\n",
			boundText(s.Viewport.MaxWidth), boundText(s.Viewport.MaxHeight)))
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	b.WriteString(fmt.Sprintf("%s%s", prefix, node.Type))
	if node.ID != "" {
		b.WriteString(fmt.Sprintf(" [%s]", node.ID))
	}
	b.WriteString(fmt.Sprintf(" @%d,%d (%dx%d)", node.Bounds.X, node.Bounds.Y, node.Bounds.Width, node.Bounds.Height))

	if node.Truncated != nil {
		b.WriteString(fmt.Sprintf(" TRUNCATED(%d->%d)",
			node.Truncated.OriginalLength,
			node.Truncated.DisplayLength))
	}

	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}

func bound(v int) int {
	if v == layout.Infinity {
		return -1
	}
	return v
}

func boundText(v int) string {
	if v < 0 {
		return "unbounded"
	}
	return fmt.Sprint(v)
}
