// Package ui provides the grid's renderable children and the cell surface
// they are drawn on.
package ui

import "customgrid/ui/layout"

// Drawable is a placeable that knows how to render itself once placed.
type Drawable interface {
	layout.Placeable
	// Position returns the committed offset and whether Place was called.
	Position() (x, y int, placed bool)
	View() string
}

// Block is the measured form of a child: a pre-rendered string of a fixed
// size waiting for its position.
type Block struct {
	view   string
	width  int
	height int

	x, y   int
	placed bool
}

// NewBlock creates a block of the given size showing view.
func NewBlock(view string, width, height int) *Block {
	return &Block{view: view, width: max(width, 0), height: max(height, 0)}
}

func (b *Block) Width() int  { return b.width }
func (b *Block) Height() int { return b.height }

// Place records the block's offset within its parent.
func (b *Block) Place(x, y int) {
	b.x, b.y = x, y
	b.placed = true
}

// Position returns the committed offset.
func (b *Block) Position() (int, int, bool) {
	return b.x, b.y, b.placed
}

// View returns the rendered block.
func (b *Block) View() string {
	return b.view
}
