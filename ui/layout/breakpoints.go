package layout

// Screen breakpoints
const (
	// MinWidth is the narrowest terminal the demo lays out normally.
	MinWidth = 40

	// MinHeight is the shortest terminal the demo lays out normally.
	MinHeight = 12

	// HelpHideHeight hides the help footer below this height.
	HelpHideHeight = 16

	// TitleHideHeight hides the title bar below this height.
	TitleHideHeight = 10
)

// Fixed screen regions
const (
	// TitleHeight is the title bar height (1 line + 1 blank line).
	TitleHeight = 2

	// HelpHeight is the help footer height (1 blank line + 1 line).
	HelpHeight = 2

	// ViewportMargin is the left margin of the grid viewport.
	ViewportMargin = 1
)
