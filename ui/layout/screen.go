package layout

// Screen holds the computed regions of the demo screen.
type Screen struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Region heights (computed)
	TitleHeight    int
	ViewportWidth  int
	ViewportHeight int
	HelpHeight     int

	// Layout flags
	HideTitle      bool // Terminal too short for the title bar
	HideHelp       bool // Terminal too short for the help footer
	ShowMinWarning bool // Terminal is below minimum size
}

// ComputeScreen splits the terminal into title, grid viewport and help footer.
func ComputeScreen(width, height int) Screen {
	width, height = max(width, 0), max(height, 0)
	s := Screen{
		TerminalWidth:  width,
		TerminalHeight: height,
		ShowMinWarning: width < MinWidth || height < MinHeight,
		HideTitle:      height < TitleHideHeight,
		HideHelp:       height < HelpHideHeight,
	}

	if !s.HideTitle {
		s.TitleHeight = TitleHeight
	}
	if !s.HideHelp {
		s.HelpHeight = HelpHeight
	}

	s.ViewportWidth = max(width-ViewportMargin, 0)
	s.ViewportHeight = max(height-s.TitleHeight-s.HelpHeight, 0)
	return s
}

// Viewport returns the incoming constraints for the grid container.
func (s Screen) Viewport() Constraints {
	return Loose(s.ViewportWidth, s.ViewportHeight)
}
