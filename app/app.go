package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"customgrid/config"
	"customgrid/inspect"
	"customgrid/log"
	"customgrid/ui"
	"customgrid/ui/layout"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// spacingStep is how far one key press moves a grid gap, in dp.
const spacingStep = 10

// statusTimeout is how long a status message stays in the title bar.
const statusTimeout = 3 * time.Second

// Run is the main entrypoint into the application. Changes made in the
// demo are written back to the config file on quit.
func Run(ctx context.Context, cfg *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, cfg, true),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

type home struct {
	ctx context.Context

	// cfg is the live grid configuration, edited by key presses.
	cfg *config.Config
	// persist saves cfg when the demo quits.
	persist bool

	screen layout.Screen
	keys   keyMap
	help   help.Model
	// showHelp replaces the grid with the full key reference.
	showHelp bool

	// status is a transient message shown in the title bar.
	status string

	// frame is the most recent render.
	frame Frame

	writeClipboard func(string) error
}

var _ inspect.Introspectable = (*home)(nil)

func newHome(ctx context.Context, cfg *config.Config, persist bool) *home {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	h := help.New()
	h.Styles.ShortKey = ui.TextStyles.Secondary
	h.Styles.ShortDesc = ui.TextStyles.Muted
	h.Styles.FullKey = ui.TextStyles.Secondary
	h.Styles.FullDesc = ui.TextStyles.Muted
	return &home{
		ctx:            ctx,
		cfg:            cfg,
		persist:        persist,
		keys:           defaultKeys,
		help:           h,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen = layout.ComputeScreen(msg.Width, msg.Height)
		m.help.Width = msg.Width
		log.LayoutTrace("resize %dx%d: viewport %dx%d, title=%v help=%v",
			msg.Width, msg.Height, m.screen.ViewportWidth, m.screen.ViewportHeight,
			!m.screen.HideTitle, !m.screen.HideHelp)
		return m, nil
	case hideStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log.InputTrace("key %q", msg.String())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.handleQuit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.MoreColumns):
		m.cfg.Columns++
	case key.Matches(msg, m.keys.FewerColumns):
		// Zero and negative counts are kept; the grid lays them out as one column.
		m.cfg.Columns--
	case key.Matches(msg, m.keys.WiderSpacing):
		m.cfg.HorizontalSpacing += spacingStep
	case key.Matches(msg, m.keys.NarrowerSpacing):
		m.cfg.HorizontalSpacing = max(m.cfg.HorizontalSpacing-spacingStep, 0)
	case key.Matches(msg, m.keys.TallerSpacing):
		m.cfg.VerticalSpacing += spacingStep
	case key.Matches(msg, m.keys.ShorterSpacing):
		m.cfg.VerticalSpacing = max(m.cfg.VerticalSpacing-spacingStep, 0)
	case key.Matches(msg, m.keys.ToggleDirection):
		if m.cfg.LayoutDirection() == layout.RightToLeft {
			m.cfg.Direction = config.DirectionLTR
		} else {
			m.cfg.Direction = config.DirectionRTL
		}
	case key.Matches(msg, m.keys.AddTile):
		m.cfg.Tiles = append(m.cfg.Tiles, nextTile(len(m.cfg.Tiles)))
	case key.Matches(msg, m.keys.RemoveTile):
		if n := len(m.cfg.Tiles); n > 0 {
			m.cfg.Tiles = m.cfg.Tiles[:n-1]
		}
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyGrid()
	}
	return m, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	if m.persist {
		if err := config.SaveConfig(m.cfg); err != nil {
			log.ErrorLog.Printf("failed to save config: %v", err)
		}
	}
	log.GetProfiler().LogStats()
	return m, tea.Quit
}

// copyGrid puts the uncolored grid on the system clipboard.
func (m *home) copyGrid() tea.Cmd {
	frame := RenderConfig(m.cfg, m.screen.Viewport())
	if err := m.writeClipboard(ansi.Strip(frame.View)); err != nil {
		log.ErrorLog.Printf("failed to copy grid: %v", err)
		return m.setStatus(fmt.Sprintf("copy failed: %v", err))
	}
	return m.setStatus(fmt.Sprintf("copied %dx%d grid", frame.Result.Width, frame.Result.Height))
}

// hideStatusMsg clears the status message.
type hideStatusMsg struct{}

// setStatus shows msg and returns a command that clears it after statusTimeout.
func (m *home) setStatus(msg string) tea.Cmd {
	m.status = msg
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(statusTimeout):
		}
		return hideStatusMsg{}
	}
}

// nextTile returns the tile appended at index n, reusing the default sizes.
func nextTile(n int) config.Tile {
	defaults := config.DefaultTiles()
	t := defaults[n%len(defaults)]
	t.Label = fmt.Sprintf("cat %d", n+1)
	return t
}

func (m *home) View() string {
	start := time.Now()
	defer func() {
		log.GetProfiler().RecordFrame(time.Since(start))
	}()

	s := m.screen
	if s.ShowMinWarning {
		return lipgloss.Place(s.TerminalWidth, s.TerminalHeight, lipgloss.Center, lipgloss.Center,
			ui.TextStyles.Warning.Render(fmt.Sprintf("terminal too small: %dx%d (need %dx%d)",
				s.TerminalWidth, s.TerminalHeight, layout.MinWidth, layout.MinHeight)))
	}

	var sections []string
	if !s.HideTitle {
		sections = append(sections, m.titleView())
	}
	sections = append(sections, m.gridView())
	if !s.HideHelp {
		sections = append(sections, m.footerView())
	}

	m.writeSnapshot()
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *home) titleView() string {
	sep := strings.Repeat(" ", ui.SpaceSM)
	info := []string{
		fmt.Sprintf("columns %d (%d)", m.cfg.Columns, layout.EffectiveColumns(m.cfg.Columns)),
		fmt.Sprintf("gaps %gx%g dp", m.cfg.HorizontalSpacing, m.cfg.VerticalSpacing),
		m.cfg.LayoutDirection().String(),
		fmt.Sprintf("tiles %d", len(m.cfg.Tiles)),
	}
	line := ui.TextStyles.Title.Render("customgrid") + sep +
		ui.TextStyles.Secondary.Render(strings.Join(info, sep))
	if m.status != "" {
		line += sep + ui.TextStyles.Primary.Render(m.status)
	}
	return lipgloss.NewStyle().
		MaxWidth(m.screen.TerminalWidth).
		Height(layout.TitleHeight).
		Render(line)
}

func (m *home) gridView() string {
	s := m.screen
	m.frame = RenderConfig(m.cfg, s.Viewport())
	if s.ViewportHeight == 0 {
		return ""
	}

	body := ui.Clip(m.frame.View, s.ViewportWidth, s.ViewportHeight)
	if m.showHelp {
		body = lipgloss.Place(s.ViewportWidth, s.ViewportHeight, lipgloss.Center, lipgloss.Center,
			m.help.FullHelpView(m.keys.FullHelp()))
		body = ui.Clip(body, s.ViewportWidth, s.ViewportHeight)
	}
	return lipgloss.NewStyle().Height(s.ViewportHeight).Render(body)
}

func (m *home) footerView() string {
	return lipgloss.NewStyle().
		PaddingTop(layout.HelpHeight - 1).
		Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// writeSnapshot records the current frame when inspection is enabled.
func (m *home) writeSnapshot() {
	if !inspect.IsEnabled() || m.frame.Result == nil {
		return
	}
	snap := m.frame.Snapshot(m.cfg, m.screen.Viewport()).
		WithTerminal(m.screen.TerminalWidth, m.screen.TerminalHeight).
		WithComponents(m.InspectNode())
	if err := inspect.WriteSnapshot(snap); err != nil {
		log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
	}
}

// InspectNode implements inspect.Introspectable.
func (m *home) InspectNode() *inspect.Node {
	s := m.screen
	root := inspect.NewNode("Screen").
		WithBounds(0, 0, s.TerminalWidth, s.TerminalHeight).
		WithState("help", m.showHelp).
		WithState("too_small", s.ShowMinWarning)

	if !s.HideTitle {
		root.AddChild(inspect.NewNode("Title").
			WithBounds(0, 0, s.TerminalWidth, s.TitleHeight).
			WithStyles(inspect.ExtractStyleInfo(ui.TextStyles.Title, "title")))
	}

	if m.frame.Result != nil {
		grid := inspect.GridNode(m.frame.Result, labels(m.cfg.Tiles))
		grid.Bounds.Y = s.TitleHeight
		grid.Visible = !m.showHelp && !s.ShowMinWarning
		for i, cell := range grid.Children {
			cell.WithStyles(inspect.ExtractStyleInfo(ui.TileStyle(i), "tile"))
		}
		root.AddChild(grid)
	}

	if !s.HideHelp {
		root.AddChild(inspect.NewNode("Help").
			WithBounds(0, s.TerminalHeight-s.HelpHeight, s.TerminalWidth, s.HelpHeight))
	}
	return root
}
