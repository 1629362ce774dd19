// Package harness drives Bubble Tea models in tests: it feeds them window
// sizes and key presses and exposes the rendered view.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing
type Harness struct {
	t      testing.TB
	model  tea.Model
	width  int
	height int
}

// New creates a Harness and sends the model an initial window size.
func New(t testing.TB, model tea.Model, width, height int) *Harness {
	t.Helper()
	h := &Harness{
		t:     t,
		model: model,
	}
	h.Resize(width, height)
	return h
}

// SendMsg sends a tea.Msg to the model and returns the command it produced.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a key press. Named keys such as "ctrl+c" or "enter" map to
// their key types; anything else is sent as runes.
func (h *Harness) SendKey(key string) tea.Cmd {
	if keyType, ok := namedKeys[key]; ok {
		return h.SendMsg(tea.KeyMsg{Type: keyType})
	}
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendKeys sends each key in order and returns the last command.
func (h *Harness) SendKeys(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = h.SendKey(k)
	}
	return cmd
}

var namedKeys = map[string]tea.KeyType{
	"ctrl+c": tea.KeyCtrlC,
	"enter":  tea.KeyEnter,
	"esc":    tea.KeyEscape,
	"tab":    tea.KeyTab,
}

// Resize simulates a terminal resize
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// Exec runs cmd synchronously and feeds its message back to the model.
// It returns the message, or nil for a nil command.
func (h *Harness) Exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg != nil {
		h.SendMsg(msg)
	}
	return msg
}

// View returns the current rendered view
func (h *Harness) View() string {
	return h.model.View()
}

// Model returns the underlying model (for type assertions)
func (h *Harness) Model() tea.Model {
	return h.model
}

// Width returns the current width
func (h *Harness) Width() int {
	return h.width
}

// Height returns the current height
func (h *Harness) Height() int {
	return h.height
}

// TerminalSize represents a terminal size for testing
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// CommonSizes covers each screen arrangement: the smallest usable terminal,
// one without the help footer and ordinary, wide and tall terminals.
var CommonSizes = []TerminalSize{
	{Name: "minimum", Width: 40, Height: 12},
	{Name: "no_help", Width: 60, Height: 14},
	{Name: "standard", Width: 80, Height: 24},
	{Name: "wide", Width: 200, Height: 24},
	{Name: "tall", Width: 80, Height: 60},
}

// RunWithSizes runs a test function for each terminal size
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs a test function for all common terminal sizes
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}
