package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

const resetSeq = "\x1b[0m"

// Canvas is a fixed-size surface of terminal cells that styled blocks are
// composited onto.
type Canvas struct {
	width  int
	height int
	lines  []string
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return &Canvas{width: width, height: height, lines: lines}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Draw composites block with its top-left corner at (x, y). Anything outside
// the canvas is clipped.
func (c *Canvas) Draw(x, y int, block string) {
	if block == "" {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		c.lines[row] = c.overlay(c.lines[row], line, x)
	}
}

// overlay writes fg over bg starting at column x.
func (c *Canvas) overlay(bg, fg string, x int) string {
	if x < 0 {
		fg = cutLeft(fg, -x)
		x = 0
	}
	if x >= c.width {
		return bg
	}

	fgWidth := ansi.PrintableRuneWidth(fg)
	if x+fgWidth > c.width {
		fg = truncate.String(fg, uint(c.width-x))
		fgWidth = ansi.PrintableRuneWidth(fg)
	}
	if fgWidth == 0 {
		return bg
	}

	var b strings.Builder
	left := truncate.String(bg, uint(x))
	b.WriteString(left)
	if strings.ContainsRune(left, ansi.Marker) {
		b.WriteString(resetSeq)
	}
	if pad := x - ansi.PrintableRuneWidth(left); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(fg)
	if strings.ContainsRune(fg, ansi.Marker) {
		b.WriteString(resetSeq)
	}
	b.WriteString(cutLeft(bg, x+fgWidth))
	return b.String()
}

// String returns the canvas contents, one line per row.
func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// cutLeft drops the first n cells of s, keeping the escape sequences that
// are still in effect at the cut. A wide rune split by the cut becomes spaces.
func cutLeft(s string, n int) string {
	if n <= 0 {
		return s
	}

	var (
		out     strings.Builder
		active  strings.Builder // sequences seen before the cut
		seq     strings.Builder
		inSeq   bool
		started bool
		pos     int
	)
	start := func() {
		if !started {
			out.WriteString(active.String())
			started = true
		}
	}

	for _, r := range s {
		if r == ansi.Marker || inSeq {
			inSeq = true
			seq.WriteRune(r)
			if ansi.IsTerminator(r) {
				inSeq = false
				switch {
				case started:
					out.WriteString(seq.String())
				case seq.String() == resetSeq || seq.String() == "\x1b[m":
					active.Reset()
				default:
					active.WriteString(seq.String())
				}
				seq.Reset()
			}
			continue
		}

		w := runewidth.RuneWidth(r)
		switch {
		case pos >= n:
			start()
			out.WriteRune(r)
		case pos+w > n:
			start()
			out.WriteString(strings.Repeat(" ", pos+w-n))
		}
		pos += w
	}
	return out.String()
}

// Clip keeps at most height lines of s, each truncated to width cells.
func Clip(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if ansi.PrintableRuneWidth(line) > width {
			lines[i] = truncate.String(line, uint(width))
			if strings.ContainsRune(lines[i], ansi.Marker) {
				lines[i] += resetSeq
			}
		}
	}
	return strings.Join(lines, "\n")
}
