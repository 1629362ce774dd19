// Package snapshot provides golden file testing for rendered grids.
// It captures rendered output and compares it against known-good files.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// GoldenDir is the default directory for golden files
const GoldenDir = "testdata/golden"

// UpdateEnvVar rewrites golden files instead of comparing when set to "1".
const UpdateEnvVar = "UPDATE_GOLDEN"

var (
	csiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// Snap provides snapshot testing functionality
type Snap struct {
	t         testing.TB
	goldenDir string
	update    bool
}

// New creates a new Snap instance for the given test
func New(t testing.TB) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv(UpdateEnvVar) == "1",
	}
}

// WithDir sets a custom golden file directory
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// Assert compares actual output against a golden file.
// If UPDATE_GOLDEN=1, updates the golden file instead.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()

	goldenPath := filepath.Join(s.goldenDir, name+".golden")
	normalized := normalizeOutput(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(normalized), 0644); err != nil {
			s.t.Fatalf("failed to write golden file: %v", err)
		}
		s.t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.t.Fatalf("Golden file not found: %s\nRun with %s=1 to create it.\nActual output:\n%s", goldenPath, UpdateEnvVar, normalized)
		}
		s.t.Fatalf("failed to read golden file: %v", err)
	}

	if normalizeOutput(string(expected)) != normalized {
		s.t.Errorf("Snapshot mismatch for %s\n\nExpected:\n%s\n\nActual:\n%s\n\nRun with %s=1 to update.",
			name, string(expected), normalized, UpdateEnvVar)
	}
}

// AssertContains checks that actual output contains the expected substring
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// normalizeOutput strips ANSI codes, line endings and trailing whitespace,
// and drops trailing blank lines.
func normalizeOutput(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	for len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = csiRegex.ReplaceAllString(s, "")
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the line count of the rendered output.
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the widest line of the rendered output in terminal cells.
func Width(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		maxWidth = max(maxWidth, runewidth.StringWidth(line))
	}
	return maxWidth
}

// Cell returns the rune drawn at column x of row y, or 0 when out of range.
func Cell(s string, x, y int) rune {
	lines := strings.Split(StripANSI(s), "\n")
	if y < 0 || y >= len(lines) {
		return 0
	}
	col := 0
	for _, r := range lines[y] {
		if col == x {
			return r
		}
		col += runewidth.RuneWidth(r)
		if col > x {
			return 0
		}
	}
	return 0
}
