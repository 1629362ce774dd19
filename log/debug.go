// Package log provides logging utilities including debug mode with layout
// tracing and pass profiling.
// Enable debug mode by setting CUSTOMGRID_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugEnvVar enables debug mode when set to "1".
const DebugEnvVar = "CUSTOMGRID_DEBUG"

// Debug mode configuration
var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "customgrid-debug.log")

// InitDebug initializes debug logging if CUSTOMGRID_DEBUG=1 is set.
// Initialize calls it.
func InitDebug() {
	if os.Getenv(DebugEnvVar) != "1" {
		// No-op logger so callers never see a nil DebugLog
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f

	DebugLog.Println("Debug mode enabled")
	DebugLog.Printf("Debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// PassProfiler times layout and draw passes by phase.
type PassProfiler struct {
	mu         sync.RWMutex
	phases     map[string]*PhaseMetrics
	frameCount int64
	frameTime  time.Duration
	recent     []time.Duration // Rolling window of frame times
}

// PhaseMetrics tracks timings for one phase (measure, place, draw).
type PhaseMetrics struct {
	Name    string
	Count   int64
	Total   time.Duration
	Slowest time.Duration
}

const recentFrames = 100

var profiler = &PassProfiler{
	phases: make(map[string]*PhaseMetrics),
	recent: make([]time.Duration, 0, recentFrames),
}

// GetProfiler returns the global pass profiler.
func GetProfiler() *PassProfiler {
	return profiler
}

// StartPhase begins timing a phase. Call the returned function when the
// phase completes.
func (p *PassProfiler) StartPhase(phase string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.recordPhase(phase, time.Since(start))
	}
}

func (p *PassProfiler) recordPhase(phase string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.phases[phase]
	if !ok {
		m = &PhaseMetrics{Name: phase}
		p.phases[phase] = m
	}
	m.Count++
	m.Total += elapsed
	if elapsed > m.Slowest {
		m.Slowest = elapsed
	}
}

// RecordFrame records one complete frame.
func (p *PassProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.frameTime += elapsed

	if len(p.recent) >= recentFrames {
		p.recent = p.recent[1:]
	}
	p.recent = append(p.recent, elapsed)

	// 16ms is one frame at 60fps
	if elapsed > 16*time.Millisecond && DebugLog != nil {
		DebugLog.Printf("SLOW FRAME: %v", elapsed)
	}
}

// Stats returns a summary of the recorded timings.
func (p *PassProfiler) Stats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Pass Profile ===\n")
	sb.WriteString(fmt.Sprintf("Frames: %d\n", p.frameCount))
	if p.frameCount > 0 {
		sb.WriteString(fmt.Sprintf("Avg frame: %v\n", p.frameTime/time.Duration(p.frameCount)))
	}
	if len(p.recent) > 0 {
		var sum, slowest time.Duration
		for _, d := range p.recent {
			sum += d
			slowest = max(slowest, d)
		}
		sb.WriteString(fmt.Sprintf("Recent %d frames: avg=%v max=%v\n",
			len(p.recent), sum/time.Duration(len(p.recent)), slowest))
	}

	sb.WriteString("\n--- Phases ---\n")
	sorted := make([]*PhaseMetrics, 0, len(p.phases))
	for _, m := range p.phases {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Total > sorted[j].Total
	})
	for _, m := range sorted {
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v avg=%v max=%v\n",
			m.Name, m.Count, m.Total, m.Total/time.Duration(m.Count), m.Slowest))
	}

	return sb.String()
}

// LogStats writes the current statistics to the debug log.
func (p *PassProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.Stats())
	}
}

// Reset clears all profiling data.
func (p *PassProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.phases = make(map[string]*PhaseMetrics)
	p.frameCount = 0
	p.frameTime = 0
	p.recent = make([]time.Duration, 0, recentFrames)
}

// LayoutTrace logs layout computation events.
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// RenderTrace logs render events.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[RENDER:%s] %s", component, fmt.Sprintf(format, v...))
	}
}

// InputTrace logs input handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// PerformanceWarning logs performance-related warnings.
func PerformanceWarning(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[PERF WARNING] "+format, v...)
	}
}
