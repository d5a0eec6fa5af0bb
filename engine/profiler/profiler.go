package profiler

import (
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"
)

// Counter is a named value sampled each time the profiler reports, e.g. the scene's vertex pool size.
type Counter struct {
	Name  string
	Value func() int
}

// Report is the data behind one logged profiler line.
type Report struct {
	FPS      float64
	HeapMB   float64
	SysMB    float64
	GCCount  uint32
	Counters map[string]int
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	counters       []Counter
	now            func() time.Time
	last           Report
}

// ProfilerOption is a functional option for configuring a Profiler via NewProfiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged. Non-positive values keep the default of one second.
//
// Parameters:
//   - d: the reporting interval
//
// Returns:
//   - ProfilerOption: a function that applies the interval to a profiler
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithCounter appends a named counter to every report.
//
// Parameters:
//   - name: the label printed before the value
//   - value: sampled when a report is produced
//
// Returns:
//   - ProfilerOption: a function that adds the counter to a profiler
func WithCounter(name string, value func() int) ProfilerOption {
	return func(p *Profiler) {
		p.counters = append(p.counters, Counter{Name: name, Value: value})
	}
}

// WithClock replaces time.Now.
//
// Parameters:
//   - now: the clock to read
//
// Returns:
//   - ProfilerOption: a function that applies the clock to a profiler
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame. When the interval has elapsed it logs FPS, heap,
// GC count, process memory and every counter.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	report := Report{
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		HeapMB:   float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:    float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:  p.memStats.NumGC,
		Counters: make(map[string]int, len(p.counters)),
	}

	var line strings.Builder
	fmt.Fprintf(&line, "FPS: %.2f | Heap: %.2f MB | GC: %d | Sys: %.2f MB", report.FPS, report.HeapMB, report.GCCount, report.SysMB)
	for _, c := range p.counters {
		v := c.Value()
		report.Counters[c.Name] = v
		fmt.Fprintf(&line, " | %s: %d", c.Name, v)
	}
	log.Printf("[Profiler] %s", line.String())

	p.last = report
	p.frameCount = 0
	p.lastTime = currentTime
	return true
}

// Last returns the most recent report, or a zero Report before the first one.
func (p *Profiler) Last() Report {
	return p.last
}
