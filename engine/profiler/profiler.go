package profiler

import (
	"log"
	"runtime"
	"time"
)

// FrameStats is a snapshot of the statistics the profiler logs each interval.
type FrameStats struct {
	// FPS is the average frames per second over the last interval.
	FPS float64
	// HeapMB is the live heap size in megabytes.
	HeapMB float64
	// AllocRateMB is the heap allocation rate in megabytes per second.
	AllocRateMB float64
	// GCCount is the cumulative number of completed GC cycles.
	GCCount uint32
	// SysMB is the total memory obtained from the OS in megabytes.
	SysMB float64
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64

	// onReport receives each interval's stats; defaults to log output.
	onReport func(stats FrameStats)
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often the profiler reports stats.
//
// Parameters:
//   - interval: the reporting interval (default 1 second)
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithReportFunc replaces the default log output with a custom stats sink.
//
// Parameters:
//   - report: the function receiving each interval's stats
//
// Returns:
//   - ProfilerOption: option function to apply
func WithReportFunc(report func(stats FrameStats)) ProfilerOption {
	return func(p *Profiler) {
		p.onReport = report
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second
// and reports go to the standard logger unless overridden.
//
// Parameters:
//   - options: functional options for interval and report sink
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		onReport: func(stats FrameStats) {
			log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d | Sys: %.2f MB",
				stats.FPS, stats.HeapMB, stats.AllocRateMB, stats.GCCount, stats.SysMB)
		},
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick should be called once per frame to track frame timing.
// Reports performance statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)

	// TotalAlloc only grows, so the delta over the interval gives the churn rate.
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	stats := FrameStats{
		FPS:         float64(p.frameCount) / elapsed.Seconds(),
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:     p.memStats.NumGC,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
	}
	if p.onReport != nil {
		p.onReport(stats)
	}

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
