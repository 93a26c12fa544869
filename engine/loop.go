package engine

import (
	"log"
	"sync"
	"sync/atomic"
)

// RenderLoop drives frame production for a scene. The loop has exactly two
// states: Running (the initial state) and Stopped. It does not own a timer;
// the host calls Tick with the elapsed delta time, which lets the window
// message pump or a dedicated goroutine drive frames at whatever cadence
// suits the platform.
//
// Stop is terminal: a stopped loop never runs again, and further Tick or
// Stop calls are no-ops.
type RenderLoop interface {
	// Running reports whether the loop is still producing frames.
	//
	// Returns:
	//   - bool: true while the loop is in the Running state
	Running() bool

	// Tick produces one frame if the loop is running. Ticks arriving after
	// Stop are silently ignored.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the previous tick in seconds
	Tick(deltaTime float32)

	// Stop transitions the loop to the Stopped state and fires the stop
	// callback once. Safe to call repeatedly and from any goroutine.
	Stop()
}

// renderLoop is the implementation of the RenderLoop interface.
type renderLoop struct {
	stopped  atomic.Bool
	stopOnce sync.Once

	// frame produces one frame; the loop calls it once per running Tick.
	frame func(deltaTime float32) error

	// onError receives frame errors; defaults to logging.
	onError func(err error)

	// onStop fires exactly once when the loop stops.
	onStop func()
}

var _ RenderLoop = &renderLoop{}

// RenderLoopOption is a functional option applied to a render loop during construction.
type RenderLoopOption func(*renderLoop)

// WithStopCallback registers a function fired exactly once when the loop stops.
//
// Parameters:
//   - callback: the function to call on stop
//
// Returns:
//   - RenderLoopOption: option function to apply
func WithStopCallback(callback func()) RenderLoopOption {
	return func(l *renderLoop) {
		l.onStop = callback
	}
}

// WithErrorHandler replaces the default frame error handler (log output).
//
// Parameters:
//   - handler: the function receiving frame errors
//
// Returns:
//   - RenderLoopOption: option function to apply
func WithErrorHandler(handler func(err error)) RenderLoopOption {
	return func(l *renderLoop) {
		l.onError = handler
	}
}

// NewRenderLoop creates a RenderLoop in the Running state around the given
// frame function.
//
// Parameters:
//   - frame: the function producing one frame per tick
//   - options: functional options for stop and error handling
//
// Returns:
//   - RenderLoop: the running loop
func NewRenderLoop(frame func(deltaTime float32) error, options ...RenderLoopOption) RenderLoop {
	l := &renderLoop{
		frame: frame,
		onError: func(err error) {
			log.Printf("frame error: %v", err)
		},
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *renderLoop) Running() bool {
	return !l.stopped.Load()
}

func (l *renderLoop) Tick(deltaTime float32) {
	if l.stopped.Load() || l.frame == nil {
		return
	}
	if err := l.frame(deltaTime); err != nil && l.onError != nil {
		l.onError(err)
	}
}

func (l *renderLoop) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		if l.onStop != nil {
			l.onStop()
		}
	})
}
