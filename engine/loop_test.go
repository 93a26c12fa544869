package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderLoopTicksWhileRunning(t *testing.T) {
	var frames int
	l := NewRenderLoop(func(deltaTime float32) error {
		frames++
		return nil
	})

	assert.True(t, l.Running())
	l.Tick(0.016)
	l.Tick(0.016)
	assert.Equal(t, 2, frames)
}

func TestRenderLoopStopIsTerminal(t *testing.T) {
	var frames int
	l := NewRenderLoop(func(deltaTime float32) error {
		frames++
		return nil
	})

	l.Tick(0.016)
	l.Stop()
	assert.False(t, l.Running())

	// Ticks after Stop never produce frames.
	l.Tick(0.016)
	l.Tick(0.016)
	assert.Equal(t, 1, frames)
}

func TestRenderLoopStopFiresCallbackOnce(t *testing.T) {
	var stops int
	l := NewRenderLoop(func(deltaTime float32) error { return nil },
		WithStopCallback(func() { stops++ }))

	l.Stop()
	l.Stop()
	l.Stop()
	assert.Equal(t, 1, stops)
}

func TestRenderLoopStopIsSafeConcurrently(t *testing.T) {
	var stops int
	var mu sync.Mutex
	l := NewRenderLoop(func(deltaTime float32) error { return nil },
		WithStopCallback(func() {
			mu.Lock()
			stops++
			mu.Unlock()
		}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Stop()
		}()
	}
	wg.Wait()

	assert.False(t, l.Running())
	assert.Equal(t, 1, stops)
}

func TestRenderLoopRoutesFrameErrors(t *testing.T) {
	var seen []error
	frameErr := errors.New("surface lost")
	l := NewRenderLoop(func(deltaTime float32) error { return frameErr },
		WithErrorHandler(func(err error) { seen = append(seen, err) }))

	l.Tick(0.016)
	assert.Equal(t, []error{frameErr}, seen)

	// A frame error does not stop the loop.
	assert.True(t, l.Running())
}
