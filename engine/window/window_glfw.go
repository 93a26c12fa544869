package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow is the GLFW-backed platform window. The viewer's input
// model is keyboard parameter editing plus left-mouse orbit and scroll
// zoom, so the callback wiring below is split along those lines.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow initializes GLFW, creates the window without an
// OpenGL context (WebGPU owns the surface), applies the configured size
// limits, and wires the input callbacks. Must run on the main OS thread.
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// No GL context; the renderer attaches to the window via a wgpu surface.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	gw.wireKeyboard()
	gw.wirePointer()
	gw.wireResize()

	// The framebuffer can come back larger than the requested size on
	// high-DPI displays; the surface must be configured in pixels.
	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight

	return nil
}

// wireKeyboard routes key events to the registered callbacks. Escape is
// handled here as the quit key; everything else (parameter selection,
// held-arrow adjustment) is the host's business. Repeats count as
// presses so held keys keep their down state across focus-driven
// re-sends.
func (gw *glfwWindow) wireKeyboard() {
	w := gw.parent
	gw.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			gw.window.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			if w.onKeyDown != nil {
				w.onKeyDown(uint32(key))
			}
		case glfw.Release:
			if w.onKeyUp != nil {
				w.onKeyUp(uint32(key))
			}
		}
	})
}

// wirePointer routes mouse input. Left-button press/release carry the
// cursor position at the time of the event so a drag-orbit handler can
// seed its deltas; cursor motion and the scroll wheel forward directly.
func (gw *glfwWindow) wirePointer() {
	w := gw.parent

	gw.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		x, y := gw.window.GetCursorPos()
		switch action {
		case glfw.Press:
			if w.onMouseDown != nil {
				w.onMouseDown(int32(x), int32(y))
			}
		case glfw.Release:
			if w.onMouseUp != nil {
				w.onMouseUp(int32(x), int32(y))
			}
		}
	})

	gw.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if w.onMouseMove != nil {
			w.onMouseMove(int32(x), int32(y))
		}
	})

	gw.window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.onScroll != nil {
			w.onScroll(float32(yoff))
		}
	})
}

// wireResize reports framebuffer size changes. The framebuffer callback
// is used instead of the window-size one because the renderer and the
// camera aspect both need pixel dimensions.
func (gw *glfwWindow) wireResize() {
	w := gw.parent
	gw.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})
}

// platformGetSurfaceDescriptor builds the platform-appropriate
// wgpu.SurfaceDescriptor through the wgpuglfw bridge (Windows HWND,
// X11, Wayland, macOS Metal layer).
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	gw := w.internalWindow.(*glfwWindow)
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformIsRunningCheck reports whether the window is still live: it
// must exist, not be flagged closed by Escape or Close, and GLFW must
// not report ShouldClose.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true while the window is still running
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow flags the window closed, destroys it, and
// terminates GLFW.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: an error if the window was never initialized
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	return nil
}

// platformProcessMessages polls pending GLFW events without blocking and
// reports whether the window should keep running.
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
