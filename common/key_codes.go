package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32 // Space bar (ASCII)

	KeyA = 65 // A key (ASCII)
	KeyB = 66 // B key (ASCII)
	KeyG = 71 // G key (ASCII)
	KeyM = 77 // M key (ASCII)
	KeyR = 82 // R key (ASCII)
	KeyX = 88 // X key (ASCII)
	KeyY = 89 // Y key (ASCII)
	KeyZ = 90 // Z key (ASCII)

	KeyEsc = 256 // Escape key (GLFW)

	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)

	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)
