package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyQ     = 81 // Q key (ASCII)
	KeyE     = 69 // E key (ASCII)
	KeyB     = 66 // B key (ASCII)
	KeyC     = 67 // C key (ASCII)
	KeyG     = 71 // G key (ASCII)
	KeyP     = 80 // P key (ASCII)
	KeyR     = 82 // R key (ASCII)
	KeyT     = 84 // T key (ASCII)
	KeyV     = 86 // V key (ASCII)
	KeyX     = 88 // X key (ASCII)
	KeyY     = 89 // Y key (ASCII)
	KeyZ     = 90 // Z key (ASCII)
	KeyMinus = 45 // - key (ASCII)
	KeyEqual = 61 // = key (ASCII)
	KeySpace = 32 // Spacebar (ASCII)

	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
)

// Additional non-printable keys
const (
	KeyEsc        = 256 // Escape key (GLFW)
	KeyTab        = 258 // Tab key (GLFW)
	KeyBackspace  = 259 // Backspace key (GLFW)
	KeyDelete     = 261 // Delete key (GLFW)
	KeyRight      = 262 // Right arrow (GLFW)
	KeyLeft       = 263 // Left arrow (GLFW)
	KeyDown       = 264 // Down arrow (GLFW)
	KeyUp         = 265 // Up arrow (GLFW)
	KeyKPSubtract = 333 // Keypad - (GLFW)
	KeyKPAdd      = 334 // Keypad + (GLFW)
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyLeftCtrl   = 341 // Left Control (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
	KeyRightCtrl  = 345 // Right Control (GLFW)
)

// Mouse buttons share the key code space so input state can track them alongside keys.
// They sit above GLFW's highest key code (348).
const (
	MouseButtonLeft   = 400
	MouseButtonRight  = 401
	MouseButtonMiddle = 402
)
