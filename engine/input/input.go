package input

import "sync"

type input struct {
	mu *sync.Mutex

	down    map[int]bool
	pressed map[int]bool

	mouseX, mouseY float64
}

// Input tracks keyboard and mouse state between frames.
// KeyDown is level-triggered and stays true while a key is held.
// KeyPress is edge-triggered: it reports each physical press once, and reading it consumes it.
// Mouse buttons are tracked under the common.MouseButton* codes.
type Input interface {
	// KeyDown reports whether the key is currently held.
	//
	// Parameters:
	//   - code: the key code
	//
	// Returns:
	//   - bool: true while held
	KeyDown(code int) bool

	// KeyPress reports and consumes a press of the key since the last time it was read or
	// the last EndFrame.
	//
	// Parameters:
	//   - code: the key code
	//
	// Returns:
	//   - bool: true once per press
	KeyPress(code int) bool

	// MouseX returns the cursor x position in window pixels.
	MouseX() float64

	// MouseY returns the cursor y position in window pixels.
	MouseY() float64

	// OnKeyDown records a key or button going down. Auto-repeat events do not register a new press.
	OnKeyDown(code int)

	// OnKeyUp records a key or button going up.
	OnKeyUp(code int)

	// OnMouseMove records the cursor position.
	OnMouseMove(x, y float64)

	// EndFrame drops presses nobody read this frame.
	EndFrame()

	// Reset clears all state, e.g. when the window loses focus.
	Reset()
}

var _ Input = &input{}

// NewInput creates an Input with no keys held.
//
// Returns:
//   - Input: the newly created input tracker
func NewInput() Input {
	return &input{
		mu:      &sync.Mutex{},
		down:    make(map[int]bool),
		pressed: make(map[int]bool),
	}
}

func (in *input) KeyDown(code int) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.down[code]
}

func (in *input) KeyPress(code int) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.pressed[code] {
		return false
	}
	delete(in.pressed, code)
	return true
}

func (in *input) MouseX() float64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.mouseX
}

func (in *input) MouseY() float64 {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.mouseY
}

func (in *input) OnKeyDown(code int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.down[code] {
		in.pressed[code] = true
	}
	in.down[code] = true
}

func (in *input) OnKeyUp(code int) {
	in.mu.Lock()
	defer in.mu.Unlock()
	delete(in.down, code)
}

func (in *input) OnMouseMove(x, y float64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.mouseX, in.mouseY = x, y
}

func (in *input) EndFrame() {
	in.mu.Lock()
	defer in.mu.Unlock()
	clear(in.pressed)
}

func (in *input) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	clear(in.pressed)
	clear(in.down)
}
