package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-scene/common"
)

func TestKeyPressIsEdgeTriggered(t *testing.T) {
	in := NewInput()
	assert.False(t, in.KeyPress(common.KeyTab))

	in.OnKeyDown(common.KeyTab)
	assert.True(t, in.KeyPress(common.KeyTab))
	assert.False(t, in.KeyPress(common.KeyTab), "a press is consumed when read")

	// auto-repeat while held is not a new press
	in.OnKeyDown(common.KeyTab)
	assert.False(t, in.KeyPress(common.KeyTab))

	in.OnKeyUp(common.KeyTab)
	in.OnKeyDown(common.KeyTab)
	assert.True(t, in.KeyPress(common.KeyTab))
}

func TestKeyDownIsLevelTriggered(t *testing.T) {
	in := NewInput()
	in.OnKeyDown(common.KeyT)
	for i := 0; i < 3; i++ {
		assert.True(t, in.KeyDown(common.KeyT))
		in.EndFrame()
	}
	in.OnKeyUp(common.KeyT)
	assert.False(t, in.KeyDown(common.KeyT))
}

func TestEndFrameDropsUnreadPresses(t *testing.T) {
	in := NewInput()
	in.OnKeyDown(common.KeyB)
	in.OnKeyUp(common.KeyB)
	in.EndFrame()
	assert.False(t, in.KeyPress(common.KeyB))
}

func TestMouse(t *testing.T) {
	in := NewInput()
	in.OnMouseMove(12.5, 40)
	assert.Equal(t, 12.5, in.MouseX())
	assert.Equal(t, 40.0, in.MouseY())

	in.OnKeyDown(common.MouseButtonLeft)
	assert.True(t, in.KeyDown(common.MouseButtonLeft))
	assert.False(t, in.KeyDown(common.MouseButtonRight))
}

func TestReset(t *testing.T) {
	in := NewInput()
	in.OnKeyDown(common.KeyLeftCtrl)
	in.Reset()
	assert.False(t, in.KeyDown(common.KeyLeftCtrl))
	assert.False(t, in.KeyPress(common.KeyLeftCtrl))
}
