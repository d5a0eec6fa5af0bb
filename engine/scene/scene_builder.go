package scene

import (
	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
)

// SceneBuilderOption is a functional option for configuring a SceneEditor.
// Use the With* functions to create options.
type SceneBuilderOption func(s *sceneEditor)

// WithHighlightColor sets the color applied to the selected object.
//
// Parameters:
//   - c: the highlight color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithHighlightColor(c common.Color) SceneBuilderOption {
	return func(s *sceneEditor) {
		s.highlight = c
	}
}

// WithBuffer sets the packed mesh buffer. The buffer must be empty.
//
// Parameters:
//   - b: the buffer to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBuffer(b mesh.Buffer) SceneBuilderOption {
	return func(s *sceneEditor) {
		s.buffer = b
	}
}
