package renderer

import (
	"fmt"
	"strings"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// ParsePresentMode maps a config value to a PresentMode.
//
// Parameters:
//   - name: "vsync" or "uncapped", case-insensitive
//
// Returns:
//   - PresentMode: the matching mode
//   - error: an error if the name is unknown
func ParsePresentMode(name string) (PresentMode, error) {
	switch strings.ToLower(name) {
	case "vsync", "":
		return PresentModeVSync, nil
	case "uncapped":
		return PresentModeUncapped, nil
	}
	return PresentModeVSync, fmt.Errorf("unknown present mode %q", name)
}

func (m PresentMode) String() string {
	if m == PresentModeUncapped {
		return "uncapped"
	}
	return "vsync"
}

// MSAASampleCount controls the number of samples used for multisample anti-aliasing.
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing. This is the default.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing.
	MSAA4x MSAASampleCount = 4
)

// ParseMSAA maps a config sample count to an MSAASampleCount.
//
// Parameters:
//   - samples: 1 or 4
//
// Returns:
//   - MSAASampleCount: the matching count
//   - error: an error for any other value
func ParseMSAA(samples int) (MSAASampleCount, error) {
	switch samples {
	case 1:
		return MSAAOff, nil
	case 4:
		return MSAA4x, nil
	}
	return MSAAOff, fmt.Errorf("unsupported msaa sample count %d", samples)
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
