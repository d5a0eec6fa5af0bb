package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-scene/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	pipeline pipeline.Pipeline
	provider bind_group_provider.BindGroupProvider

	// writes queued between ResetCommands and SubmitCommands
	staged  []bind_group_provider.BufferWrite
	staging bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
	clearColor           common.Color

	// last configured surface size
	width, height int
}

// Renderer is the graphics device for a packed-buffer scene. It owns one render pipeline,
// one vertex buffer, one index buffer and one constants buffer split into per-object slots.
//
// A frame is Clear, any number of DrawIndexed calls, then Present. Mesh uploads are bracketed
// by ResetCommands and SubmitCommands and reach the GPU in queue order after earlier frames.
type Renderer interface {
	// ResetCommands opens an upload batch. Writes made by UploadMesh until SubmitCommands
	// are staged instead of written immediately.
	ResetCommands()

	// SubmitCommands writes every staged upload to the queue and closes the batch.
	SubmitCommands()

	// UploadMesh replaces the contents of the vertex and index buffers, growing them when
	// the data no longer fits.
	//
	// Parameters:
	//   - vertexData: marshalled vertex pool
	//   - indexData: marshalled uint32 index pool
	//
	// Returns:
	//   - error: an error if a buffer could not be created
	UploadMesh(vertexData, indexData []byte) error

	// ResizeConstants makes room for n constant slots. Existing storage is kept when it is
	// already large enough; otherwise the buffer and its bind group are recreated and the
	// old slot contents are lost.
	//
	// Parameters:
	//   - n: slot count
	//
	// Returns:
	//   - error: an error if the buffer or bind group could not be created
	ResizeConstants(n int) error

	// WriteConstants writes data to the start of a constants slot. Out-of-range slots are ignored.
	//
	// Parameters:
	//   - slot: the slot index
	//   - data: at most one slot's worth of bytes
	WriteConstants(slot int, data []byte)

	// Clear acquires the next surface texture and begins a render pass that clears it.
	// DrawIndexed and Present are no-ops until Clear succeeds.
	//
	// Returns:
	//   - error: an error if no surface texture could be acquired
	Clear() error

	// DrawIndexed records a draw of one object's index range with the constants in slot bound.
	//
	// Parameters:
	//   - indexCount: number of indices
	//   - startIndex: first index in the index buffer
	//   - baseVertex: value added to every index
	//   - slot: constants slot to bind
	DrawIndexed(indexCount, startIndex uint32, baseVertex int32, slot int)

	// Present ends the render pass, submits it and presents the surface texture.
	Present()

	// MatrixLayout reports the layout the pipeline's shaders expect. WGSL multiplies
	// column-major matrices, so this is always common.ColumnMajor.
	MatrixLayout() common.MatrixLayout

	// Resize reconfigures the surface and its depth and MSAA targets.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode and reconfigures the surface at its current size.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor changes the color used by Clear.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c common.Color)

	// Pipeline returns the pipeline every draw uses.
	Pipeline() pipeline.Pipeline

	// Provider returns the holder of the mesh and constants buffers.
	Provider() bind_group_provider.BindGroupProvider

	// Release frees every GPU resource. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into the window's surface. Without WithPipeline the
// built-in color pipeline is used. GPU setup failures panic.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window whose surface is rendered to
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a configured renderer with room for one constants slot
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		presentMode: PresentModeVSync,
		msaa:        MSAAOff,
		clearColor:  common.Black,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	if r.pipeline == nil {
		vs, fs := shader.NewColorShaders()
		r.pipeline = pipeline.NewPipeline("color", pipeline.WithShaders(vs, fs))
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.SetClearColor(r.clearColor)
	r.width, r.height = window.Width(), window.Height()
	r.backend.ConfigureSurface(r.width, r.height)

	r.provider = bind_group_provider.NewBindGroupProvider(
		r.pipeline.PipelineKey(),
		bind_group_provider.WithSlotAlignment(r.backend.UniformAlignment()),
	)
	if err := r.backend.RegisterRenderPipeline(r.pipeline, r.provider); err != nil {
		panic(fmt.Errorf("failed to register pipeline %s: %w", r.pipeline.PipelineKey(), err))
	}
	if err := r.ResizeConstants(1); err != nil {
		panic(err)
	}

	log.Printf("[Renderer] ready: %s present, %dx msaa, %d byte constant slots",
		r.presentMode, r.msaa, r.provider.SlotSize())
	return r
}

func (r *renderer) ResetCommands() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.staging = true
	r.staged = r.staged[:0]
}

func (r *renderer) SubmitCommands() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.staged) > 0 {
		r.backend.WriteBuffers(r.staged)
	}
	r.staged = r.staged[:0]
	r.staging = false
}

func (r *renderer) UploadMesh(vertexData, indexData []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.EnsureMeshBuffers(r.provider, uint64(len(vertexData)), uint64(len(indexData))); err != nil {
		return fmt.Errorf("failed to upload mesh: %w", err)
	}
	r.provider.SetIndexCount(len(indexData) / 4)

	r.write(bind_group_provider.BufferWrite{Provider: r.provider, Target: bind_group_provider.TargetVertex, Data: vertexData})
	r.write(bind_group_provider.BufferWrite{Provider: r.provider, Target: bind_group_provider.TargetIndex, Data: indexData})
	return nil
}

func (r *renderer) ResizeConstants(n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n = max(n, 1)
	if n <= r.provider.Slots() {
		return nil
	}
	slots := max(n, r.provider.Slots()*2)
	if err := r.backend.CreateConstants(r.provider, slots, common.MatrixSize); err != nil {
		return fmt.Errorf("failed to allocate %d constant slots: %w", slots, err)
	}
	return nil
}

func (r *renderer) WriteConstants(slot int, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot < 0 || slot >= r.provider.Slots() || uint64(len(data)) > r.provider.SlotSize() {
		log.Printf("[Renderer] dropped constants write to slot %d of %d", slot, r.provider.Slots())
		return
	}
	r.write(bind_group_provider.BufferWrite{
		Provider: r.provider,
		Target:   bind_group_provider.TargetConstants,
		Offset:   uint64(r.provider.SlotOffset(slot)),
		Data:     data,
	})
}

// write stages w while an upload batch is open and writes it straight to the queue otherwise.
// Callers hold r.mu.
func (r *renderer) write(w bind_group_provider.BufferWrite) {
	if len(w.Data) == 0 {
		return
	}
	if r.staging {
		r.staged = append(r.staged, w)
		return
	}
	r.backend.WriteBuffers([]bind_group_provider.BufferWrite{w})
}

func (r *renderer) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.backend.BindFrame(r.pipeline, r.provider)
	return nil
}

func (r *renderer) DrawIndexed(indexCount, startIndex uint32, baseVertex int32, slot int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if indexCount == 0 || slot < 0 || slot >= r.provider.Slots() {
		return
	}
	r.backend.Draw(r.provider, indexCount, startIndex, baseVertex, slot)
}

func (r *renderer) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backend.EndFrame()
	r.backend.Present()
}

func (r *renderer) MatrixLayout() common.MatrixLayout {
	return common.ColumnMajor
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	changed := r.presentMode != mode
	r.presentMode = mode
	width, height := r.width, r.height
	r.mu.Unlock()

	r.backend.SetPresentMode(mode)
	if changed && width > 0 && height > 0 {
		r.backend.ConfigureSurface(width, height)
		log.Printf("[Renderer] present mode set to %s", mode)
	}
}

func (r *renderer) SetClearColor(c common.Color) {
	r.mu.Lock()
	r.clearColor = c
	r.mu.Unlock()
	r.backend.SetClearColor(c)
}

func (r *renderer) Pipeline() pipeline.Pipeline {
	return r.pipeline
}

func (r *renderer) Provider() bind_group_provider.BindGroupProvider {
	return r.provider
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.staged = nil
	r.provider.Release()
	if rp := r.pipeline.RenderPipeline(); rp != nil {
		rp.Release()
		r.pipeline.SetRenderPipeline(nil)
	}
	r.backend.Release()
}
