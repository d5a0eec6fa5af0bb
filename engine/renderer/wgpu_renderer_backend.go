package renderer

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue
	limits wgpu.Limits

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode
	sampleCount MSAASampleCount
	clearColor  common.Color

	// Frame state between BeginFrame and Present
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and recreates the depth and MSAA targets.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode selects the swapchain present mode used by the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the frame's render pass clears to.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c common.Color)

	// UniformAlignment returns the device's minimum uniform buffer offset alignment.
	UniformAlignment() uint64

	// RegisterRenderPipeline creates the GPU pipeline for p and stores its group 0 layout
	// on provider for the constants bind group.
	//
	// Parameters:
	//   - p: the pipeline description
	//   - provider: receives the group 0 bind group layout
	//
	// Returns:
	//   - error: an error if a stage is missing or the device rejects the pipeline
	RegisterRenderPipeline(p pipeline.Pipeline, provider bind_group_provider.BindGroupProvider) error

	// EnsureMeshBuffers grows the provider's vertex and index buffers to hold the given sizes.
	// Buffers that already fit are kept.
	//
	// Parameters:
	//   - provider: the mesh buffer holder
	//   - vertexBytes: bytes of vertex data to hold
	//   - indexBytes: bytes of index data to hold
	//
	// Returns:
	//   - error: an error if a buffer could not be created
	EnsureMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexBytes, indexBytes uint64) error

	// CreateConstants replaces the provider's constants buffer with one holding slots slots and
	// rebuilds the bind group over it with a dynamic offset window of bindingSize bytes.
	//
	// Parameters:
	//   - provider: the constants holder; its layout must be set
	//   - slots: number of slots
	//   - bindingSize: bytes visible to the shader at each offset
	//
	// Returns:
	//   - error: an error if the buffer or bind group could not be created
	CreateConstants(provider bind_group_provider.BindGroupProvider, slots int, bindingSize uint64) error

	// WriteBuffers writes each BufferWrite to the queue in order.
	//
	// Parameters:
	//   - writes: the writes to perform
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the surface texture and begins the clearing render pass.
	//
	// Returns:
	//   - error: an error if the texture or encoder could not be acquired
	BeginFrame() error

	// BindFrame sets the pipeline and the mesh buffers on the open render pass.
	//
	// Parameters:
	//   - p: the pipeline to draw with
	//   - provider: the mesh buffer holder
	BindFrame(p pipeline.Pipeline, provider bind_group_provider.BindGroupProvider)

	// Draw binds one constants slot and records an indexed draw.
	//
	// Parameters:
	//   - provider: the constants holder
	//   - indexCount: number of indices
	//   - startIndex: first index
	//   - baseVertex: value added to every index
	//   - slot: the constants slot
	Draw(provider bind_group_provider.BindGroupProvider, indexCount, startIndex uint32, baseVertex int32, slot int)

	// EndFrame ends the render pass and submits it.
	EndFrame()

	// Present presents the acquired surface texture.
	Present()

	// Release frees the device, surface and frame targets.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
		clearColor:  common.Black,
	}
	if surfaceDescriptor == nil {
		panic("renderer: window has no surface descriptor")
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(fmt.Errorf("failed to request adapter: %w", err))
	}
	w.adapter = a

	w.limits = wgpu.DefaultLimits()
	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Scene Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: w.limits,
		},
	})
	if err != nil {
		panic(fmt.Errorf("failed to request device: %w", err))
	}
	w.device = d
	w.queue = d.GetQueue()

	return w
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	if len(capabilities.Formats) == 0 {
		panic("renderer: surface reports no formats")
	}
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseTargets()

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// The pass draws into the MSAA texture and resolves into the swapchain view.
		tex, view := b.createTarget("MSAA Texture", width, height, count, *b.surfaceFormat)
		b.msaaTexture, b.msaaTextureView = tex, view
	}

	// Depth sample count must match the color attachment.
	b.depthTexture, b.depthTextureView = b.createTarget("Depth Texture", width, height, count, wgpu.TextureFormatDepth24Plus)

	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.msaaTextureView, // nil when MSAA is off; set in BeginFrame
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    storeOp,
				ClearValue: toWGPUColor(b.clearColor),
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

// createTarget creates a single-mip 2D render attachment. Failures panic like surface setup.
func (b *wgpuRendererBackendImpl) createTarget(label string, width, height int, samples uint32, format wgpu.TextureFormat) (*wgpu.Texture, *wgpu.TextureView) {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(fmt.Errorf("failed to create %s: %w", label, err))
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		panic(fmt.Errorf("failed to create %s view: %w", label, err))
	}
	return tex, view
}

func (b *wgpuRendererBackendImpl) releaseTargets() {
	for _, v := range []*wgpu.TextureView{b.msaaTextureView, b.depthTextureView} {
		if v != nil {
			v.Release()
		}
	}
	for _, t := range []*wgpu.Texture{b.msaaTexture, b.depthTexture} {
		if t != nil {
			t.Release()
		}
	}
	b.msaaTexture, b.msaaTextureView = nil, nil
	b.depthTexture, b.depthTextureView = nil, nil
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) SetClearColor(c common.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clearColor = c
	if b.renderPassDescriptor != nil {
		b.renderPassDescriptor.ColorAttachments[0].ClearValue = toWGPUColor(c)
	}
}

func (b *wgpuRendererBackendImpl) UniformAlignment() uint64 {
	return uint64(b.limits.MinUniformBufferOffsetAlignment)
}

func (b *wgpuRendererBackendImpl) RegisterRenderPipeline(p pipeline.Pipeline, provider bind_group_provider.BindGroupProvider) error {
	if err := p.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	vertexShader := p.Shader(shader.ShaderTypeVertex)
	fragmentShader := p.Shader(shader.ShaderTypeFragment)

	vs, err := b.device.CreateShaderModule(vertexShader.Module())
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", vertexShader.Key(), err)
	}
	defer vs.Release()
	fs, err := b.device.CreateShaderModule(fragmentShader.Module())
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", fragmentShader.Key(), err)
	}
	defer fs.Release()

	merged := p.BindGroupLayoutDescriptors()
	if _, ok := merged[0]; !ok {
		return fmt.Errorf("pipeline %s declares no group 0 constants binding", p.PipelineKey())
	}
	maxGroup := -1
	for g := range merged {
		maxGroup = max(maxGroup, g)
	}
	bindGroupLayouts := make([]*wgpu.BindGroupLayout, maxGroup+1)
	for g, desc := range merged {
		layout, layoutErr := b.device.CreateBindGroupLayout(&desc)
		if layoutErr != nil {
			return fmt.Errorf("failed to create bind group layout for group %d: %w", g, layoutErr)
		}
		bindGroupLayouts[g] = layout
	}
	provider.SetBindGroupLayout(bindGroupLayouts[0])

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: bindGroupLayouts,
	})
	if err != nil {
		return err
	}
	defer pipelineLayout.Release()

	depthCompare := wgpu.CompareFunctionLess
	if !p.DepthTestEnabled() {
		depthCompare = wgpu.CompareFunctionAlways
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: vertexShader.EntryPoint(),
			Buffers:    vertexShader.VertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: fragmentShader.EntryPoint(),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: p.WriteMask(),
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.Topology(),
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: p.DepthWriteEnabled(),
			DepthCompare:      depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return err
	}

	p.SetRenderPipeline(created)
	return nil
}

func (b *wgpuRendererBackendImpl) EnsureMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexBytes, indexBytes uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if capacity := bind_group_provider.GrowCapacity(provider.VertexCapacity(), vertexBytes); capacity != provider.VertexCapacity() {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: provider.Label() + " Vertex Buffer",
			Size:  capacity,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return err
		}
		provider.SetVertexBuffer(buf, capacity)
	}

	if capacity := bind_group_provider.GrowCapacity(provider.IndexCapacity(), indexBytes); capacity != provider.IndexCapacity() {
		buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: provider.Label() + " Index Buffer",
			Size:  capacity,
			Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return err
		}
		provider.SetIndexBuffer(buf, capacity)
	}
	return nil
}

func (b *wgpuRendererBackendImpl) CreateConstants(provider bind_group_provider.BindGroupProvider, slots int, bindingSize uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	layout := provider.BindGroupLayout()
	if layout == nil {
		return fmt.Errorf("%s has no bind group layout; register the pipeline first", provider.Label())
	}

	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: provider.Label() + " Constants Buffer",
		Size:  uint64(slots) * provider.SlotSize(),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  provider.Label() + " Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buf,
				Offset:  0,
				// the dynamic offset moves this window across the slots
				Size: bindingSize,
			},
		},
	})
	if err != nil {
		buf.Release()
		return err
	}

	provider.SetConstants(buf, slots)
	provider.SetBindGroup(bindGroup)
	return nil
}

func (b *wgpuRendererBackendImpl) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, w := range writes {
		buf := w.Provider.Buffer(w.Target)
		if buf == nil {
			continue
		}
		if err := b.queue.WriteBuffer(buf, w.Offset, w.Data); err != nil {
			log.Printf("[Renderer] buffer write to %s failed: %v", w.Provider.Label(), err)
		}
	}
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}

	b.frameEncoder = encoder
	b.framePass = encoder.BeginRenderPass(b.renderPassDescriptor)
	b.frameSurface = surfaceTexture
	b.frameView = view
	return nil
}

func (b *wgpuRendererBackendImpl) BindFrame(p pipeline.Pipeline, provider bind_group_provider.BindGroupProvider) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || p.RenderPipeline() == nil {
		return
	}
	b.framePass.SetPipeline(p.RenderPipeline())
	if provider.VertexBuffer() == nil || provider.IndexBuffer() == nil {
		return
	}
	b.framePass.SetVertexBuffer(0, provider.VertexBuffer(), 0, wgpu.WholeSize)
	b.framePass.SetIndexBuffer(provider.IndexBuffer(), wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
}

func (b *wgpuRendererBackendImpl) Draw(provider bind_group_provider.BindGroupProvider, indexCount, startIndex uint32, baseVertex int32, slot int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil || provider.BindGroup() == nil || provider.IndexBuffer() == nil {
		return
	}
	b.framePass.SetBindGroup(0, provider.BindGroup(), []uint32{provider.SlotOffset(slot)})
	b.framePass.DrawIndexed(indexCount, 1, startIndex, baseVertex, 0)
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}
	b.framePass.End()
	b.framePass.Release()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		log.Printf("[Renderer] failed to finish frame: %v", err)
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseTargets()
	b.queue = nil
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

func toWGPUColor(c common.Color) wgpu.Color {
	return wgpu.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}
}
