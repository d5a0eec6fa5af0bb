package renderer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-scene/engine/renderer/pipeline"
)

// fakeBackend records backend calls without a GPU.
type fakeBackend struct {
	writes      []bind_group_provider.BufferWrite
	flushes     int
	meshSizes   [][2]uint64
	constants   []int
	frameOpen   bool
	draws       int
	presents    int
	clearColor  common.Color
	presentMode PresentMode
	configured  [][2]int
}

var _ RendererBackend = &fakeBackend{}

func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.presentMode = mode }
func (f *fakeBackend) SetClearColor(c common.Color)    { f.clearColor = c }
func (f *fakeBackend) UniformAlignment() uint64        { return 256 }
func (f *fakeBackend) Release()                        {}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configured = append(f.configured, [2]int{width, height})
}

func (f *fakeBackend) BindFrame(pipeline.Pipeline, bind_group_provider.BindGroupProvider) {}

func (f *fakeBackend) RegisterRenderPipeline(pipeline.Pipeline, bind_group_provider.BindGroupProvider) error {
	return nil
}

func (f *fakeBackend) EnsureMeshBuffers(p bind_group_provider.BindGroupProvider, v, i uint64) error {
	f.meshSizes = append(f.meshSizes, [2]uint64{v, i})
	return nil
}

func (f *fakeBackend) CreateConstants(p bind_group_provider.BindGroupProvider, slots int, _ uint64) error {
	f.constants = append(f.constants, slots)
	p.SetConstants(nil, slots)
	return nil
}

func (f *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.flushes++
	f.writes = append(f.writes, writes...)
}

func (f *fakeBackend) BeginFrame() error {
	f.frameOpen = true
	return nil
}

func (f *fakeBackend) Draw(bind_group_provider.BindGroupProvider, uint32, uint32, int32, int) {
	if f.frameOpen {
		f.draws++
	}
}

func (f *fakeBackend) EndFrame() { f.frameOpen = false }
func (f *fakeBackend) Present()  { f.presents++ }

func newTestRenderer(t *testing.T) (*renderer, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{}
	r := &renderer{
		mu:       &sync.Mutex{},
		backend:  fb,
		provider: bind_group_provider.NewBindGroupProvider("test"),
	}
	require.NoError(t, r.ResizeConstants(0))
	return r, fb
}

func TestParseOptions(t *testing.T) {
	mode, err := ParsePresentMode("Uncapped")
	require.NoError(t, err)
	assert.Equal(t, PresentModeUncapped, mode)
	assert.Equal(t, "uncapped", mode.String())

	mode, err = ParsePresentMode("")
	require.NoError(t, err)
	assert.Equal(t, PresentModeVSync, mode)

	_, err = ParsePresentMode("mailbox")
	assert.ErrorContains(t, err, "mailbox")

	msaa, err := ParseMSAA(4)
	require.NoError(t, err)
	assert.Equal(t, MSAA4x, msaa)
	_, err = ParseMSAA(8)
	assert.Error(t, err)
}

func TestUploadsAreStagedUntilSubmit(t *testing.T) {
	r, fb := newTestRenderer(t)

	r.ResetCommands()
	require.NoError(t, r.UploadMesh(make([]byte, 56), make([]byte, 12)))
	assert.Empty(t, fb.writes)
	assert.Equal(t, [][2]uint64{{56, 12}}, fb.meshSizes)
	assert.Equal(t, 3, r.provider.IndexCount())

	r.SubmitCommands()
	require.Len(t, fb.writes, 2)
	assert.Equal(t, 1, fb.flushes)
	assert.Equal(t, bind_group_provider.TargetVertex, fb.writes[0].Target)
	assert.Equal(t, bind_group_provider.TargetIndex, fb.writes[1].Target)

	// outside a batch writes go straight through
	require.NoError(t, r.UploadMesh(make([]byte, 28), make([]byte, 4)))
	assert.Equal(t, 3, fb.flushes)
}

func TestResizeConstantsGrows(t *testing.T) {
	r, fb := newTestRenderer(t)
	assert.Equal(t, []int{1}, fb.constants)

	require.NoError(t, r.ResizeConstants(1))
	assert.Equal(t, []int{1}, fb.constants)

	require.NoError(t, r.ResizeConstants(3))
	require.NoError(t, r.ResizeConstants(4))
	require.NoError(t, r.ResizeConstants(2))
	assert.Equal(t, []int{1, 3, 6}, fb.constants)
	assert.Equal(t, 6, r.provider.Slots())
}

func TestWriteConstantsUsesSlotOffsets(t *testing.T) {
	r, fb := newTestRenderer(t)
	require.NoError(t, r.ResizeConstants(3))

	r.WriteConstants(2, make([]byte, common.MatrixSize))
	require.Len(t, fb.writes, 1)
	assert.Equal(t, uint64(512), fb.writes[0].Offset)
	assert.Equal(t, bind_group_provider.TargetConstants, fb.writes[0].Target)

	r.WriteConstants(3, make([]byte, common.MatrixSize))
	r.WriteConstants(-1, make([]byte, common.MatrixSize))
	r.WriteConstants(0, make([]byte, 300))
	assert.Len(t, fb.writes, 1)
}

func TestFrameOrdering(t *testing.T) {
	r, fb := newTestRenderer(t)

	r.DrawIndexed(3, 0, 0, 0)
	assert.Zero(t, fb.draws)

	require.NoError(t, r.Clear())
	r.DrawIndexed(3, 0, 0, 0)
	r.DrawIndexed(0, 0, 0, 0)
	r.DrawIndexed(3, 0, 0, 5)
	r.Present()
	assert.Equal(t, 1, fb.draws)
	assert.Equal(t, 1, fb.presents)
	assert.Equal(t, common.ColumnMajor, r.MatrixLayout())
}

func TestSettersReachBackend(t *testing.T) {
	r, fb := newTestRenderer(t)
	r.SetClearColor(common.Red)
	r.SetPresentMode(PresentModeUncapped)
	assert.Equal(t, common.Red, fb.clearColor)
	assert.Equal(t, PresentModeUncapped, fb.presentMode)
}

func TestSetPresentModeReconfiguresSurface(t *testing.T) {
	r, fb := newTestRenderer(t)

	r.SetPresentMode(PresentModeUncapped)
	assert.Empty(t, fb.configured)

	r.Resize(640, 480)
	r.Resize(0, 480)
	require.Equal(t, [][2]int{{640, 480}}, fb.configured)

	r.SetPresentMode(PresentModeVSync)
	assert.Equal(t, PresentModeVSync, fb.presentMode)
	assert.Equal(t, [][2]int{{640, 480}, {640, 480}}, fb.configured)

	r.SetPresentMode(PresentModeVSync)
	assert.Len(t, fb.configured, 2)
}
