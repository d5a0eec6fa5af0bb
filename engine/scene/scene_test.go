package scene

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
	"github.com/Carmen-Shannon/oxy-scene/engine/primitive"
)

type drawCall struct {
	indexCount, startIndex uint32
	baseVertex             int32
	slot                   int
}

type fakeDevice struct {
	layout    common.MatrixLayout
	uploadErr error

	resets, submits int
	uploads         int
	vertexData      []byte
	indexData       []byte
	slots           int
	constants       map[int][]byte
	draws           []drawCall
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{constants: map[int][]byte{}}
}

func (d *fakeDevice) ResetCommands()  { d.resets++ }
func (d *fakeDevice) SubmitCommands() { d.submits++ }

func (d *fakeDevice) UploadMesh(vertexData, indexData []byte) error {
	if d.uploadErr != nil {
		return d.uploadErr
	}
	d.uploads++
	d.vertexData, d.indexData = vertexData, indexData
	return nil
}

func (d *fakeDevice) ResizeConstants(n int) error {
	d.slots = n
	return nil
}

func (d *fakeDevice) WriteConstants(slot int, data []byte) {
	d.constants[slot] = data
}

func (d *fakeDevice) DrawIndexed(indexCount, startIndex uint32, baseVertex int32, slot int) {
	d.draws = append(d.draws, drawCall{indexCount, startIndex, baseVertex, slot})
}

func (d *fakeDevice) MatrixLayout() common.MatrixLayout { return d.layout }

func (d *fakeDevice) matrix(slot int) [16]float32 {
	var m [16]float32
	for i := range m {
		m[i] = math.Float32frombits(binary.LittleEndian.Uint32(d.constants[slot][i*4:]))
	}
	return m
}

func vertexCount(n int) mesh.Geometry {
	g := primitive.Grid(1, 1, 2, n/2)
	return g
}

// sceneOf adds one grid object per vertex count.
func sceneOf(t *testing.T, counts ...int) SceneEditor {
	t.Helper()
	s := NewSceneEditor()
	for _, n := range counts {
		_, err := s.Add(game_object.NewGameObject(), vertexCount(n))
		require.NoError(t, err)
	}
	return s
}

func colorsOf(s SceneEditor) []common.Color {
	verts := s.Buffer().Vertices()
	out := make([]common.Color, s.Len())
	for i, sub := range s.Buffer().SubMeshes() {
		c := verts[sub.BaseVertex].Color
		for _, v := range verts[sub.BaseVertex:sub.EndVertex()] {
			if v.Color != c {
				return nil
			}
		}
		out[i] = c
	}
	return out
}

func requireDenseCBIndex(t *testing.T, s SceneEditor) {
	t.Helper()
	for i, obj := range s.Objects() {
		require.Equal(t, i, obj.CBIndex())
	}
	require.NoError(t, s.Buffer().Validate())
}

func TestAddAssignsSlotsAndIDs(t *testing.T) {
	s := sceneOf(t, 8, 24, 26)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 58, s.Buffer().VertexCount())
	requireDenseCBIndex(t, s)

	ids := map[uint64]bool{}
	for _, obj := range s.Objects() {
		ids[obj.ID()] = true
	}
	assert.Len(t, ids, 3)
	assert.NotContains(t, ids, uint64(0))
}

func TestAddRejectsEmptyGeometry(t *testing.T) {
	s := NewSceneEditor()
	_, err := s.Add(game_object.NewGameObject(), mesh.Geometry{})
	assert.ErrorIs(t, err, mesh.ErrEmptyGeometry)
	assert.Equal(t, 0, s.Len())
}

func TestRemoveShiftsLaterObjects(t *testing.T) {
	s := sceneOf(t, 8, 24, 26)
	_, err := s.Add(game_object.NewGameObject(), primitive.Quad(2, 2))
	require.NoError(t, err)
	require.Equal(t, 62, s.Buffer().VertexCount())

	before := s.Buffer().SubMeshes()
	third := s.Object(2)

	require.True(t, s.Remove(1))
	after := s.Buffer().SubMeshes()
	assert.Equal(t, 38, s.Buffer().VertexCount())
	assert.Equal(t, before[2].BaseVertex-24, after[1].BaseVertex)
	assert.Equal(t, before[3].BaseVertex-24, after[2].BaseVertex)
	assert.Same(t, third, s.Object(1))
	requireDenseCBIndex(t, s)

	assert.False(t, s.Remove(3))
	assert.False(t, s.Remove(-1))
}

func TestSelectNextCyclesAndRestoresColors(t *testing.T) {
	s := sceneOf(t, 4, 6, 8)

	_, ok := s.Selected()
	assert.False(t, ok)

	for want := 0; want < 3; want++ {
		require.True(t, s.SelectNext())
		i, ok := s.Selected()
		require.True(t, ok)
		assert.Equal(t, want, i)

		colors := colorsOf(s)
		require.NotNil(t, colors)
		for j, c := range colors {
			if j == want {
				assert.Equal(t, common.Red, c)
			} else {
				assert.Equal(t, common.DimGray, c)
			}
		}
	}

	// n presses from a selection come back to it
	require.True(t, s.SelectNext())
	i, _ := s.Selected()
	assert.Equal(t, 0, i)
}

func TestSelectNextEmptyAndSingle(t *testing.T) {
	s := NewSceneEditor()
	assert.False(t, s.SelectNext())

	s = sceneOf(t, 4)
	require.True(t, s.SelectNext())
	require.True(t, s.SelectNext())
	i, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, []common.Color{common.Red}, colorsOf(s))
}

func TestDeselectRestoresDefaultColor(t *testing.T) {
	s := NewSceneEditor(WithHighlightColor(common.DarkRed))
	_, err := s.AddModel(model.NewModel(model.WithGeometry(primitive.Box(1, 1, 1)), model.WithColor(common.Orange)))
	require.NoError(t, err)

	assert.False(t, s.Deselect())
	require.True(t, s.SelectNext())
	assert.Equal(t, []common.Color{common.DarkRed}, colorsOf(s))

	require.True(t, s.Deselect())
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, []common.Color{common.Orange}, colorsOf(s))
}

func TestDeleteSelectedGoesToNoneSelected(t *testing.T) {
	s := sceneOf(t, 4, 6, 8)
	assert.False(t, s.DeleteSelected())

	require.True(t, s.Select(2))
	require.True(t, s.DeleteSelected())
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []common.Color{common.DimGray, common.DimGray}, colorsOf(s))
	requireDenseCBIndex(t, s)

	// the next Tab starts over at the first object
	require.True(t, s.SelectNext())
	i, _ := s.Selected()
	assert.Equal(t, 0, i)
}

func TestRemoveBeforeSelectionShiftsIt(t *testing.T) {
	s := sceneOf(t, 4, 6, 8)
	require.True(t, s.Select(2))
	require.True(t, s.Remove(0))
	i, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, []common.Color{common.DimGray, common.Red}, colorsOf(s))
}

func TestSelectOutOfRange(t *testing.T) {
	s := sceneOf(t, 4)
	assert.False(t, s.Select(1))
	assert.False(t, s.Select(-1))
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestTransformSelected(t *testing.T) {
	s := sceneOf(t, 4, 4)
	assert.False(t, s.TranslateSelected(1, 0, 0))
	assert.False(t, s.ScaleSelected(2))
	assert.False(t, s.RotateSelected(0, 1, 0))

	require.True(t, s.Select(1))
	assert.True(t, s.TranslateSelected(0.1, 0, 0))
	assert.True(t, s.ScaleSelected(1.1))
	assert.True(t, s.RotateSelected(0, 0.5, 0))

	x, _, _ := s.Object(1).Position()
	sx, _, _ := s.Object(1).Scale()
	_, ry, _ := s.Object(1).Rotation()
	assert.InDelta(t, 0.1, x, 1e-6)
	assert.InDelta(t, 1.1, sx, 1e-6)
	assert.InDelta(t, 0.5, ry, 1e-6)

	x, _, _ = s.Object(0).Position()
	assert.Equal(t, float32(0), x)
}

func TestSetHighlightColorRetintsSelection(t *testing.T) {
	s := sceneOf(t, 4, 4)
	require.True(t, s.Select(0))
	s.SetHighlightColor(common.Yellow)
	assert.Equal(t, common.Yellow, s.HighlightColor())
	assert.Equal(t, []common.Color{common.Yellow, common.DimGray}, colorsOf(s))
}

func TestRebuildUploadsOnlyWhenDirty(t *testing.T) {
	s := sceneOf(t, 4, 6)
	dev := newFakeDevice()

	require.True(t, s.Dirty())
	require.NoError(t, s.Rebuild(dev))
	assert.Equal(t, 1, dev.uploads)
	assert.Equal(t, 2, dev.slots)
	assert.Equal(t, 1, dev.resets)
	assert.Equal(t, 1, dev.submits)
	assert.Len(t, dev.vertexData, 10*mesh.VertexSize)
	assert.False(t, s.Dirty())

	require.NoError(t, s.Rebuild(dev))
	assert.Equal(t, 1, dev.uploads)
	assert.Equal(t, 1, dev.resets)

	// a color change re-uploads without resizing constants
	require.True(t, s.SelectNext())
	require.NoError(t, s.Rebuild(dev))
	assert.Equal(t, 2, dev.uploads)
	assert.Equal(t, 2, dev.slots)

	require.True(t, s.Remove(0))
	require.NoError(t, s.Rebuild(dev))
	assert.Equal(t, 3, dev.uploads)
	assert.Equal(t, 1, dev.slots)
	assert.Equal(t, uint64(3), s.Stats().Uploads)
}

func TestRebuildReportsUploadFailure(t *testing.T) {
	s := sceneOf(t, 4)
	dev := newFakeDevice()
	dev.uploadErr = errors.New("device lost")

	err := s.Rebuild(dev)
	assert.ErrorIs(t, err, dev.uploadErr)
	assert.True(t, s.Dirty())
	assert.Equal(t, 1, dev.submits)
}

func TestUpdateWritesMatrixPerSlot(t *testing.T) {
	s := NewSceneEditor()
	_, err := s.Add(game_object.NewGameObject(game_object.WithPosition(1, 2, 3)), primitive.Quad(1, 1))
	require.NoError(t, err)
	_, err = s.Add(game_object.NewGameObject(game_object.WithScale(2, 2, 2)), primitive.Quad(1, 1))
	require.NoError(t, err)

	var id [16]float32
	common.Identity(id[:])

	dev := newFakeDevice()
	s.Update(dev, id, id, 0)
	require.Len(t, dev.constants, 2)
	first := dev.matrix(0)
	assert.Equal(t, []float32{1, 2, 3}, first[12:15])
	second := dev.matrix(1)
	assert.Equal(t, float32(2), second[0])

	dev.layout = common.RowMajor
	s.Update(dev, id, id, 0)
	first = dev.matrix(0)
	assert.Equal(t, float32(1), first[3])
	assert.Equal(t, float32(2), first[7])
	assert.Equal(t, float32(3), first[11])
	assert.Equal(t, float32(0), first[12])
}

func TestDrawIssuesOneCallPerEnabledObject(t *testing.T) {
	s := sceneOf(t, 8, 24)
	_, err := s.Add(game_object.NewGameObject(game_object.WithEnabled(false)), primitive.Quad(1, 1))
	require.NoError(t, err)
	_, err = s.Add(game_object.NewGameObject(), primitive.Quad(1, 1))
	require.NoError(t, err)

	dev := newFakeDevice()
	s.Draw(dev)
	subs := s.Buffer().SubMeshes()
	require.Len(t, dev.draws, 3)
	assert.Equal(t, drawCall{subs[0].IndexCount, subs[0].StartIndex, 0, 0}, dev.draws[0])
	assert.Equal(t, drawCall{subs[1].IndexCount, subs[1].StartIndex, 8, 1}, dev.draws[1])
	assert.Equal(t, drawCall{6, subs[3].StartIndex, 36, 3}, dev.draws[2])
}

func TestStats(t *testing.T) {
	s := sceneOf(t, 4, 8)
	require.True(t, s.Select(1))
	st := s.Stats()
	assert.Equal(t, 2, st.Objects)
	assert.Equal(t, 12, st.Vertices)
	assert.Equal(t, 1, st.Selected)
}

func TestUpdateCountsObjectsInView(t *testing.T) {
	var view, proj [16]float32
	common.LookAt(view[:], [3]float32{0, 0, 5}, [3]float32{0, 0, 0}, [3]float32{0, 1, 0})
	common.Perspective(proj[:], common.DegToRad(45), 1, 1, 100)

	s := NewSceneEditor()
	box := model.NewModel(model.WithName("box"), model.WithGeometry(primitive.Box(1, 1, 1)))
	_, err := s.AddModel(box)
	require.NoError(t, err)
	_, err = s.AddModel(box, game_object.WithPosition(100, 0, 0))
	require.NoError(t, err)
	_, err = s.AddModel(box, game_object.WithPosition(0, 0, -200))
	require.NoError(t, err)
	_, err = s.AddModel(box, game_object.WithPosition(3.5, 0, 0), game_object.WithScale(4, 4, 4))
	require.NoError(t, err)

	s.Update(newFakeDevice(), view, proj, 0)
	assert.Equal(t, 2, s.Stats().Visible)
}

func TestDeselectRestoresVertexColors(t *testing.T) {
	g := primitive.Quad(1, 1)
	g.Vertices[0].Color = common.Orange
	g.Vertices[3].Color = common.Black
	want := make([]common.Color, len(g.Vertices))
	for i, v := range g.Vertices {
		want[i] = v.Color
	}

	s := NewSceneEditor()
	_, err := s.Add(game_object.NewGameObject(), g)
	require.NoError(t, err)
	_, err = s.Add(game_object.NewGameObject(), primitive.Quad(1, 1))
	require.NoError(t, err)

	require.True(t, s.Select(0))
	colors, _ := s.Buffer().Colors(0)
	assert.Equal(t, []common.Color{common.Red, common.Red, common.Red, common.Red}, colors)

	require.True(t, s.SelectNext())
	colors, _ = s.Buffer().Colors(0)
	assert.Equal(t, want, colors)

	require.True(t, s.Select(0))
	require.True(t, s.Deselect())
	colors, _ = s.Buffer().Colors(0)
	assert.Equal(t, want, colors)
}
