package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
)

const triangleOBJ = `# one triangle
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`

func writeOBJ(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func parse(t *testing.T, body string) ImportResult {
	t.Helper()
	res, err := newOBJLoaderBackend(common.DimGray).LoadReader(strings.NewReader(body))
	require.NoError(t, err)
	return res
}

func TestParseTriangle(t *testing.T) {
	res := parse(t, triangleOBJ)
	assert.Equal(t, 0, res.Skipped)
	require.Len(t, res.Geometry.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, res.Geometry.Indices)
	assert.Equal(t, [3]float32{0, 1, 0}, res.Geometry.Vertices[2].Position)
	for _, v := range res.Geometry.Vertices {
		assert.Equal(t, common.DimGray, v.Color)
	}
}

func TestParseCornerForms(t *testing.T) {
	body := `v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
f 2 4 3
f 2/1 4/1 3/1
`
	res := parse(t, body)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, []uint32{0, 1, 2, 1, 3, 2, 1, 3, 2}, res.Geometry.Indices)
}

func TestParseSkipsUnusableLines(t *testing.T) {
	body := `v 0 0 0
v 1 0 0
v 0 1 0
v 1 nope 0
v 1 1
f 1 2 3 4
f 1 x 3
f 0 1 2
f 1 2 9
f 1 2 3
o ignored
usemtl ignored
`
	res := parse(t, body)
	// two bad positions, three bad faces, one out-of-range face
	assert.Equal(t, 6, res.Skipped)
	assert.Len(t, res.Geometry.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, res.Geometry.Indices)
}

func TestParseEmpty(t *testing.T) {
	res := parse(t, "# nothing here\nv 0 0 0\n")
	assert.True(t, res.Geometry.Empty())
	assert.Empty(t, res.Geometry.Vertices)
}

func TestLoadCachesByPath(t *testing.T) {
	dir := t.TempDir()
	path := writeOBJ(t, dir, "ball.obj", triangleOBJ)

	l := NewLoader(BackendTypeOBJ, WithColor(common.Orange), WithModelOptions(model.WithUniformScale(0.5)))
	m, err := l.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ball", m.Name())
	assert.Equal(t, common.Orange, m.Color())
	assert.Equal(t, [3]float32{0.5, 0.5, 0.5}, m.Scale())
	assert.Equal(t, common.Orange, m.Geometry().Vertices[0].Color)

	again, err := l.Load(path)
	require.NoError(t, err)
	assert.Same(t, m, again)
	assert.Same(t, m, l.Get(path))
	assert.Len(t, l.Models(), 1)
}

func TestLoadPrefersDeclaredObjectName(t *testing.T) {
	dir := t.TempDir()
	path := writeOBJ(t, dir, "shape_01.obj", "o Wedge Prism\no second\n"+triangleOBJ)

	res := parse(t, "o Wedge Prism\no second\n"+triangleOBJ)
	assert.Equal(t, "Wedge Prism", res.Name)

	m, err := NewLoader(BackendTypeOBJ).Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Wedge Prism", m.Name())
}

func TestLoadErrors(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)

	_, err := l.Load(filepath.Join(t.TempDir(), "missing.obj"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = l.Load("scene.gltf")
	assert.ErrorContains(t, err, "unsupported model format")
	assert.Nil(t, l.Get("scene.gltf"))
}

func TestLoadEmptyFileYieldsEmptyModel(t *testing.T) {
	path := writeOBJ(t, t.TempDir(), "empty.obj", "")
	l := NewLoader(BackendTypeOBJ)
	m, err := l.Load(path)
	require.NoError(t, err)
	assert.True(t, m.Geometry().Empty())

	_, _, err = mesh.NewBuffer().Append(m.Geometry())
	assert.ErrorIs(t, err, mesh.ErrEmptyGeometry)
}

func TestLoadReader(t *testing.T) {
	l := NewLoader(BackendTypeOBJ)
	m, err := l.LoadReader("inline", strings.NewReader(triangleOBJ))
	require.NoError(t, err)
	assert.Equal(t, 3, m.VertexCount())
	assert.Same(t, m, l.Get("inline"))
}

func TestPreloadLoadsInParallel(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"ball.obj", "capsule.obj", "house.obj", "monkey.obj", "thorus.obj"} {
		paths = append(paths, writeOBJ(t, dir, name, triangleOBJ))
	}
	missing := filepath.Join(dir, "missing.obj")

	l := NewLoader(BackendTypeOBJ, WithWorkers(3))
	err := l.Preload(append(paths, missing)...)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Len(t, l.Models(), 5)
	for _, p := range paths {
		assert.NotNil(t, l.Get(p), p)
	}
	assert.Nil(t, l.Get(missing))

	assert.NoError(t, l.Preload())
}
