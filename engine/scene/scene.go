package scene

import (
	"fmt"
	"sync"

	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/game_object"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
	"github.com/Carmen-Shannon/oxy-scene/engine/model"
)

// noSelection is the selection index when nothing is selected.
const noSelection = -1

// Stats is a snapshot of scene and pool sizes.
type Stats struct {
	Objects  int
	Vertices int
	Indices  int
	Uploads  uint64
	Selected int
	// Visible counts objects whose bounding sphere touched the view volume at the last Update.
	Visible int
}

type sceneEditor struct {
	mu *sync.Mutex

	buffer  mesh.Buffer
	objects []game_object.GameObject
	nextID  uint64

	selected  int
	highlight common.Color
	// saved holds the selected slot's vertex colors from before it was highlighted.
	saved []common.Color

	constantSlots int
	uploads       uint64
	visible       int
}

// SceneEditor is an ordered list of objects sharing one packed mesh buffer.
// Object i always occupies buffer slot i and constant slot i, and insertion order
// is both the draw order and the selection cycle order.
// At most one object is selected; the selected object's vertices carry the highlight color.
type SceneEditor interface {
	// Add appends an object and its geometry. The geometry is copied into the packed buffer
	// and the object is assigned the next constant slot and, if it has none, an ID.
	// The geometry's vertex colors are kept as given and come back after a deselect.
	//
	// Parameters:
	//   - obj: the object to add
	//   - g: the object's geometry, with indices relative to its own vertices
	//
	// Returns:
	//   - int: the object's index
	//   - error: a wrapped mesh.ErrEmptyGeometry or mesh.ErrIndexOutOfRange; nothing is added
	Add(obj game_object.GameObject, g mesh.Geometry) (int, error)

	// AddModel places a new object built from m, using the model's geometry and default transform.
	//
	// Parameters:
	//   - m: the model to place
	//   - options: extra object options applied after the model's defaults
	//
	// Returns:
	//   - game_object.GameObject: the placed object
	//   - error: as for Add
	AddModel(m model.Model, options ...game_object.GameObjectBuilderOption) (game_object.GameObject, error)

	// Remove erases object i and its geometry, then renumbers later objects' constant slots.
	// If i was selected the selection is cleared; a later selection shifts down with its object.
	//
	// Parameters:
	//   - i: the object index
	//
	// Returns:
	//   - bool: false if i is out of range
	Remove(i int) bool

	// Len returns the number of objects.
	Len() int

	// Object returns object i, or nil if i is out of range.
	Object(i int) game_object.GameObject

	// Objects returns the objects in draw order.
	Objects() []game_object.GameObject

	// Buffer returns the packed mesh buffer.
	Buffer() mesh.Buffer

	// Selected returns the selected index.
	//
	// Returns:
	//   - int: the selected index, or -1
	//   - bool: false if nothing is selected
	Selected() (int, bool)

	// Select selects object i, restoring the previous selection's color.
	//
	// Parameters:
	//   - i: the object index
	//
	// Returns:
	//   - bool: false if i is out of range
	Select(i int) bool

	// SelectNext advances the selection to (i+1) mod n, or to 0 when nothing is selected.
	//
	// Returns:
	//   - bool: false if the scene is empty
	SelectNext() bool

	// Deselect restores the selected object's color and clears the selection.
	//
	// Returns:
	//   - bool: false if nothing was selected
	Deselect() bool

	// DeleteSelected removes the selected object and clears the selection.
	//
	// Returns:
	//   - bool: false if nothing was selected
	DeleteSelected() bool

	// TranslateSelected offsets the selected object.
	//
	// Returns:
	//   - bool: false if nothing is selected
	TranslateSelected(dx, dy, dz float32) bool

	// ScaleSelected multiplies the selected object's scale by f.
	//
	// Returns:
	//   - bool: false if nothing is selected
	ScaleSelected(f float32) bool

	// RotateSelected adds to the selected object's rotation, in radians.
	//
	// Returns:
	//   - bool: false if nothing is selected
	RotateSelected(drx, dry, drz float32) bool

	// HighlightColor returns the color applied to the selected object.
	HighlightColor() common.Color

	// SetHighlightColor changes the highlight color, retinting the current selection.
	SetHighlightColor(c common.Color)

	// Dirty reports whether Rebuild has work to do.
	Dirty() bool

	// Rebuild uploads the pools if they changed and resizes constant storage if the
	// object count changed, inside one ResetCommands/SubmitCommands batch.
	// It is a no-op when nothing changed.
	//
	// Parameters:
	//   - dev: the device to upload to
	//
	// Returns:
	//   - error: the first upload or allocation error
	Rebuild(dev Device) error

	// Update writes every object's world-view-projection matrix to its constant slot,
	// transposed when the device expects row-major matrices, and counts the objects in view.
	//
	// Parameters:
	//   - dev: the device to write to
	//   - view: column-major view matrix
	//   - proj: column-major projection matrix
	//   - elapsed: spin time in seconds
	Update(dev Device, view, proj [16]float32, elapsed float32)

	// Draw issues one indexed draw per enabled object, in object order.
	//
	// Parameters:
	//   - dev: the device to draw with
	Draw(dev Device)

	// Stats returns current sizes for diagnostics.
	Stats() Stats
}

var _ SceneEditor = &sceneEditor{}

// NewSceneEditor creates an empty SceneEditor.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - SceneEditor: the newly created scene
func NewSceneEditor(options ...SceneBuilderOption) SceneEditor {
	s := &sceneEditor{
		mu:        &sync.Mutex{},
		nextID:    1,
		selected:  noSelection,
		highlight: common.Red,
	}
	for _, option := range options {
		option(s)
	}
	if s.buffer == nil {
		s.buffer = mesh.NewBuffer()
	}
	return s
}

func (s *sceneEditor) Add(obj game_object.GameObject, g mesh.Geometry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj, g)
}

func (s *sceneEditor) add(obj game_object.GameObject, g mesh.Geometry) (int, error) {
	i, _, err := s.buffer.Append(g)
	if err != nil {
		return -1, fmt.Errorf("failed to add object: %w", err)
	}
	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}
	obj.SetCBIndex(i)
	s.objects = append(s.objects, obj)
	return i, nil
}

func (s *sceneEditor) AddModel(m model.Model, options ...game_object.GameObjectBuilderOption) (game_object.GameObject, error) {
	opts := append([]game_object.GameObjectBuilderOption{game_object.WithModel(m)}, options...)
	obj := game_object.NewGameObject(opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.add(obj, m.Geometry().Colored(obj.Color())); err != nil {
		return nil, fmt.Errorf("failed to place %q: %w", m.Name(), err)
	}
	return obj, nil
}

func (s *sceneEditor) Remove(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(i)
}

func (s *sceneEditor) remove(i int) bool {
	if i < 0 || i >= len(s.objects) {
		return false
	}
	if _, ok := s.buffer.Remove(i); !ok {
		return false
	}
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
	for j := i; j < len(s.objects); j++ {
		s.objects[j].SetCBIndex(j)
	}

	switch {
	case s.selected == i:
		s.selected = noSelection
		s.saved = nil
	case s.selected > i:
		s.selected--
	}
	return true
}

func (s *sceneEditor) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

func (s *sceneEditor) Object(i int) game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.objects) {
		return nil
	}
	return s.objects[i]
}

func (s *sceneEditor) Objects() []game_object.GameObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]game_object.GameObject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *sceneEditor) Buffer() mesh.Buffer {
	return s.buffer
}

func (s *sceneEditor) Selected() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected != noSelection
}

func (s *sceneEditor) Select(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.objects) {
		return false
	}
	s.selectIndex(i)
	return true
}

func (s *sceneEditor) SelectNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.objects)
	if n == 0 {
		return false
	}
	s.selectIndex((s.selected + 1) % n)
	return true
}

// selectIndex restores the current selection's colors before tinting i. Caller must hold the mutex.
func (s *sceneEditor) selectIndex(i int) {
	s.restoreSelected()
	s.saved, _ = s.buffer.Colors(i)
	s.buffer.SetColor(i, s.highlight)
	s.selected = i
}

// restoreSelected writes back the vertex colors saved when the selection was made.
func (s *sceneEditor) restoreSelected() {
	if s.selected == noSelection {
		return
	}
	if !s.buffer.SetColors(s.selected, s.saved) {
		s.buffer.SetColor(s.selected, s.objects[s.selected].Color())
	}
	s.saved = nil
}

func (s *sceneEditor) Deselect() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == noSelection {
		return false
	}
	s.restoreSelected()
	s.selected = noSelection
	return true
}

func (s *sceneEditor) DeleteSelected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == noSelection {
		return false
	}
	return s.remove(s.selected)
}

func (s *sceneEditor) selectedObject() game_object.GameObject {
	if s.selected == noSelection {
		return nil
	}
	return s.objects[s.selected]
}

func (s *sceneEditor) TranslateSelected(dx, dy, dz float32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj := s.selectedObject()
	if obj == nil {
		return false
	}
	obj.Translate(dx, dy, dz)
	return true
}

func (s *sceneEditor) ScaleSelected(f float32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj := s.selectedObject()
	if obj == nil {
		return false
	}
	obj.ScaleBy(f)
	return true
}

func (s *sceneEditor) RotateSelected(drx, dry, drz float32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj := s.selectedObject()
	if obj == nil {
		return false
	}
	obj.Rotate(drx, dry, drz)
	return true
}

func (s *sceneEditor) HighlightColor() common.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlight
}

func (s *sceneEditor) SetHighlightColor(c common.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highlight = c
	if s.selected != noSelection {
		s.buffer.SetColor(s.selected, c)
	}
}

func (s *sceneEditor) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty()
}

func (s *sceneEditor) dirty() bool {
	return s.buffer.Dirty() || s.constantSlots != len(s.objects)
}

func (s *sceneEditor) Rebuild(dev Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty() {
		return nil
	}

	dev.ResetCommands()
	defer dev.SubmitCommands()

	if s.buffer.Dirty() {
		if err := dev.UploadMesh(s.buffer.VertexData(), s.buffer.IndexData()); err != nil {
			return fmt.Errorf("failed to upload mesh pools: %w", err)
		}
		s.buffer.ClearDirty()
		s.uploads++
	}
	if s.constantSlots != len(s.objects) {
		if err := dev.ResizeConstants(len(s.objects)); err != nil {
			return fmt.Errorf("failed to resize constants to %d: %w", len(s.objects), err)
		}
		s.constantSlots = len(s.objects)
	}
	return nil
}

func (s *sceneEditor) Update(dev Device, view, proj [16]float32, elapsed float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var viewProj [16]float32
	common.Mul4(viewProj[:], proj[:], view[:])
	frustum := common.ExtractFrustum(viewProj)

	layout := dev.MatrixLayout()
	s.visible = 0
	for _, obj := range s.objects {
		wvp := common.WorldViewProjection(obj.World(elapsed), view, proj, layout)
		dev.WriteConstants(obj.CBIndex(), common.MatrixBytes(wvp))
		if inView(frustum, obj) {
			s.visible++
		}
	}
}

// inView tests the object's model bounds, scaled by its largest axis, against f.
// Objects added without a model are always in view.
func inView(f common.Frustum, obj game_object.GameObject) bool {
	m := obj.Model()
	if m == nil {
		return true
	}
	x, y, z := obj.Position()
	sx, sy, sz := obj.Scale()
	scale := max(math32.Abs(sx), math32.Abs(sy), math32.Abs(sz))
	return f.ContainsSphere([3]float32{x, y, z}, m.BoundingRadius()*scale)
}

func (s *sceneEditor) Draw(dev Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, obj := range s.objects {
		if !obj.Enabled() {
			continue
		}
		sub, ok := s.buffer.SubMesh(i)
		if !ok {
			continue
		}
		dev.DrawIndexed(sub.IndexCount, sub.StartIndex, int32(sub.BaseVertex), obj.CBIndex())
	}
}

func (s *sceneEditor) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Objects:  len(s.objects),
		Vertices: s.buffer.VertexCount(),
		Indices:  s.buffer.IndexCount(),
		Uploads:  s.uploads,
		Selected: s.selected,
		Visible:  s.visible,
	}
}
