package scene

import "github.com/Carmen-Shannon/oxy-scene/common"

// Device is the slice of the graphics device a SceneEditor drives.
// renderer.Renderer satisfies it.
type Device interface {
	// ResetCommands opens a batch of resource uploads.
	ResetCommands()

	// SubmitCommands flushes the batch opened by ResetCommands.
	SubmitCommands()

	// UploadMesh replaces the GPU vertex and index pools.
	//
	// Parameters:
	//   - vertexData: marshalled vertex pool
	//   - indexData: marshalled index pool, little-endian uint32
	//
	// Returns:
	//   - error: an error if the upload failed
	UploadMesh(vertexData, indexData []byte) error

	// ResizeConstants makes room for n per-object constant slots.
	//
	// Parameters:
	//   - n: slot count
	//
	// Returns:
	//   - error: an error if the constant storage could not be allocated
	ResizeConstants(n int) error

	// WriteConstants stores one object's constants in a slot.
	//
	// Parameters:
	//   - slot: the object's constant slot
	//   - data: the constant bytes
	WriteConstants(slot int, data []byte)

	// DrawIndexed draws one object's range of the packed pools with the constants in slot.
	//
	// Parameters:
	//   - indexCount: number of indices
	//   - startIndex: first index in the index pool
	//   - baseVertex: value added to every index before fetching a vertex
	//   - slot: constant slot to bind
	DrawIndexed(indexCount, startIndex uint32, baseVertex int32, slot int)

	// MatrixLayout reports how matrices must be laid out for the device's shaders.
	MatrixLayout() common.MatrixLayout
}
