package common

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
)

// MatrixLayout describes how a graphics device expects 4x4 matrices to be laid out in constant memory.
type MatrixLayout int

const (
	// ColumnMajor stores each column contiguously. This is the layout every helper in this package produces.
	ColumnMajor MatrixLayout = iota
	// RowMajor stores each row contiguously. Matrices must be transposed before upload.
	RowMajor
)

// String returns a readable name for the layout.
func (l MatrixLayout) String() string {
	switch l {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	default:
		return "unknown"
	}
}

// MatrixSize is the byte size of a 4x4 float32 matrix.
const MatrixSize = 16 * 4

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			buf[col*4+row] = sum
		}
	}
	copy(out, buf[:])
}

// Transpose4 writes the transpose of m into out. out and m may alias.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements)
func Transpose4(out, m []float32) {
	var buf [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			buf[row*4+col] = m[col*4+row]
		}
	}
	copy(out, buf[:])
}

// WorldViewProjection computes proj * view * world and returns it in the requested layout.
//
// Parameters:
//   - world, view, proj: column-major 4x4 matrices
//   - layout: the layout the consumer expects
//
// Returns:
//   - [16]float32: the combined matrix
func WorldViewProjection(world, view, proj [16]float32, layout MatrixLayout) [16]float32 {
	var viewProj, out [16]float32
	Mul4(viewProj[:], proj[:], view[:])
	Mul4(out[:], viewProj[:], world[:])
	if layout == RowMajor {
		Transpose4(out[:], out[:])
	}
	return out
}

// Perspective creates a right-handed perspective projection matrix mapping depth to the WebGPU clip range [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll). All matrices are column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: translation in world space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
func BuildModelMatrix(out []float32, pos, rot, scale [3]float32) {
	sx, cx := math32.Sincos(rot[0])
	sy, cy := math32.Sincos(rot[1])
	sz, cz := math32.Sincos(rot[2])

	// R = Ry * Rx * Rz
	out[0] = (cy*cz + sy*sx*sz) * scale[0]
	out[1] = (cx * sz) * scale[0]
	out[2] = (-sy*cz + cy*sx*sz) * scale[0]
	out[3] = 0

	out[4] = (-cy*sz + sy*sx*cz) * scale[1]
	out[5] = (cx * cz) * scale[1]
	out[6] = (sy*sz + cy*sx*cz) * scale[1]
	out[7] = 0

	out[8] = (sy * cx) * scale[2]
	out[9] = -sx * scale[2]
	out[10] = (cy * cx) * scale[2]
	out[11] = 0

	out[12] = pos[0]
	out[13] = pos[1]
	out[14] = pos[2]
	out[15] = 1
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation
func LookAt(out []float32, eye, center, up [3]float32) {
	z := normalize([3]float32{eye[0] - center[0], eye[1] - center[1], eye[2] - center[2]})
	x := normalize(cross(up, z))
	y := cross(z, x)

	out[0], out[4], out[8], out[12] = x[0], x[1], x[2], -dot(x, eye)
	out[1], out[5], out[9], out[13] = y[0], y[1], y[2], -dot(y, eye)
	out[2], out[6], out[10], out[14] = z[0], z[1], z[2], -dot(z, eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// MatrixBytes encodes a matrix as 64 little-endian bytes in its stored order.
//
// Parameters:
//   - m: the matrix to encode
//
// Returns:
//   - []byte: the encoded matrix
func MatrixBytes(m [16]float32) []byte {
	out := make([]byte, MatrixSize)
	for i, v := range m {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180.0)
}

// Clamp restricts v to the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func normalize(v [3]float32) [3]float32 {
	l := math32.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
