package common

import "github.com/chewxy/math32"

// Plane is the set of points p with Normal·p + Distance = 0.
// Points with a positive signed distance lie on the inner side.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// SignedDistance returns the distance from p to the plane, positive on the inner side.
func (p Plane) SignedDistance(x, y, z float32) float32 {
	return p.Normal[0]*x + p.Normal[1]*y + p.Normal[2]*z + p.Distance
}

// Frustum is the six inward-facing planes bounding a camera's view volume.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// ExtractFrustum derives the view volume planes from a column-major proj * view matrix
// whose clip-space depth range is [0, 1], as Perspective produces.
//
// Parameters:
//   - viewProj: the combined view-projection matrix
//
// Returns:
//   - Frustum: the frustum with unit-length plane normals
func ExtractFrustum(viewProj [16]float32) Frustum {
	// row r of the column-major matrix is (m[r], m[4+r], m[8+r], m[12+r])
	row := func(r int) [4]float32 {
		return [4]float32{viewProj[r], viewProj[4+r], viewProj[8+r], viewProj[12+r]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	var f Frustum
	set := func(i int, a [4]float32, sign float32, b [4]float32) {
		p := &f.Planes[i]
		for k := 0; k < 3; k++ {
			p.Normal[k] = a[k] + sign*b[k]
		}
		p.Distance = a[3] + sign*b[3]

		length := math32.Sqrt(p.Normal[0]*p.Normal[0] + p.Normal[1]*p.Normal[1] + p.Normal[2]*p.Normal[2])
		if length > 0 {
			p.Normal[0] /= length
			p.Normal[1] /= length
			p.Normal[2] /= length
			p.Distance /= length
		}
	}

	set(FrustumLeft, r3, 1, r0)
	set(FrustumRight, r3, -1, r0)
	set(FrustumBottom, r3, 1, r1)
	set(FrustumTop, r3, -1, r1)
	set(FrustumNear, r2, 0, r2)
	set(FrustumFar, r3, -1, r2)
	return f
}

// ContainsSphere reports whether a sphere touches the view volume.
//
// Parameters:
//   - center: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: false only when the sphere lies entirely outside one plane
func (f Frustum) ContainsSphere(center [3]float32, radius float32) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(center[0], center[1], center[2]) < -radius {
			return false
		}
	}
	return true
}
