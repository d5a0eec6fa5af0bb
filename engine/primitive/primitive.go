// Package primitive generates procedural triangle meshes centered on the origin.
// Every generator returns counter-clockwise triangles (viewed from outside) in DimGray.
package primitive

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-scene/common"
	"github.com/Carmen-Shannon/oxy-scene/engine/mesh"
)

// MaxGeoSphereSubdivisions caps GeoSphere refinement.
const MaxGeoSphereSubdivisions = 6

func vertex(x, y, z float32) mesh.Vertex {
	return mesh.NewVertex(x, y, z, common.DimGray)
}

// Box builds an axis-aligned box with 8 shared corner vertices.
//
// Parameters:
//   - width, height, depth: full extents along x, y, z
//
// Returns:
//   - mesh.Geometry: 8 vertices and 36 indices
func Box(width, height, depth float32) mesh.Geometry {
	w, h, d := width/2, height/2, depth/2
	return mesh.Geometry{
		Vertices: []mesh.Vertex{
			vertex(-w, -h, -d),
			vertex(-w, +h, -d),
			vertex(+w, +h, -d),
			vertex(+w, -h, -d),
			vertex(-w, -h, +d),
			vertex(-w, +h, +d),
			vertex(+w, +h, +d),
			vertex(+w, -h, +d),
		},
		Indices: []uint32{
			0, 1, 2, 0, 2, 3, // front
			4, 6, 5, 4, 7, 6, // back
			4, 5, 1, 4, 1, 0, // left
			3, 2, 6, 3, 6, 7, // right
			1, 5, 6, 1, 6, 2, // top
			4, 0, 3, 4, 3, 7, // bottom
		},
	}
}

// Cylinder builds a capped, possibly tapered cylinder along the y axis.
//
// Parameters:
//   - bottomRadius, topRadius: radii at y = -height/2 and y = +height/2
//   - height: full height
//   - slices: subdivisions around the axis (minimum 3)
//   - stacks: subdivisions along the axis (minimum 1)
//
// Returns:
//   - mesh.Geometry: (stacks+1)*(slices+1) side vertices plus two caps of slices+2 vertices
func Cylinder(bottomRadius, topRadius, height float32, slices, stacks int) mesh.Geometry {
	slices = max(slices, 3)
	stacks = max(stacks, 1)

	var g mesh.Geometry
	stackHeight := height / float32(stacks)
	radiusStep := (topRadius - bottomRadius) / float32(stacks)
	dTheta := 2 * math32.Pi / float32(slices)

	for i := 0; i <= stacks; i++ {
		y := -height/2 + float32(i)*stackHeight
		r := bottomRadius + float32(i)*radiusStep
		for j := 0; j <= slices; j++ {
			s, c := math32.Sincos(float32(j) * dTheta)
			g.Vertices = append(g.Vertices, vertex(r*c, y, r*s))
		}
	}

	ring := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			g.Indices = append(g.Indices,
				i*ring+j, (i+1)*ring+j, (i+1)*ring+j+1,
				i*ring+j, (i+1)*ring+j+1, i*ring+j+1,
			)
		}
	}

	cylinderCap(&g, topRadius, height/2, slices, true)
	cylinderCap(&g, bottomRadius, -height/2, slices, false)
	return g
}

func cylinderCap(g *mesh.Geometry, radius, y float32, slices int, top bool) {
	base := uint32(len(g.Vertices))
	dTheta := 2 * math32.Pi / float32(slices)
	for i := 0; i <= slices; i++ {
		s, c := math32.Sincos(float32(i) * dTheta)
		g.Vertices = append(g.Vertices, vertex(radius*c, y, radius*s))
	}
	g.Vertices = append(g.Vertices, vertex(0, y, 0))
	center := uint32(len(g.Vertices) - 1)

	for i := uint32(0); i < uint32(slices); i++ {
		if top {
			g.Indices = append(g.Indices, center, base+i+1, base+i)
		} else {
			g.Indices = append(g.Indices, center, base+i, base+i+1)
		}
	}
}

// Sphere builds a UV sphere with single pole vertices.
//
// Parameters:
//   - radius: sphere radius
//   - slices: subdivisions around the y axis (minimum 3)
//   - stacks: subdivisions from pole to pole (minimum 2)
//
// Returns:
//   - mesh.Geometry: (stacks-1)*(slices+1)+2 vertices
func Sphere(radius float32, slices, stacks int) mesh.Geometry {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	var g mesh.Geometry
	g.Vertices = append(g.Vertices, vertex(0, radius, 0))

	phiStep := math32.Pi / float32(stacks)
	thetaStep := 2 * math32.Pi / float32(slices)
	for i := 1; i < stacks; i++ {
		sp, cp := math32.Sincos(float32(i) * phiStep)
		for j := 0; j <= slices; j++ {
			st, ct := math32.Sincos(float32(j) * thetaStep)
			g.Vertices = append(g.Vertices, vertex(radius*sp*ct, radius*cp, radius*sp*st))
		}
	}
	g.Vertices = append(g.Vertices, vertex(0, -radius, 0))

	ring := uint32(slices + 1)
	for i := uint32(1); i <= uint32(slices); i++ {
		g.Indices = append(g.Indices, 0, i+1, i)
	}

	const base = 1
	for i := uint32(0); i < uint32(stacks-2); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			g.Indices = append(g.Indices,
				base+i*ring+j, base+i*ring+j+1, base+(i+1)*ring+j,
				base+(i+1)*ring+j, base+i*ring+j+1, base+(i+1)*ring+j+1,
			)
		}
	}

	south := uint32(len(g.Vertices) - 1)
	last := south - ring
	for i := uint32(0); i < uint32(slices); i++ {
		g.Indices = append(g.Indices, south, last+i, last+i+1)
	}
	return g
}

// GeoSphere builds a sphere by subdividing an icosahedron and projecting onto the radius.
//
// Parameters:
//   - radius: sphere radius
//   - subdivisions: refinement passes, clamped to [0, MaxGeoSphereSubdivisions]
//
// Returns:
//   - mesh.Geometry: 20*4^n triangles
func GeoSphere(radius float32, subdivisions int) mesh.Geometry {
	subdivisions = min(max(subdivisions, 0), MaxGeoSphereSubdivisions)

	const x, z = 0.525731, 0.850651
	positions := [][3]float32{
		{-x, 0, z}, {x, 0, z}, {-x, 0, -z}, {x, 0, -z},
		{0, z, x}, {0, z, -x}, {0, -z, x}, {0, -z, -x},
		{z, x, 0}, {-z, x, 0}, {z, -x, 0}, {-z, -x, 0},
	}
	indices := []uint32{
		1, 4, 0, 4, 9, 0, 4, 5, 9, 8, 5, 4, 1, 8, 4,
		1, 10, 8, 10, 3, 8, 8, 3, 5, 3, 2, 5, 3, 7, 2,
		3, 10, 7, 10, 6, 7, 6, 11, 7, 6, 0, 11, 6, 1, 0,
		10, 1, 6, 11, 0, 9, 2, 11, 9, 5, 2, 9, 11, 2, 7,
	}

	for i := 0; i < subdivisions; i++ {
		positions, indices = subdivide(positions, indices)
	}

	g := mesh.Geometry{Indices: indices}
	g.Vertices = make([]mesh.Vertex, len(positions))
	for i, p := range positions {
		l := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		g.Vertices[i] = vertex(radius*p[0]/l, radius*p[1]/l, radius*p[2]/l)
	}
	return g
}

// subdivide splits every triangle into four, emitting six unshared vertices per source triangle.
func subdivide(positions [][3]float32, indices []uint32) ([][3]float32, []uint32) {
	tris := len(indices) / 3
	outPos := make([][3]float32, 0, tris*6)
	outIdx := make([]uint32, 0, tris*12)

	mid := func(a, b [3]float32) [3]float32 {
		return [3]float32{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2}
	}

	for t := 0; t < tris; t++ {
		v0 := positions[indices[t*3]]
		v1 := positions[indices[t*3+1]]
		v2 := positions[indices[t*3+2]]
		m0, m1, m2 := mid(v0, v1), mid(v1, v2), mid(v0, v2)

		base := uint32(len(outPos))
		outPos = append(outPos, v0, v1, v2, m0, m1, m2)
		outIdx = append(outIdx,
			base+0, base+3, base+5,
			base+3, base+4, base+5,
			base+5, base+4, base+2,
			base+3, base+1, base+4,
		)
	}
	return outPos, outIdx
}

// Grid builds a flat m x n vertex grid in the xz plane.
//
// Parameters:
//   - width: extent along x
//   - depth: extent along z
//   - m: rows of vertices along z (minimum 2)
//   - n: columns of vertices along x (minimum 2)
//
// Returns:
//   - mesh.Geometry: m*n vertices and 6*(m-1)*(n-1) indices
func Grid(width, depth float32, m, n int) mesh.Geometry {
	m = max(m, 2)
	n = max(n, 2)

	var g mesh.Geometry
	dx := width / float32(n-1)
	dz := depth / float32(m-1)
	for i := 0; i < m; i++ {
		z := depth/2 - float32(i)*dz
		for j := 0; j < n; j++ {
			g.Vertices = append(g.Vertices, vertex(-width/2+float32(j)*dx, 0, z))
		}
	}

	cols := uint32(n)
	for i := uint32(0); i < uint32(m-1); i++ {
		for j := uint32(0); j < cols-1; j++ {
			g.Indices = append(g.Indices,
				i*cols+j, i*cols+j+1, (i+1)*cols+j,
				(i+1)*cols+j, i*cols+j+1, (i+1)*cols+j+1,
			)
		}
	}
	return g
}

// Quad builds a single rectangle in the xy plane.
//
// Parameters:
//   - width, height: full extents along x and y
//
// Returns:
//   - mesh.Geometry: 4 vertices and 6 indices
func Quad(width, height float32) mesh.Geometry {
	w, h := width/2, height/2
	return mesh.Geometry{
		Vertices: []mesh.Vertex{
			vertex(-w, -h, 0),
			vertex(-w, +h, 0),
			vertex(+w, +h, 0),
			vertex(+w, -h, 0),
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}
