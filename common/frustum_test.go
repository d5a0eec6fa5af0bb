package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFrustum(t *testing.T) {
	var view, proj, vp [16]float32
	LookAt(view[:], [3]float32{0, 0, 10}, [3]float32{0, 0, 0}, [3]float32{0, 1, 0})
	Perspective(proj[:], DegToRad(90), 1, 1, 50)
	Mul4(vp[:], proj[:], view[:])
	f := ExtractFrustum(vp)

	assert.InDelta(t, 9, f.Planes[FrustumNear].SignedDistance(0, 0, 0), 1e-4)
	assert.InDelta(t, 40, f.Planes[FrustumFar].SignedDistance(0, 0, 0), 1e-3)

	assert.True(t, f.ContainsSphere([3]float32{0, 0, 0}, 0.1))
	assert.False(t, f.ContainsSphere([3]float32{0, 0, 20}, 1))
	assert.True(t, f.ContainsSphere([3]float32{0, 0, 20}, 15))
	assert.False(t, f.ContainsSphere([3]float32{30, 0, 0}, 1))
	assert.False(t, f.ContainsSphere([3]float32{0, 0, -50}, 1))
}
