package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFract(t *testing.T) {
	assert.InDelta(t, 0.25, Fract(1.25), 1e-6)
	assert.InDelta(t, 0.75, Fract(-0.25), 1e-6)
	assert.Equal(t, float32(0), Fract(3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-1, 0, 7))
	assert.Equal(t, 7, Clamp(9, 0, 7))
	assert.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
}

func TestCatmullRomPassesThroughInnerPoints(t *testing.T) {
	p0 := NewVec3(-1, 0, 0)
	p1 := NewVec3(0, 0, 0)
	p2 := NewVec3(1, 1, 0)
	p3 := NewVec3(2, 1, 0)

	assert.True(t, CatmullRom(p0, p1, p2, p3, 0).Compare(p1, 1e-6))
	assert.True(t, CatmullRom(p0, p1, p2, p3, 1).Compare(p2, 1e-6))
}

func TestCatmullRomCollinearIsLinear(t *testing.T) {
	p := func(x float32) Vec3 { return NewVec3(x, 0, 0) }
	got := CatmullRom(p(0), p(1), p(2), p(3), 0.5)
	assert.True(t, got.Compare(p(1.5), 1e-6), "got %v", got)
}

func TestQuatLookAt(t *testing.T) {
	up := NewVec3Up()

	q := NewQuatLookAt(NewVec3Forward(), up)
	assert.InDelta(t, 1, q.W, 1e-6)

	for _, dir := range []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(-1, 0, 0),
		NewVec3(0, 0, 1),
		NewVec3(3, 0, -4).Normalized(),
		NewVec3(1, 1, 1).Normalized(),
	} {
		q := NewQuatLookAt(dir, up)
		assert.InDelta(t, 1, q.Normal(), 1e-5)
		got := q.Rotate(NewVec3Forward())
		assert.True(t, got.Compare(dir, 1e-5), "looking along %v produced %v", dir, got)
	}
}

func TestTransformLocal(t *testing.T) {
	tr := TransformFromPositionRotationScale(
		NewVec3(1, 2, 3),
		NewQuatFromAxisAngle(NewVec3Up(), DegToRad(90)),
		NewVec3(2, 2, 2),
	)
	origin := NewVec3Zero().Transform(tr.GetLocal())
	assert.True(t, origin.Compare(NewVec3(1, 2, 3), 1e-5))
	assert.False(t, tr.IsDirty)

	p := NewVec3(1, 0, 0).Transform(tr.GetLocal())
	assert.True(t, p.Compare(NewVec3(1, 2, 1), 1e-5), "got %v", p)
}

func TestVec3(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	assert.Equal(t, NewVec3(0, 0, 1), a.Cross(b))
	assert.InDelta(t, 1.4142135, a.Distance(b), 1e-6)
	assert.Equal(t, NewVec3(0.5, 0.5, 0), a.Lerp(b, 0.5))
	assert.InDelta(t, 1, NewVec3(3, 4, 0).Normalized().Length(), 1e-6)
}
