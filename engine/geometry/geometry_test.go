package geometry

import (
	"testing"

	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faceNormal returns the unnormalized normal of triangle t.
func faceNormal(config *metadata.GeometryConfig, t int) (math.Vec3, math.Vec3) {
	p0 := config.Vertices[config.Indices[t*3+0]].Position
	p1 := config.Vertices[config.Indices[t*3+1]].Position
	p2 := config.Vertices[config.Indices[t*3+2]].Position
	centroid := p0.Add(p1).Add(p2).MulScalar(1.0 / 3.0)
	return p1.Sub(p0).Cross(p2.Sub(p0)), centroid
}

func TestGenerateCubeConfig(t *testing.T) {
	config, err := GenerateCubeConfig(2, 4, 6, "box")
	require.NoError(t, err)

	assert.Equal(t, "box", config.Name)
	assert.Len(t, config.Vertices, 24)
	assert.Len(t, config.Indices, 36)
	assert.Equal(t, math.NewVec3(1, 2, 3), config.MaxExtents)
	assert.Equal(t, math.NewVec3(-1, -2, -3), config.MinExtents)

	for _, v := range config.Vertices {
		assert.InDelta(t, 1, absf(v.Position.X), 1e-6)
		assert.InDelta(t, 2, absf(v.Position.Y), 1e-6)
		assert.InDelta(t, 3, absf(v.Position.Z), 1e-6)
	}
	for tri := 0; tri < len(config.Indices)/3; tri++ {
		n, c := faceNormal(config, tri)
		assert.Greater(t, n.Dot(c), float32(0), "triangle %d faces inwards", tri)
	}
}

func TestGenerateCubeConfigDefaults(t *testing.T) {
	config, err := GenerateCubeConfig(0, 0, 0, "")
	require.NoError(t, err)

	assert.Equal(t, metadata.DefaultGeometryName, config.Name)
	assert.Equal(t, math.NewVec3(0.5, 0.5, 0.5), config.MaxExtents)
}

func TestGeneratePlaneConfig(t *testing.T) {
	config, err := GeneratePlaneConfig(20, 10, 4, 2, "ground")
	require.NoError(t, err)

	assert.Len(t, config.Vertices, 5*3)
	assert.Len(t, config.Indices, 4*2*6)
	for _, v := range config.Vertices {
		assert.Equal(t, float32(0), v.Position.Y)
		assert.LessOrEqual(t, absf(v.Position.X), float32(10))
		assert.LessOrEqual(t, absf(v.Position.Z), float32(5))
	}
	for tri := 0; tri < len(config.Indices)/3; tri++ {
		n, _ := faceNormal(config, tri)
		assert.Greater(t, n.Y, float32(0), "triangle %d faces down", tri)
	}

	config, err = GeneratePlaneConfig(1, 1, 0, 0, "")
	require.NoError(t, err)
	assert.Len(t, config.Vertices, 4)
	assert.Len(t, config.Indices, 6)
}

func TestGenerateSphereConfig(t *testing.T) {
	config, err := GenerateSphereConfig(0.5, 8, 12, "sphere")
	require.NoError(t, err)

	assert.Len(t, config.Vertices, 9*13)
	assert.Len(t, config.Indices, 8*12*6)
	for _, v := range config.Vertices {
		assert.InDelta(t, 0.5, v.Position.Length(), 1e-5)
		assert.InDelta(t, 1, v.Normal.Length(), 1e-5)
	}
	for tri := 0; tri < len(config.Indices)/3; tri++ {
		n, c := faceNormal(config, tri)
		assert.GreaterOrEqual(t, n.Dot(c), float32(-1e-6), "triangle %d faces inwards", tri)
	}
	for _, idx := range config.Indices {
		assert.Less(t, int(idx), len(config.Vertices))
	}
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
