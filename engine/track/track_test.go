package track

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer"
	"github.com/spaghettifunk/anima/engine/renderer/headless"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
	"github.com/spaghettifunk/anima/engine/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) (*renderer.Renderer, *headless.Backend) {
	t.Helper()
	backend := headless.New()
	r := renderer.New(backend)
	require.NoError(t, r.Initialize("track", 800, 600))
	t.Cleanup(func() { _ = r.Shutdown() })
	return r, backend
}

func straightLine(n int) []math.Vec3 {
	points := make([]math.Vec3, n)
	for i := range points {
		points[i] = math.NewVec3(float32(i), 0, 0)
	}
	return points
}

func positions(vertices []math.Vertex3D) []math.Vec3 {
	res := make([]math.Vec3, len(vertices))
	for i, v := range vertices {
		res[i] = v.Position
	}
	return res
}

func TestRailsStraightTrack(t *testing.T) {
	r, _ := newTestRenderer(t)

	rails, err := NewRailsDrawer(r, straightLine(4), WithTrackWidth(0.2), WithRailWidth(1.3))
	require.NoError(t, err)

	wantLeft := []math.Vec3{
		{X: 0, Z: -0.26}, {X: 0, Z: -0.2},
		{X: 1, Z: -0.26}, {X: 1, Z: -0.2},
		{X: 2, Z: -0.26}, {X: 2, Z: -0.2},
	}
	wantRight := []math.Vec3{
		{X: 0, Z: 0.2}, {X: 0, Z: 0.26},
		{X: 1, Z: 0.2}, {X: 1, Z: 0.26},
		{X: 2, Z: 0.2}, {X: 2, Z: 0.26},
	}
	approx := cmpopts.EquateApprox(0, 1e-6)
	if diff := cmp.Diff(wantLeft, positions(rails.LeftVertices()), approx); diff != "" {
		t.Errorf("left rail mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantRight, positions(rails.RightVertices()), approx); diff != "" {
		t.Errorf("right rail mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []uint32{0, 1, 2, 1, 3, 2, 2, 3, 4, 3, 5, 4}, rails.Indices())

	for _, v := range rails.LeftVertices() {
		assert.Equal(t, math.NewVec3Up(), v.Normal)
	}
}

func TestRailsLoopClosingQuad(t *testing.T) {
	r, _ := newTestRenderer(t)

	rails, err := NewRailsDrawer(r, straightLine(4), WithLoop(true))
	require.NoError(t, err)

	indices := rails.Indices()
	require.Len(t, indices, 18)
	assert.Equal(t, []uint32{4, 5, 0, 5, 1, 0}, indices[12:])
}

func TestRailsVertexCounts(t *testing.T) {
	r, backend := newTestRenderer(t)
	path := spline.New([]math.Vec3{
		math.NewVec3(0, 0, 7),
		math.NewVec3(-6, 0, 5),
		math.NewVec3(-8, 0, 1),
		math.NewVec3(-4, 0, -6),
		math.NewVec3(0, 0, -7),
	}, spline.DefaultEps, true).ToVector()

	rails, err := NewRailsDrawer(r, path, WithLoop(true))
	require.NoError(t, err)

	size := len(path)
	assert.Len(t, rails.LeftVertices(), 2*(size-1))
	assert.Len(t, rails.RightVertices(), 2*(size-1))
	assert.Len(t, rails.Indices(), 6*(size-2)+6)
	for _, idx := range rails.Indices() {
		assert.Less(t, int(idx), len(rails.LeftVertices()))
	}

	left, right := rails.Meshes()
	vertices, indices, ok := backend.Geometry(left)
	require.True(t, ok)
	assert.Len(t, vertices, 2*(size-1))
	assert.Equal(t, rails.Indices(), indices)
	assert.Equal(t, uint32(1), left.Generation)
	assert.Equal(t, uint32(len(indices)), right.IndexCount)
}

func TestRailsTooFewPoints(t *testing.T) {
	r, _ := newTestRenderer(t)

	for _, points := range [][]math.Vec3{nil, straightLine(1)} {
		rails, err := NewRailsDrawer(r, points, WithLoop(true))
		require.NoError(t, err)
		assert.Empty(t, rails.LeftVertices())
		assert.Empty(t, rails.RightVertices())
		assert.Empty(t, rails.Indices())
	}
}

func TestRailsSetPointsReplacesGeometry(t *testing.T) {
	r, _ := newTestRenderer(t)
	rails, err := NewRailsDrawer(r, straightLine(10))
	require.NoError(t, err)

	require.NoError(t, rails.SetPoints(straightLine(3), false, 0.2, 1.3))

	assert.Len(t, rails.LeftVertices(), 4)
	assert.Len(t, rails.Indices(), 6)
	left, _ := rails.Meshes()
	assert.Equal(t, uint32(2), left.Generation)
}

func TestRailsDraw(t *testing.T) {
	r, backend := newTestRenderer(t)
	rails, err := NewRailsDrawer(r, straightLine(4))
	require.NoError(t, err)
	assert.Equal(t, DefaultRailsColour, rails.Colour())

	rails.SetColour(math.NewVec3(0.5, 0.5, 0.5))
	rails.Draw()
	require.NoError(t, r.DrawFrame(0.016))

	frame := backend.LastFrame()
	require.Len(t, frame, 2)
	left, right := rails.Meshes()
	assert.Same(t, left, frame[0].Mesh)
	assert.Same(t, right, frame[1].Mesh)
	for _, draw := range frame {
		assert.Equal(t, math.NewMat4Identity(), draw.Model)
		assert.Equal(t, math.NewVec3(0.5, 0.5, 0.5), draw.Albedo)
		assert.Equal(t, metadata.PrimitiveTopologyTriangleList, draw.Topology)
	}

	require.NoError(t, r.DrawFrame(0.016))
	assert.Empty(t, backend.LastFrame())
}

func TestGenerateTies(t *testing.T) {
	r, _ := newTestRenderer(t)
	tieMesh := metadata.NewMesh("tie")

	ties := GenerateTies(r, tieMesh, straightLine(4), 1.0)

	require.Len(t, ties, 4)
	assert.Len(t, r.Objects(), 4)
	for i, tie := range ties {
		assert.Same(t, tieMesh, tie.Mesh)
		assert.Equal(t, math.NewVec3(float32(i), 0, 0), tie.Position())
		assert.Equal(t, TiesColour, tie.Colour)
		assert.Equal(t, math.NewVec3(1.0, 0, 0.1), tie.Transform.Scale)

		facing := tie.Transform.Rotation.Rotate(math.NewVec3Forward())
		want := math.NewVec3(1, 0, 0)
		if i == len(ties)-1 {
			want = math.NewVec3(-1, 0, 0)
		}
		assert.True(t, facing.Compare(want, 1e-5), "tie %d faces %v", i, facing)
	}
}

func TestGenerateTiesTooFewPoints(t *testing.T) {
	r, _ := newTestRenderer(t)
	tieMesh := metadata.NewMesh("tie")

	assert.Empty(t, GenerateTies(r, tieMesh, nil, 1.0))
	assert.Empty(t, GenerateTies(r, tieMesh, straightLine(1), 1.0))
	assert.Empty(t, r.Objects())
}
