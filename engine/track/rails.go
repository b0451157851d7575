package track

import (
	"fmt"

	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

const (
	DefaultTrackWidth float32 = 0.2
	DefaultRailWidth  float32 = 1.4
)

var DefaultRailsColour = math.NewVec3(0.15, 0.15, 0.15)

type railsOptions struct {
	loop       bool
	trackWidth float32
	railWidth  float32
	colour     math.Vec3
}

type RailsOption func(*railsOptions)

func WithLoop(loop bool) RailsOption {
	return func(o *railsOptions) { o.loop = loop }
}

// WithTrackWidth sets the distance from the curve to the inner edge of each rail.
func WithTrackWidth(width float32) RailsOption {
	return func(o *railsOptions) { o.trackWidth = width }
}

// WithRailWidth sets the ratio between the outer and the inner edge distance.
func WithRailWidth(width float32) RailsOption {
	return func(o *railsOptions) { o.railWidth = width }
}

func WithColour(colour math.Vec3) RailsOption {
	return func(o *railsOptions) { o.colour = colour }
}

// RailsDrawer extrudes a polyline into a left and a right rail strip lying
// in the horizontal plane. Both strips share one index buffer.
type RailsDrawer struct {
	renderer  MeshRenderer
	leftRail  *metadata.Mesh
	rightRail *metadata.Mesh
	colour    math.Vec3

	leftVertices  []math.Vertex3D
	rightVertices []math.Vertex3D
	indices       []uint32
}

func NewRailsDrawer(renderer MeshRenderer, points []math.Vec3, opts ...RailsOption) (*RailsDrawer, error) {
	o := railsOptions{
		trackWidth: DefaultTrackWidth,
		railWidth:  DefaultRailWidth,
		colour:     DefaultRailsColour,
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := &RailsDrawer{
		renderer:  renderer,
		leftRail:  metadata.NewMesh("rails_left"),
		rightRail: metadata.NewMesh("rails_right"),
		colour:    o.colour,
	}
	if err := r.SetPoints(points, o.loop, o.trackWidth, o.railWidth); err != nil {
		return nil, err
	}
	return r, nil
}

// SetPoints rebuilds and uploads both rails. For every point but the last
// each rail gets two vertices, offset sideways from the point along
// cross(forward, up) by trackWidth and trackWidth*railWidth. Consecutive
// vertex pairs form quads; a looped track gets a closing quad back to the
// first pair. Fewer than two points give empty rails.
func (r *RailsDrawer) SetPoints(points []math.Vec3, loop bool, trackWidth, railWidth float32) error {
	up := math.NewVec3Up()
	size := len(points)

	r.leftVertices = r.leftVertices[:0]
	r.rightVertices = r.rightVertices[:0]
	r.indices = r.indices[:0]

	for i := 0; i+1 < size; i++ {
		forward := points[i+1].Sub(points[i]).Normalized()
		right := forward.Cross(up)
		inner := right.MulScalar(trackWidth)
		outer := right.MulScalar(trackWidth * railWidth)

		r.leftVertices = append(r.leftVertices,
			railVertex(points[i].Sub(outer)),
			railVertex(points[i].Sub(inner)),
		)
		r.rightVertices = append(r.rightVertices,
			railVertex(points[i].Add(inner)),
			railVertex(points[i].Add(outer)),
		)
	}

	for i := 0; i < size*2-4; i += 2 {
		n := uint32(i)
		r.indices = append(r.indices, n, n+1, n+2, n+1, n+3, n+2)
	}

	if len(r.indices) > 0 && loop {
		last := uint32(len(r.leftVertices))
		r.indices = append(r.indices, last-2, last-1, 0, last-1, 1, 0)
	}

	if err := r.renderer.UploadMesh(r.leftRail, r.leftVertices, r.indices); err != nil {
		return fmt.Errorf("failed to upload left rail: %w", err)
	}
	if err := r.renderer.UploadMesh(r.rightRail, r.rightVertices, r.indices); err != nil {
		return fmt.Errorf("failed to upload right rail: %w", err)
	}
	return nil
}

func railVertex(position math.Vec3) math.Vertex3D {
	return math.Vertex3D{Position: position, Normal: math.NewVec3Up()}
}

// Draw queues both rails with an identity model matrix.
func (r *RailsDrawer) Draw() {
	model := math.NewMat4Identity()
	r.renderer.DrawMesh(r.leftRail, model, r.colour)
	r.renderer.DrawMesh(r.rightRail, model, r.colour)
}

func (r *RailsDrawer) SetColour(colour math.Vec3) {
	r.colour = colour
}

func (r *RailsDrawer) Colour() math.Vec3 {
	return r.colour
}

func (r *RailsDrawer) LeftVertices() []math.Vertex3D {
	return r.leftVertices
}

func (r *RailsDrawer) RightVertices() []math.Vertex3D {
	return r.rightVertices
}

func (r *RailsDrawer) Indices() []uint32 {
	return r.indices
}

func (r *RailsDrawer) Meshes() (*metadata.Mesh, *metadata.Mesh) {
	return r.leftRail, r.rightRail
}
