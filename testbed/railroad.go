package testbed

import (
	"fmt"

	"github.com/spaghettifunk/anima/engine/config"
	"github.com/spaghettifunk/anima/engine/core"
	"github.com/spaghettifunk/anima/engine/geometry"
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
	"github.com/spaghettifunk/anima/engine/spline"
	"github.com/spaghettifunk/anima/engine/track"
	"github.com/spaghettifunk/anima/engine/train"
)

var (
	groundColour   = math.NewVec3(0.2, 0.37, 0.2)
	waypointColour = math.NewVec3(1, 0, 0)
	splineColour   = math.NewVec3(0, 1, 0)
	approxColour   = math.NewVec3(1, 1, 0)
	pathColour     = math.NewVec3(1, 1, 1)
)

const (
	groundHeight float32 = -0.5
	groundScale  float32 = 20
	splineHeight float32 = 0.5
	approxHeight float32 = 1.0
)

// Railroad is the whole scene: ground, track, train and debug markers.
type Railroad struct {
	renderer *renderer.Renderer

	cube   *metadata.Mesh
	sphere *metadata.Mesh
	plane  *metadata.Mesh
	path   *metadata.Mesh

	cfg        *config.Config
	spline     *spline.Spline
	approx     *spline.Spline
	splinePath []math.Vec3
	ties       []*metadata.Object
	rails      *track.RailsDrawer
	train      *train.Train
}

// NewRailroad uploads the shared meshes. The scene stays empty until Build.
func NewRailroad(r *renderer.Renderer) (*Railroad, error) {
	rr := &Railroad{renderer: r, path: metadata.NewMesh("waypoints")}

	cube, err := geometry.GenerateCubeConfig(1, 1, 1, "cube")
	if err != nil {
		return nil, err
	}
	sphere, err := geometry.GenerateSphereConfig(1, 12, 24, "sphere")
	if err != nil {
		return nil, err
	}
	plane, err := geometry.GeneratePlaneConfig(1, 1, 1, 1, "plane")
	if err != nil {
		return nil, err
	}
	for _, m := range []struct {
		dst    **metadata.Mesh
		config *metadata.GeometryConfig
	}{{&rr.cube, cube}, {&rr.sphere, sphere}, {&rr.plane, plane}} {
		mesh, err := r.UploadConfig(m.config)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", m.config.Name, err)
		}
		*m.dst = mesh
	}
	return rr, nil
}

// Build replaces the current scene with one made from cfg.
func (rr *Railroad) Build(cfg *config.Config) error {
	rr.renderer.ClearObjects()
	rr.renderer.SetWireframe(cfg.Wireframe)
	rr.cfg = cfg

	ground := rr.renderer.CreateObject(rr.plane)
	ground.Colour = cfg.Colour(cfg.GroundColour, groundColour)
	ground.SetPosition(math.NewVec3(0, groundHeight, 0))
	ground.SetScale(math.NewVec3(groundScale, groundScale, groundScale))

	waypoints := cfg.Path()
	if cfg.ShowDebugInfo {
		for _, p := range waypoints {
			rr.marker(p, 0.25, waypointColour)
		}
		if err := rr.uploadPath(waypoints, cfg.IsLoop); err != nil {
			return err
		}
	}

	rr.spline = spline.New(waypoints, cfg.SplineEps, cfg.IsLoop)
	if cfg.ShowDebugInfo {
		rr.markSpline(rr.spline, splineHeight, 0.025, splineColour)
	}

	rr.approx = spline.Approx(rr.spline, cfg.TiesCount, cfg.ApproxEps)
	if cfg.ShowDebugInfo {
		rr.markSpline(rr.approx, approxHeight, 0.1, approxColour)
	}

	rr.ties = track.GenerateTies(rr.renderer, rr.cube, rr.approx.ToVector(), cfg.TiesWidth)
	tiesColour := cfg.Colour(cfg.TiesColour, track.TiesColour)
	for _, tie := range rr.ties {
		tie.Colour = tiesColour
	}

	rr.splinePath = rr.spline.ToVector()
	railsColour := cfg.Colour(cfg.RailsColour, track.DefaultRailsColour)
	if rr.rails == nil {
		rails, err := track.NewRailsDrawer(rr.renderer, rr.splinePath,
			track.WithLoop(cfg.IsLoop),
			track.WithTrackWidth(cfg.RailsTrackWidth),
			track.WithRailWidth(cfg.RailsWidth),
			track.WithColour(railsColour),
		)
		if err != nil {
			return err
		}
		rr.rails = rails
	} else {
		if err := rr.rails.SetPoints(rr.splinePath, cfg.IsLoop, cfg.RailsTrackWidth, cfg.RailsWidth); err != nil {
			return err
		}
		rr.rails.SetColour(railsColour)
	}

	rr.train = train.New(rr.renderer, rr.cube, rr.splinePath, cfg.CarsCount, cfg.TrainSpeed)
	carColour := cfg.Colour(cfg.CarColour, train.CarColour)
	for _, car := range rr.train.Cars() {
		car.Object().Colour = carColour
	}

	core.LogInfo("railroad built: %d segments, track length %.3f, %d ties, %d cars",
		rr.spline.Len(), rr.spline.Distance(), len(rr.ties), rr.train.Len())
	return nil
}

func (rr *Railroad) marker(position math.Vec3, scale float32, colour math.Vec3) {
	sphere := rr.renderer.CreateObject(rr.sphere)
	sphere.Colour = colour
	sphere.SetPosition(position)
	sphere.SetScale(math.NewVec3(scale, scale, scale))
}

// markSpline puts a small sphere on the start and a larger one on the end
// of every line, lifted to height.
func (rr *Railroad) markSpline(s *spline.Spline, height, scale float32, colour math.Vec3) {
	for _, segment := range s.Segments() {
		for _, line := range segment.Lines() {
			first, second := line.First(), line.Second()
			rr.marker(math.NewVec3(first.X, height, first.Z), scale, colour)
			rr.marker(math.NewVec3(second.X, height, second.Z), scale*2, colour)
		}
	}
}

func (rr *Railroad) uploadPath(waypoints []math.Vec3, loop bool) error {
	vertices := make([]math.Vertex3D, len(waypoints))
	for i, p := range waypoints {
		vertices[i] = math.Vertex3D{Position: p, Normal: math.NewVec3Up()}
	}
	var indices []uint32
	for i := 0; i+1 < len(waypoints); i++ {
		indices = append(indices, uint32(i), uint32(i+1))
	}
	if loop && len(waypoints) > 2 {
		indices = append(indices, uint32(len(waypoints)-1), 0)
	}
	return rr.renderer.UploadMesh(rr.path, vertices, indices)
}

// Update moves the train one step.
func (rr *Railroad) Update() {
	if rr.train != nil {
		rr.train.Advance(rr.splinePath)
	}
}

// Draw queues the rails and, in debug mode, the waypoint polyline.
func (rr *Railroad) Draw() {
	if rr.rails != nil {
		rr.rails.Draw()
	}
	if rr.cfg != nil && rr.cfg.ShowDebugInfo && rr.path.IsUploaded() {
		rr.renderer.DrawLines(rr.path, math.NewMat4Identity(), pathColour)
	}
}

func (rr *Railroad) Spline() *spline.Spline {
	return rr.spline
}

func (rr *Railroad) Approx() *spline.Spline {
	return rr.approx
}

func (rr *Railroad) SplinePath() []math.Vec3 {
	return rr.splinePath
}

func (rr *Railroad) Ties() []*metadata.Object {
	return rr.ties
}

func (rr *Railroad) Rails() *track.RailsDrawer {
	return rr.rails
}

func (rr *Railroad) Train() *train.Train {
	return rr.train
}
