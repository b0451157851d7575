// Package headless implements a renderer backend that keeps geometry in
// memory and records draw calls instead of talking to a GPU.
package headless

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima/engine/core"
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

type geometry struct {
	vertices []math.Vertex3D
	indices  []uint32
}

type Backend struct {
	width, height uint32
	geometries    map[uuid.UUID]geometry
	inFrame       bool
	current       []metadata.GeometryRenderData
	lastFrame     []metadata.GeometryRenderData
	frameCount    uint64
}

func New() *Backend {
	return &Backend{geometries: make(map[uuid.UUID]geometry)}
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	b.width, b.height = appWidth, appHeight
	core.LogDebug("headless backend initialized for '%s' (%dx%d)", appName, appWidth, appHeight)
	return nil
}

func (b *Backend) Shutdown() error {
	b.geometries = make(map[uuid.UUID]geometry)
	return nil
}

func (b *Backend) Resized(width, height uint32) error {
	b.width, b.height = width, height
	return nil
}

func (b *Backend) BeginFrame(deltaTime float64) error {
	if b.inFrame {
		return fmt.Errorf("%w: BeginFrame called twice", core.ErrInvalidStage)
	}
	b.inFrame = true
	b.current = b.current[:0]
	return nil
}

func (b *Backend) EndFrame(deltaTime float64) error {
	if !b.inFrame {
		return fmt.Errorf("%w: EndFrame without BeginFrame", core.ErrInvalidStage)
	}
	b.inFrame = false
	b.lastFrame = append(b.lastFrame[:0], b.current...)
	b.frameCount++
	return nil
}

func (b *Backend) CreateGeometry(mesh *metadata.Mesh, vertices []math.Vertex3D, indices []uint32) error {
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return fmt.Errorf("%w: index %d out of range for %d vertices", core.ErrInvalidArgument, idx, len(vertices))
		}
	}
	if mesh.InternalID == uuid.Nil {
		mesh.InternalID = uuid.New()
	}
	b.geometries[mesh.InternalID] = geometry{
		vertices: append([]math.Vertex3D(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
	}
	return nil
}

func (b *Backend) DestroyGeometry(mesh *metadata.Mesh) {
	delete(b.geometries, mesh.InternalID)
	mesh.InternalID = uuid.Nil
}

func (b *Backend) DrawGeometry(data metadata.GeometryRenderData) {
	if !b.inFrame {
		core.LogWarn("draw of '%s' outside of a frame ignored", data.Mesh.Name)
		return
	}
	b.current = append(b.current, data)
}

// Geometry returns a copy-free view of what was last uploaded for mesh.
func (b *Backend) Geometry(mesh *metadata.Mesh) ([]math.Vertex3D, []uint32, bool) {
	g, ok := b.geometries[mesh.InternalID]
	return g.vertices, g.indices, ok
}

// LastFrame returns the draws recorded by the most recently completed frame.
func (b *Backend) LastFrame() []metadata.GeometryRenderData {
	return b.lastFrame
}

func (b *Backend) FrameCount() uint64 {
	return b.frameCount
}

func (b *Backend) Size() (uint32, uint32) {
	return b.width, b.height
}
