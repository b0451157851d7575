package renderer

import (
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

// RendererBackend is the graphics API side of the renderer.
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
	// CreateGeometry replaces whatever data the backend holds for mesh.
	CreateGeometry(mesh *metadata.Mesh, vertices []math.Vertex3D, indices []uint32) error
	DestroyGeometry(mesh *metadata.Mesh)
	DrawGeometry(data metadata.GeometryRenderData)
}
