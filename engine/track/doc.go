// Package track turns a sampled curve into the visible railroad: two rail
// strips extruded on either side of the curve and ties laid across it.
package track

import (
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

// MeshRenderer uploads and draws raw geometry.
type MeshRenderer interface {
	UploadMesh(mesh *metadata.Mesh, vertices []math.Vertex3D, indices []uint32) error
	DrawMesh(mesh *metadata.Mesh, model math.Mat4, albedo math.Vec3)
}

// ObjectFactory places new instances of a mesh in the scene.
type ObjectFactory interface {
	CreateObject(mesh *metadata.Mesh) *metadata.Object
}
