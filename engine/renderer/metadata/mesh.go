package metadata

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/anima/engine/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief Represents the configuration for a geometry: the raw vertex and
 * index data, ready to be uploaded.
 */
type GeometryConfig struct {
	Vertices []math.Vertex3D
	Indices  []uint32

	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3

	/** @brief The Name of the geometry. */
	Name string
}

// Mesh is a named handle to geometry living in the rendering backend.
// Generation starts at InvalidGeneration and is bumped on every upload.
type Mesh struct {
	Name string
	/** @brief The internal identifier, used by the renderer backend to map to internal resources. */
	InternalID  uuid.UUID
	Generation  uint32
	VertexCount uint32
	IndexCount  uint32
}

const InvalidGeneration uint32 = 0

func NewMesh(name string) *Mesh {
	if name == "" {
		name = DefaultGeometryName
	}
	return &Mesh{Name: name, Generation: InvalidGeneration}
}

// IsUploaded reports whether geometry was ever uploaded for the mesh.
func (m *Mesh) IsUploaded() bool {
	return m.Generation != InvalidGeneration
}
