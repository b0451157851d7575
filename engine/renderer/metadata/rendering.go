package metadata

import "github.com/spaghettifunk/anima/engine/math"

type PrimitiveTopology uint8

const (
	PrimitiveTopologyTriangleList PrimitiveTopology = iota
	PrimitiveTopologyLineList
)

// GeometryRenderData is a single indexed draw of a mesh.
type GeometryRenderData struct {
	Model     math.Mat4
	Albedo    math.Vec3
	Mesh      *Mesh
	Topology  PrimitiveTopology
	Wireframe bool
}

// RenderPacket carries everything drawn during one frame.
type RenderPacket struct {
	DeltaTime  float64
	Geometries []GeometryRenderData
}
