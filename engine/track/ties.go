package track

import (
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

const tieDepth float32 = 0.1

var TiesColour = math.NewVec3(1.0, 0.8, 0.1)

// GenerateTies lays one tie on every point, each turned towards the next
// point. The last tie looks back at the point before it, so that it lies
// along the same line as its neighbour.
func GenerateTies(factory ObjectFactory, tieMesh *metadata.Mesh, points []math.Vec3, width float32) []*metadata.Object {
	if len(points) == 0 {
		return nil
	}

	ties := make([]*metadata.Object, 0, len(points))
	for i := 0; i+1 < len(points); i++ {
		ties = append(ties, createTie(factory, tieMesh, points[i], points[i+1], width))
	}
	if len(points) > 1 {
		ties = append(ties, createTie(factory, tieMesh, points[len(points)-1], points[len(points)-2], width))
	}
	return ties
}

func createTie(factory ObjectFactory, tieMesh *metadata.Mesh, position, lookAt math.Vec3, width float32) *metadata.Object {
	tie := factory.CreateObject(tieMesh)
	tie.SetPosition(position)
	tie.Colour = TiesColour
	tie.SetScale(math.NewVec3(width, 0, tieDepth))
	tie.LookAt(lookAt.Sub(position).Normalized(), math.NewVec3Up())
	return tie
}
