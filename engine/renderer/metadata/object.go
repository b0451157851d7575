package metadata

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/anima/engine/math"
)

// Object is a drawable instance of a mesh placed in the world.
type Object struct {
	ID        uuid.UUID
	Mesh      *Mesh
	Transform *math.Transform
	Colour    math.Vec3
	Visible   bool
}

func NewObject(id uuid.UUID, mesh *Mesh) *Object {
	return &Object{
		ID:        id,
		Mesh:      mesh,
		Transform: math.TransformCreate(),
		Colour:    math.NewVec3One(),
		Visible:   true,
	}
}

func (o *Object) Position() math.Vec3 {
	return o.Transform.Position
}

func (o *Object) SetPosition(position math.Vec3) {
	o.Transform.SetPosition(position)
}

func (o *Object) SetRotation(rotation math.Quaternion) {
	o.Transform.SetRotation(rotation)
}

// LookAt orients the object so that its forward axis points along direction.
func (o *Object) LookAt(direction, up math.Vec3) {
	o.Transform.SetRotation(math.NewQuatLookAt(direction, up))
}

func (o *Object) SetScale(scale math.Vec3) {
	o.Transform.SetScale(scale)
}

func (o *Object) SetColour(r, g, b float32) {
	o.Colour = math.NewVec3(r, g, b)
}
