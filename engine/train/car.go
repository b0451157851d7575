// Package train moves cars along a sampled track at a constant step per tick.
package train

import (
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

var (
	CarColour = math.NewVec3(0.2, 0.0, 0.0)
	CarScale  = math.NewVec3(0.5, 0.5, 1.0)
)

// ObjectFactory places new instances of a mesh in the scene.
type ObjectFactory interface {
	CreateObject(mesh *metadata.Mesh) *metadata.Object
}

// Car follows a path point by point. Each Advance moves it by exactly its
// speed toward the current target, or retargets it once the target is
// closer than one step.
type Car struct {
	object *metadata.Object
	speed  float32
	idx    int
}

func NewCar(factory ObjectFactory, mesh *metadata.Mesh, start math.Vec3, speed float32) *Car {
	object := factory.CreateObject(mesh)
	object.SetPosition(start)
	object.Colour = CarColour
	object.SetScale(CarScale)
	return &Car{
		object: object,
		speed:  speed,
	}
}

// Advance performs one tick of movement along path. The target index wraps
// back to the first point after the last one. An empty path leaves the car
// where it is.
func (c *Car) Advance(path []math.Vec3) {
	if len(path) == 0 {
		return
	}
	if c.idx >= len(path) {
		c.idx = 0
	}
	if c.translate(path[c.idx]) {
		if c.idx < len(path)-1 {
			c.idx++
		} else {
			c.idx = 0
		}
	}
}

// translate reports whether the car is already within one step of to.
func (c *Car) translate(to math.Vec3) bool {
	position := c.object.Position()
	if position.Distance(to) < c.speed {
		return true
	}
	forward := to.Sub(position).Normalized()
	c.object.SetPosition(position.Add(forward.MulScalar(c.speed)))
	c.object.LookAt(forward, math.NewVec3Up())
	return false
}

func (c *Car) Object() *metadata.Object {
	return c.object
}

func (c *Car) Speed() float32 {
	return c.speed
}

// Index returns the index of the path point the car is heading to.
func (c *Car) Index() int {
	return c.idx
}

func (c *Car) Position() math.Vec3 {
	return c.object.Position()
}
