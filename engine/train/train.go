package train

import (
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

// CarSpacing is the offset along X between the starting positions of two
// consecutive cars.
const CarSpacing float32 = 1.4

type Train struct {
	cars []*Car
}

// New puts count cars at the first point of path, each shifted by
// CarSpacing along X from the previous one.
func New(factory ObjectFactory, mesh *metadata.Mesh, path []math.Vec3, count int, speed float32) *Train {
	t := &Train{}
	if len(path) == 0 || count <= 0 {
		return t
	}
	t.cars = make([]*Car, 0, count)
	for i := 0; i < count; i++ {
		start := path[0].Add(math.NewVec3(CarSpacing*float32(i), 0, 0))
		t.cars = append(t.cars, NewCar(factory, mesh, start, speed))
	}
	return t
}

func (t *Train) Advance(path []math.Vec3) {
	for _, car := range t.cars {
		car.Advance(path)
	}
}

func (t *Train) Cars() []*Car {
	return t.cars
}

func (t *Train) Len() int {
	return len(t.cars)
}
