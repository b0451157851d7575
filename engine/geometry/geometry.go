// Package geometry generates the primitive meshes the scene is built from.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/anima/engine/core"
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
)

type cubeFace struct {
	normal, u, v math.Vec3
}

// u cross v equals the normal, so every face winds counter-clockwise seen from outside.
var cubeFaces = [6]cubeFace{
	{normal: math.NewVec3(0, 0, 1), u: math.NewVec3(1, 0, 0), v: math.NewVec3(0, 1, 0)},
	{normal: math.NewVec3(0, 0, -1), u: math.NewVec3(-1, 0, 0), v: math.NewVec3(0, 1, 0)},
	{normal: math.NewVec3(-1, 0, 0), u: math.NewVec3(0, 0, 1), v: math.NewVec3(0, 1, 0)},
	{normal: math.NewVec3(1, 0, 0), u: math.NewVec3(0, 0, -1), v: math.NewVec3(0, 1, 0)},
	{normal: math.NewVec3(0, -1, 0), u: math.NewVec3(1, 0, 0), v: math.NewVec3(0, 0, 1)},
	{normal: math.NewVec3(0, 1, 0), u: math.NewVec3(1, 0, 0), v: math.NewVec3(0, 0, -1)},
}

/**
 * @brief Generates the configuration of an axis-aligned box centered at the origin.
 * Zero dimensions are replaced by one.
 */
func GenerateCubeConfig(width, height, depth float32, name string) (*metadata.GeometryConfig, error) {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}

	half := math.NewVec3(width*0.5, height*0.5, depth*0.5)
	config := &metadata.GeometryConfig{
		Vertices:   make([]math.Vertex3D, 0, 4*6),
		Indices:    make([]uint32, 0, 6*6),
		MinExtents: half.Negate(),
		MaxExtents: half,
		Name:       geometryName(name),
	}

	corners := [4][2]float32{{-1, -1}, {1, 1}, {-1, 1}, {1, -1}}
	for i, face := range cubeFaces {
		for _, c := range corners {
			p := face.normal.Add(face.u.MulScalar(c[0])).Add(face.v.MulScalar(c[1]))
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: p.Mul(half),
				Normal:   face.normal,
				Texcoord: math.NewVec2((c[0]+1)*0.5, (c[1]+1)*0.5),
			})
		}
		offset := uint32(i * 4)
		config.Indices = append(config.Indices, offset+0, offset+1, offset+2, offset+0, offset+3, offset+1)
	}
	return config, nil
}

/**
 * @brief Generates a flat grid lying in the XZ plane and facing up.
 */
func GeneratePlaneConfig(width, depth float32, xSegmentCount, zSegmentCount uint32, name string) (*metadata.GeometryConfig, error) {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}
	if xSegmentCount < 1 {
		core.LogWarn("xSegmentCount must be a positive number. Defaulting to one.")
		xSegmentCount = 1
	}
	if zSegmentCount < 1 {
		core.LogWarn("zSegmentCount must be a positive number. Defaulting to one.")
		zSegmentCount = 1
	}

	columns := xSegmentCount + 1
	config := &metadata.GeometryConfig{
		Vertices:   make([]math.Vertex3D, 0, columns*(zSegmentCount+1)),
		Indices:    make([]uint32, 0, xSegmentCount*zSegmentCount*6),
		MinExtents: math.NewVec3(-width*0.5, 0, -depth*0.5),
		MaxExtents: math.NewVec3(width*0.5, 0, depth*0.5),
		Name:       geometryName(name),
	}

	segWidth := width / float32(xSegmentCount)
	segDepth := depth / float32(zSegmentCount)
	for z := uint32(0); z <= zSegmentCount; z++ {
		for x := uint32(0); x <= xSegmentCount; x++ {
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: math.NewVec3(float32(x)*segWidth-width*0.5, 0, float32(z)*segDepth-depth*0.5),
				Normal:   math.NewVec3Up(),
				Texcoord: math.NewVec2(float32(x)/float32(xSegmentCount), float32(z)/float32(zSegmentCount)),
			})
		}
	}
	for z := uint32(0); z < zSegmentCount; z++ {
		for x := uint32(0); x < xSegmentCount; x++ {
			a := z*columns + x
			b := a + 1
			c := a + columns
			d := c + 1
			config.Indices = append(config.Indices, a, c, b, b, c, d)
		}
	}
	return config, nil
}

/**
 * @brief Generates a UV sphere centered at the origin. At least two rings and
 * three sectors are generated.
 */
func GenerateSphereConfig(radius float32, rings, sectors uint32, name string) (*metadata.GeometryConfig, error) {
	if radius <= 0 {
		core.LogWarn("Radius must be positive. Defaulting to one.")
		radius = 1.0
	}
	if rings < 2 {
		core.LogWarn("rings must be at least 2. Defaulting to 2.")
		rings = 2
	}
	if sectors < 3 {
		core.LogWarn("sectors must be at least 3. Defaulting to 3.")
		sectors = 3
	}

	columns := sectors + 1
	config := &metadata.GeometryConfig{
		Vertices:   make([]math.Vertex3D, 0, (rings+1)*columns),
		Indices:    make([]uint32, 0, rings*sectors*6),
		MinExtents: math.NewVec3(-radius, -radius, -radius),
		MaxExtents: math.NewVec3(radius, radius, radius),
		Name:       geometryName(name),
	}

	for r := uint32(0); r <= rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)
		for s := uint32(0); s <= sectors; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(sectors)
			sinTheta, cosTheta := math32.Sincos(theta)
			n := math.NewVec3(sinPhi*cosTheta, cosPhi, sinPhi*sinTheta)
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: n.MulScalar(radius),
				Normal:   n,
				Texcoord: math.NewVec2(float32(s)/float32(sectors), float32(r)/float32(rings)),
			})
		}
	}
	for r := uint32(0); r < rings; r++ {
		for s := uint32(0); s < sectors; s++ {
			a := r*columns + s
			b := a + columns
			c := a + 1
			d := b + 1
			config.Indices = append(config.Indices, a, c, b, c, d, b)
		}
	}
	return config, nil
}

func geometryName(name string) string {
	if len(name) > 0 {
		return name
	}
	return metadata.DefaultGeometryName
}
