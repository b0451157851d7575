package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Fract returns x - floor(x). The result is always in [0, 1), negative
// inputs included.
func Fract(x float32) float32 {
	return x - math32.Floor(x)
}

// CatmullRom interpolates between v2 and v3 at s in [0, 1], using v1 and v4
// to derive the tangents.
func CatmullRom(v1, v2, v3, v4 Vec3, s float32) Vec3 {
	s2 := s * s
	s3 := s2 * s

	f1 := -s3 + 2*s2 - s
	f2 := 3*s3 - 5*s2 + 2
	f3 := -3*s3 + 4*s2 + s
	f4 := s3 - s2

	return v1.MulScalar(f1).
		Add(v2.MulScalar(f2)).
		Add(v3.MulScalar(f3)).
		Add(v4.MulScalar(f4)).
		MulScalar(0.5)
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * math32.Pi / 180.0
}
