package spline

import "github.com/chewxy/math32"

// Approx resamples s into roughly n points spaced at equal arc length, using
// nothing but point samples taken every eps of the parameter.
//
// The scan accumulates the distance covered since the last emitted point and
// keeps advancing while that haul gets closer to distance/n. Once it stops
// getting closer the current sample is emitted and the haul restarts. The
// result is built with PushBack and keeps the loop flag of s.
//
// eps has to be small next to 1/n: when a single eps step covers more than
// about half of the target spacing the search emits at nearly every step and
// the spacing is no longer uniform. Empty input, n < 1 or eps <= 0 yield an
// empty spline. The parameter is derived from a step count, and the scan
// stops early once eps falls below the float32 resolution of dt.
func Approx(s *Spline, n int, eps float32) *Spline {
	result := NewEmpty(s.IsLoop())
	if s.Empty() || n < 1 || eps <= 0 {
		return result
	}

	interval := s.Distance() / float32(n)
	if math32.IsNaN(interval) || math32.IsInf(interval, 0) {
		return result
	}

	var haul float32
	minimum := float32(math32.MaxFloat32)
	step := 1
	dt := eps
	for {
		if result.Empty() {
			result.PushBack(s.Get(dt - eps))
		} else {
			p1 := s.Get(dt - eps)
			p2 := s.Get(dt)

			dx := p2.X - p1.X
			dy := p2.Y - p1.Y
			dz := p2.Z - p1.Z

			// Kept as a velocity scaled back by dt; the rounding of this
			// form decides where points land.
			vx := dx * dt
			vy := dy * dt
			vz := dz * dt

			velocity := math32.Sqrt(vx*vx + vy*vy + vz*vz)
			haul += velocity / dt
			delta := math32.Abs(haul - interval)
			if math32.IsNaN(delta) || math32.IsInf(delta, 0) {
				break
			}

			if delta < minimum {
				minimum = delta
				step++
				next := float32(step) * eps
				if next <= dt {
					break
				}
				dt = next
			} else {
				haul = 0
				minimum = math32.MaxFloat32
				result.PushBack(p2)
			}
		}
		if dt > 1.0 {
			break
		}
	}
	return result
}

// Approx2 runs Approx twice, re-uniforming the first pass.
func Approx2(s *Spline, n int, eps float32) *Spline {
	return Approx(Approx(s, n, eps), n, eps)
}
