package spline

import "github.com/spaghettifunk/anima/engine/math"

// Spline is an ordered list of segments built from a waypoint path. A looped
// spline also connects the last waypoint back to the first.
type Spline struct {
	segments []Segment
	isLoop   bool
}

// New interpolates path with Catmull-Rom segments subdivided in steps of eps.
func New(path []math.Vec3, eps float32, isLoop bool) *Spline {
	s := NewEmpty(isLoop)
	return s.Construct(path, eps, isLoop)
}

func NewEmpty(isLoop bool) *Spline {
	return &Spline{isLoop: isLoop}
}

// Construct appends one segment per waypoint pair. Each segment takes its
// control points from the waypoints at i-1, i, i+1 and i+2, clamped to the
// path. A looped spline wraps those indices around instead and gets a closing
// segment; an open spline stops once the current waypoint is the last one.
func (s *Spline) Construct(path []math.Vec3, eps float32, isLoop bool) *Spline {
	s.isLoop = isLoop
	size := len(path)
	if size == 0 {
		return s
	}
	if s.segments == nil {
		s.segments = make([]Segment, 0, size)
	}

	last := size - 1
	for i := 0; i < size; i++ {
		i0 := math.Clamp(i-1, 0, last)
		i1 := math.Clamp(i, 0, last)
		i2 := math.Clamp(i+1, 0, last)
		i3 := math.Clamp(i+2, 0, last)

		if s.isLoop {
			switch {
			case i == 0:
				i0 = last
			case i == size-2:
				i3 = 0
			case i == last:
				i2 = 0
				i3 = 1
				if size == 1 {
					i3 = 0
				}
			}
		} else if i1 == last {
			break
		}

		s.segments = append(s.segments, NewSegment(path[i0], path[i1], path[i2], path[i3], eps))
	}
	return s
}

// Distance returns the length of every segment plus the gaps between
// consecutive segments, and the closing gap if the spline loops.
func (s *Spline) Distance() float32 {
	var res float32
	for _, segment := range s.segments {
		res += segment.Distance()
	}
	for i := 0; i+1 < len(s.segments); i++ {
		front := s.segments[i+1].Front().First()
		back := s.segments[i].Back().Second()
		res += front.Distance(back)
	}
	if len(s.segments) > 0 && s.isLoop {
		front := s.segments[0].Front().First()
		back := s.segments[len(s.segments)-1].Back().Second()
		res += front.Distance(back)
	}
	return res
}

// Get samples the spline at the fractional part of dt. The global parameter
// is scaled to segment space and passed whole to the selected segment.
func (s *Spline) Get(dt float32) math.Vec3 {
	if len(s.segments) == 0 {
		return math.Vec3{}
	}
	interval := math.Fract(dt) * float32(len(s.segments))
	idx := math.Clamp(int(interval), 0, len(s.segments)-1)
	return s.segments[idx].Get(interval)
}

// PushBack grows the spline by one point, without any interpolation.
func (s *Spline) PushBack(p math.Vec3) {
	if len(s.segments) == 0 {
		s.segments = append(s.segments, NewSegmentFromPoint(p))
		return
	}
	s.segments[len(s.segments)-1].PushBack(p)
}

// ToVector flattens the spline into a polyline. A looped spline gets the end
// of its last line appended to close the ring.
func (s *Spline) ToVector() []math.Vec3 {
	result := make([]math.Vec3, 0, len(s.segments))
	for _, segment := range s.segments {
		result = append(result, segment.ToVector()...)
	}
	if len(s.segments) > 0 && s.isLoop {
		result = append(result, s.segments[len(s.segments)-1].Back().Second())
	}
	return result
}

func (s *Spline) At(i int) Segment {
	return s.segments[i]
}

func (s *Spline) Segments() []Segment {
	return s.segments
}

func (s *Spline) Len() int {
	return len(s.segments)
}

func (s *Spline) Empty() bool {
	return len(s.segments) == 0
}

func (s *Spline) IsLoop() bool {
	return s.isLoop
}
