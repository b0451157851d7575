package spline

import (
	"github.com/chewxy/math32"
	"github.com/spaghettifunk/anima/engine/math"
)

// Segment is the interpolated stretch between two waypoints, stored as a
// polyline of Lines.
type Segment struct {
	lines []Line
}

// NewSegment interpolates between p1 and p2, with p0 and p3 supplying the
// tangents, subdividing the stretch in steps of eps.
func NewSegment(p0, p1, p2, p3 math.Vec3, eps float32) Segment {
	s := Segment{}
	s.Construct(p0, p1, p2, p3, eps)
	return s
}

// NewSegmentFromPoint returns a segment holding one degenerate line at p.
func NewSegmentFromPoint(p math.Vec3) Segment {
	s := Segment{}
	s.PushBack(p)
	return s
}

// Construct appends round(1/eps) lines, at least one, sampled from the
// Catmull-Rom curve. The step count is fixed up front so that repeated float
// additions cannot add or drop a final step. Every sample is evaluated once, so
// the end of one line is the start of the next. A non-positive eps appends
// nothing.
func (s *Segment) Construct(p0, p1, p2, p3 math.Vec3, eps float32) *Segment {
	if eps <= 0 {
		return s
	}
	steps := int(math32.Round(1 / eps))
	if steps < 1 {
		steps = 1
	}
	if cap(s.lines)-len(s.lines) < steps {
		lines := make([]Line, len(s.lines), len(s.lines)+steps)
		copy(lines, s.lines)
		s.lines = lines
	}
	prev := math.CatmullRom(p0, p1, p2, p3, 0)
	for i := 1; i <= steps; i++ {
		next := math.CatmullRom(p0, p1, p2, p3, float32(i)*eps)
		s.lines = append(s.lines, NewLine(prev, next))
		prev = next
	}
	return s
}

// Distance is the summed length of all lines.
func (s Segment) Distance() float32 {
	var result float32
	for _, l := range s.lines {
		result += l.Distance()
	}
	return result
}

// Get maps the fractional part of dt onto the lines of the segment. The
// scaled value is handed to the selected line, which keeps only its own
// fractional part.
func (s Segment) Get(dt float32) math.Vec3 {
	if len(s.lines) == 0 {
		return math.Vec3{}
	}
	interval := math.Fract(dt) * float32(len(s.lines))
	idx := math.Clamp(int(interval), 0, len(s.lines)-1)
	return s.lines[idx].Lerp(interval)
}

// PushFront grows the segment backwards to p.
func (s *Segment) PushFront(p math.Vec3) {
	if len(s.lines) == 0 {
		s.lines = append(s.lines, NewLine(p, p))
		return
	}
	if s.lines[0].IsDegenerate() {
		s.lines[0].SetFirst(p)
		return
	}
	s.lines = append([]Line{NewLine(p, s.lines[0].First())}, s.lines...)
}

// PushBack grows the segment forwards to p. The first two points pushed into
// an empty segment share a single line.
func (s *Segment) PushBack(p math.Vec3) {
	if len(s.lines) == 0 {
		s.lines = append(s.lines, NewLine(p, p))
		return
	}
	last := len(s.lines) - 1
	if s.lines[last].IsDegenerate() {
		s.lines[last].SetSecond(p)
		return
	}
	s.lines = append(s.lines, NewLine(s.lines[last].Second(), p))
}

// LinkFront connects the start of s to the end of other.
func (s *Segment) LinkFront(other Segment) {
	if other.Empty() {
		return
	}
	s.PushFront(other.Back().Second())
}

// LinkBack connects the end of s to the start of other.
func (s *Segment) LinkBack(other Segment) {
	if other.Empty() {
		return
	}
	s.PushBack(other.Front().First())
}

// ToVector returns the first endpoint of every line. The trailing endpoint of
// the last line is not included.
func (s Segment) ToVector() []math.Vec3 {
	result := make([]math.Vec3, 0, len(s.lines))
	for _, l := range s.lines {
		result = append(result, l.First())
	}
	return result
}

// Front panics on an empty segment.
func (s Segment) Front() Line {
	return s.lines[0]
}

// Back panics on an empty segment.
func (s Segment) Back() Line {
	return s.lines[len(s.lines)-1]
}

func (s Segment) At(i int) Line {
	return s.lines[i]
}

func (s Segment) Lines() []Line {
	return s.lines
}

func (s Segment) Len() int {
	return len(s.lines)
}

func (s Segment) Empty() bool {
	return len(s.lines) == 0
}
