package spline

import "github.com/spaghettifunk/anima/engine/math"

// Line is a single straight piece of a Segment. A Line whose endpoints are
// equal is degenerate; it is the placeholder a Segment starts from when grown
// one point at a time.
type Line struct {
	first  math.Vec3
	second math.Vec3
}

func NewLine(first, second math.Vec3) Line {
	return Line{first: first, second: second}
}

func (l Line) First() math.Vec3 {
	return l.first
}

func (l Line) Second() math.Vec3 {
	return l.second
}

func (l Line) Points() (math.Vec3, math.Vec3) {
	return l.first, l.second
}

func (l *Line) SetFirst(p math.Vec3) {
	l.first = p
}

func (l *Line) SetSecond(p math.Vec3) {
	l.second = p
}

func (l Line) IsDegenerate() bool {
	return l.first == l.second
}

// Distance returns the length of the line.
func (l Line) Distance() float32 {
	return l.first.Distance(l.second)
}

// Lerp interpolates between the endpoints using only the fractional part of dt.
func (l Line) Lerp(dt float32) math.Vec3 {
	return l.first.Lerp(l.second, math.Fract(dt))
}

// LerpSpeed treats dt as time travelled at speed along the line. The result
// is not clamped, so dt past distance/speed extrapolates beyond the second
// endpoint.
func (l Line) LerpSpeed(dt, speed float32) math.Vec3 {
	return l.first.Lerp(l.second, dt/(l.Distance()/speed))
}
