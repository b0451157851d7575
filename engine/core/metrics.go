package core

import "github.com/spaghettifunk/anima/engine/containers"

const AVG_COUNT uint8 = 30

// Metrics tracks the frame time average over AVG_COUNT frames and the frames
// counted during the last full second.
type Metrics struct {
	msTimes            *containers.RingQueue[float64]
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
	totalFrames        uint64
}

func NewMetrics() *Metrics {
	return &Metrics{msTimes: containers.NewRingQueue[float64](int(AVG_COUNT))}
}

// Update records one frame that took frameElapsedTime seconds.
func (m *Metrics) Update(frameElapsedTime float64) {
	frameMS := frameElapsedTime * 1000.0
	if m.msTimes.IsFull() {
		_, _ = m.msTimes.Dequeue()
	}
	_ = m.msTimes.Enqueue(frameMS)

	sum := 0.0
	m.msTimes.Each(func(ms float64) { sum += ms })
	m.msAvg = sum / float64(m.msTimes.Len())

	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}

	m.frames++
	m.totalFrames++
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

func (m *Metrics) FrameTime() float64 {
	return m.msAvg
}

// Frame returns the FPS and the average frame time in milliseconds.
func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.msAvg
}

func (m *Metrics) TotalFrames() uint64 {
	return m.totalFrames
}
