package testbed

import (
	"testing"

	"github.com/spaghettifunk/anima/engine"
	"github.com/spaghettifunk/anima/engine/config"
	"github.com/spaghettifunk/anima/engine/core"
	"github.com/spaghettifunk/anima/engine/platform"
	"github.com/spaghettifunk/anima/engine/renderer/headless"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
	"github.com/spaghettifunk/anima/engine/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineCount(s *spline.Spline) int {
	n := 0
	for _, segment := range s.Segments() {
		n += segment.Len()
	}
	return n
}

func startGame(t *testing.T, cfg *config.Config, ticks uint64) (*TestGame, *engine.Engine, *headless.Backend) {
	t.Helper()
	g, err := NewTestGame(cfg, "", false)
	require.NoError(t, err)
	backend := headless.New()
	e, err := engine.New(g.Game, backend, platform.NewHeadless(ticks))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	t.Cleanup(func() { _ = e.Shutdown() })
	return g, e, backend
}

func TestRailroadDefaultScene(t *testing.T) {
	cfg := config.Default()
	g, _, _ := startGame(t, cfg, 1)
	rr := g.Railroad()

	assert.Equal(t, 8, rr.Spline().Len())
	assert.Len(t, rr.SplinePath(), 801)
	assert.Len(t, rr.Ties(), len(rr.Approx().ToVector()))
	assert.InDelta(t, cfg.TiesCount, len(rr.Ties()), 4)
	assert.Len(t, rr.Rails().LeftVertices(), 2*800)
	assert.Equal(t, 4, rr.Train().Len())

	markers := 8 + 2*lineCount(rr.Spline()) + 2*lineCount(rr.Approx())
	assert.Len(t, g.Renderer.Objects(), 1+markers+len(rr.Ties())+4)
}

func TestRailroadWithoutDebugInfo(t *testing.T) {
	cfg := config.Default()
	cfg.ShowDebugInfo = false
	g, e, backend := startGame(t, cfg, 3)
	rr := g.Railroad()

	assert.Len(t, g.Renderer.Objects(), 1+len(rr.Ties())+4)

	require.NoError(t, e.Run())
	frame := backend.LastFrame()
	require.Len(t, frame, len(g.Renderer.Objects())+2)
	left, right := rr.Rails().Meshes()
	assert.Same(t, left, frame[len(frame)-2].Mesh)
	assert.Same(t, right, frame[len(frame)-1].Mesh)
}

func TestRailroadTrainMoves(t *testing.T) {
	cfg := config.Default()
	cfg.ShowDebugInfo = false
	g, e, _ := startGame(t, cfg, 50)
	car := g.Railroad().Train().Cars()[1]
	start := car.Position()

	require.NoError(t, e.Run())

	assert.Greater(t, start.Distance(car.Position()), float32(0))
	assert.LessOrEqual(t, start.Distance(car.Position()), 50*cfg.TrainSpeed+1e-4)
}

func TestRailroadDebugPathDrawn(t *testing.T) {
	g, e, backend := startGame(t, config.Default(), 1)
	require.NoError(t, e.Run())

	frame := backend.LastFrame()
	last := frame[len(frame)-1]
	assert.Equal(t, metadata.PrimitiveTopologyLineList, last.Topology)
	_, indices, ok := backend.Geometry(last.Mesh)
	require.True(t, ok)
	assert.Len(t, indices, 16)
	assert.NotNil(t, g.Railroad())
}

func TestRailroadRebuildOnReload(t *testing.T) {
	g, _, _ := startGame(t, config.Default(), 1)

	cfg := config.Default()
	cfg.ShowDebugInfo = false
	cfg.IsLoop = false
	cfg.CarsCount = 2
	cfg.RailsColour = "white"
	cfg.Waypoints = [][]float32{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg})

	rr := g.Railroad()
	assert.Equal(t, 3, rr.Spline().Len())
	assert.Len(t, rr.SplinePath(), 300)
	assert.Equal(t, 2, rr.Train().Len())
	assert.Len(t, g.Renderer.Objects(), 1+len(rr.Ties())+2)
	assert.Equal(t, float32(1), rr.Rails().Colour().X)
	assert.Len(t, rr.Rails().LeftVertices(), 2*299)
}

func TestLogLevelOverrideSurvivesReload(t *testing.T) {
	g, err := NewTestGame(config.Default(), "", false, WithLogLevel("error"))
	require.NoError(t, err)
	assert.Equal(t, core.ErrorLevel, g.ApplicationConfig.LogLevel)

	e, err := engine.New(g.Game, headless.New(), platform.NewHeadless(1))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	t.Cleanup(func() {
		_ = e.Shutdown()
		core.SetLogLevel(core.InfoLevel)
	})
	require.Equal(t, core.ErrorLevel, core.GetLogLevel())

	cfg := config.Default()
	cfg.LogLevel = "debug"
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_CONFIG_RELOADED, Data: cfg})

	assert.Equal(t, core.ErrorLevel, core.GetLogLevel())
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestNewTestGameRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TiesCount = 0

	_, err := NewTestGame(cfg, "", false)

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
