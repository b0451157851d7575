package engine_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/anima/engine"
	"github.com/spaghettifunk/anima/engine/config"
	"github.com/spaghettifunk/anima/engine/core"
	"github.com/spaghettifunk/anima/engine/math"
	"github.com/spaghettifunk/anima/engine/platform"
	"github.com/spaghettifunk/anima/engine/renderer/headless"
	"github.com/spaghettifunk/anima/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingGame struct {
	*engine.Game
	updates, renders int
	resized          [2]uint32
	shutdown         bool
	onUpdate         func(n int) error
}

func newCountingGame() *countingGame {
	g := &countingGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				Name:        "test",
				StartWidth:  320,
				StartHeight: 240,
				LogLevel:    core.WarnLevel,
			},
		},
	}
	g.FnUpdate = func(deltaTime float64) error {
		g.updates++
		if g.onUpdate != nil {
			return g.onUpdate(g.updates)
		}
		return nil
	}
	g.FnRender = func(deltaTime float64) error {
		g.renders++
		return nil
	}
	g.FnOnResize = func(width, height uint32) error {
		g.resized = [2]uint32{width, height}
		return nil
	}
	g.FnShutdown = func() error {
		g.shutdown = true
		return nil
	}
	return g
}

func TestNewRequiresGame(t *testing.T) {
	_, err := engine.New(nil, headless.New(), platform.NewHeadless(1))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = engine.New(&engine.Game{ApplicationConfig: &engine.ApplicationConfig{}}, headless.New(), platform.NewHeadless(1))
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestRunTickBudget(t *testing.T) {
	g := newCountingGame()
	backend := headless.New()
	e, err := engine.New(g.Game, backend, platform.NewHeadless(10))
	require.NoError(t, err)
	require.NotNil(t, g.Renderer)

	assert.ErrorIs(t, e.Run(), core.ErrInvalidStage)
	require.NoError(t, e.Initialize())
	assert.Equal(t, engine.EngineStageInitialized, e.Stage())
	assert.Equal(t, [2]uint32{320, 240}, g.resized)
	assert.ErrorIs(t, e.Initialize(), core.ErrInvalidStage)

	mesh, err := g.Renderer.UploadConfig(&metadata.GeometryConfig{
		Name:     "tri",
		Vertices: []math.Vertex3D{{}, {}, {}},
		Indices:  []uint32{0, 1, 2},
	})
	require.NoError(t, err)
	g.Renderer.CreateObject(mesh)

	require.NoError(t, e.Run())
	assert.Equal(t, 10, g.updates)
	assert.Equal(t, 10, g.renders)
	assert.Equal(t, uint64(10), backend.FrameCount())
	assert.Len(t, backend.LastFrame(), 1)
	assert.Equal(t, uint64(10), e.Metrics().TotalFrames())

	require.NoError(t, e.Shutdown())
	assert.True(t, g.shutdown)
	assert.Equal(t, engine.EngineStageUninitialized, e.Stage())
}

func TestRunStopsOnUpdateError(t *testing.T) {
	g := newCountingGame()
	boom := errors.New("boom")
	g.onUpdate = func(n int) error {
		if n == 3 {
			return boom
		}
		return nil
	}
	e, err := engine.New(g.Game, headless.New(), platform.NewHeadless(0))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	err = e.Run()

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, g.updates)
	assert.Equal(t, 2, g.renders)
}

func TestRunStopsOnQuitEvent(t *testing.T) {
	g := newCountingGame()
	g.onUpdate = func(n int) error {
		if n == 2 {
			core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		}
		return nil
	}
	e, err := engine.New(g.Game, headless.New(), platform.NewHeadless(0))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	require.NoError(t, e.Run())
	assert.Equal(t, 2, g.updates)
}

func TestResizeEvent(t *testing.T) {
	g := newCountingGame()
	backend := headless.New()
	g.onUpdate = func(n int) error {
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_RESIZED, Data: [2]uint32{800, 600}})
		return nil
	}
	e, err := engine.New(g.Game, backend, platform.NewHeadless(1))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	require.NoError(t, e.Run())

	assert.Equal(t, [2]uint32{800, 600}, g.resized)
	w, h := e.GetFramebufferSize()
	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(600), h)
	bw, bh := backend.Size()
	assert.Equal(t, uint32(800), bw)
	assert.Equal(t, uint32(600), bh)
}

func TestConfigReloadEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("cars_count = 1\n"), 0o644))

	g := newCountingGame()
	g.ApplicationConfig.ConfigPath = path
	g.ApplicationConfig.WatchConfig = true

	var reloaded *config.Config
	listener := new(int)
	g.FnInitialize = func() error {
		core.EventRegister(core.EVENT_CODE_CONFIG_RELOADED, listener, func(context core.EventContext) bool {
			cfg := context.Data.(*config.Config)
			if cfg.CarsCount == 9 {
				reloaded = cfg
				core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
			}
			return true
		})
		return nil
	}
	defer core.EventUnregister(core.EVENT_CODE_CONFIG_RELOADED, listener)

	var written time.Time
	g.onUpdate = func(n int) error {
		if n == 1 {
			written = time.Now()
			return os.WriteFile(path, []byte("cars_count = 9\n"), 0o644)
		}
		if time.Since(written) > 5*time.Second {
			return errors.New("config reload never arrived")
		}
		time.Sleep(time.Millisecond)
		return nil
	}

	e, err := engine.New(g.Game, headless.New(), platform.NewHeadless(0))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	require.NoError(t, e.Run())
	require.NotNil(t, reloaded)
	assert.Equal(t, 9, reloaded.CarsCount)
}
