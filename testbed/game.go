package testbed

import (
	"fmt"

	"github.com/spaghettifunk/anima/engine"
	"github.com/spaghettifunk/anima/engine/config"
	"github.com/spaghettifunk/anima/engine/core"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	cfg      *config.Config
	railroad *Railroad

	// logLevel wins over the level of every loaded config when set.
	logLevel string

	width  uint32
	height uint32
}

type Option func(*gameState)

// WithLogLevel pins the log level, ignoring log_level of the initial and of
// every reloaded config. An empty level keeps the config in charge.
func WithLogLevel(level string) Option {
	return func(s *gameState) {
		s.logLevel = level
	}
}

// NewTestGame wires the railroad scene into the engine's game callbacks.
// configPath is only used for hot reload and may be empty.
func NewTestGame(cfg *config.Config, configPath string, watch bool, opts ...Option) (*TestGame, error) {
	state := &gameState{cfg: cfg}
	for _, opt := range opts {
		opt(state)
	}
	state.applyLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logLevel, err := core.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   100,
				StartPosY:   100,
				StartWidth:  cfg.Width,
				StartHeight: cfg.Height,
				Name:        cfg.Name,
				LogLevel:    logLevel,
				ConfigPath:  configPath,
				WatchConfig: watch,
			},
			State: state,
		},
	}

	tg.FnBoot = tg.Boot
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (s *gameState) applyLogLevel(cfg *config.Config) {
	if s.logLevel != "" {
		cfg.LogLevel = s.logLevel
	}
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Boot() error {
	core.LogInfo("booting testbed...")
	if g.Renderer == nil {
		return fmt.Errorf("%w: renderer not set", core.ErrNotInitialized)
	}
	return nil
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")
	state := g.state()

	railroad, err := NewRailroad(g.Renderer)
	if err != nil {
		return err
	}
	if err := railroad.Build(state.cfg); err != nil {
		return err
	}
	state.railroad = railroad

	core.EventRegister(core.EVENT_CODE_CONFIG_RELOADED, g, g.onConfigReloaded)
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	// movement is per tick, not per second
	g.state().railroad.Update()
	return nil
}

func (g *TestGame) Render(deltaTime float64) error {
	g.state().railroad.Draw()
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.state()
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	core.EventUnregister(core.EVENT_CODE_CONFIG_RELOADED, g)
	return nil
}

// Railroad exposes the scene, mainly for tests.
func (g *TestGame) Railroad() *Railroad {
	return g.state().railroad
}

func (g *TestGame) onConfigReloaded(context core.EventContext) bool {
	cfg, ok := context.Data.(*config.Config)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	state := g.state()
	state.applyLogLevel(cfg)
	if level, err := core.ParseLogLevel(cfg.LogLevel); err == nil {
		core.SetLogLevel(level)
	}

	if err := state.railroad.Build(cfg); err != nil {
		core.LogError("failed to rebuild the railroad, keeping the previous config: %s", err.Error())
		if err := state.railroad.Build(state.cfg); err != nil {
			core.LogError(err.Error())
		}
		return false
	}
	state.cfg = cfg
	return false
}
