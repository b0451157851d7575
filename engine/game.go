package engine

import (
	"github.com/spaghettifunk/anima/engine/renderer"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// Renderer is set by the engine before Boot.
	Renderer     *renderer.Renderer
	State        interface{}
	FnBoot       Boot
	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Boot func() error
type Initialize func() error
type Update func(deltaTime float64) error
type Render func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
