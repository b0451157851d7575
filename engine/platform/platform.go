package platform

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/anima/engine/core"
)

var (
	processStart = time.Now()
	glfwStarted  = false
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform is the source of ticks for the engine loop. A windowed platform
// runs until its window is closed; a headless one until its tick budget is
// spent. A budget of zero never runs out.
type Platform struct {
	Window *glfw.Window

	headless   bool
	tickBudget uint64
	ticks      uint64
	done       bool
}

func New() *Platform {
	return &Platform{}
}

func NewHeadless(tickBudget uint64) *Platform {
	return &Platform{headless: true, tickBudget: tickBudget}
}

func (p *Platform) IsHeadless() bool {
	return p.headless
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	p.done = false
	p.ticks = 0
	if p.headless {
		core.LogInfo("starting '%s' headless, tick budget %d", applicationName, p.tickBudget)
		return nil
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	glfwStarted = true

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		glfw.Terminate()
		glfwStarted = false
		return fmt.Errorf("failed to create window: %w", err)
	}
	p.Window = window

	p.Window.SetKeyCallback(keyCallback)
	p.Window.SetFramebufferSizeCallback(framebufferSizeCallback)
	p.Window.SetCloseCallback(closeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	if glfwStarted {
		glfw.Terminate()
		glfwStarted = false
	}
	return nil
}

// PumpMessages processes pending window events and counts one tick. It
// returns false once the platform is done.
func (p *Platform) PumpMessages() bool {
	if p.done {
		return false
	}
	if p.headless {
		p.ticks++
		if p.tickBudget > 0 && p.ticks > p.tickBudget {
			p.done = true
		}
		return !p.done
	}

	glfw.PollEvents()
	if p.Window == nil || p.Window.ShouldClose() {
		p.done = true
	}
	return !p.done
}

func (p *Platform) IsDone() bool {
	return p.done
}

// Ticks returns the number of ticks pumped so far.
func (p *Platform) Ticks() uint64 {
	return p.ticks
}

func (p *Platform) Sleep(ms float64) {
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}

// GetAbsoluteTime returns seconds since the process started.
func GetAbsoluteTime() float64 {
	if glfwStarted {
		return glfw.GetTime()
	}
	return time.Since(processStart).Seconds()
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	}
}

func closeCallback(w *glfw.Window) {
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: [2]uint32{uint32(width), uint32(height)},
	})
}
