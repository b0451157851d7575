package engine

import (
	"github.com/spaghettifunk/anima/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel core.LogLevel
	// Scene file watched for changes when WatchConfig is set.
	ConfigPath  string
	WatchConfig bool
	// Caps the loop at TargetFPS when set.
	LimitFrames bool
	TargetFPS   float64
}
