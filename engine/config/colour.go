package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spaghettifunk/anima/engine/math"
	"golang.org/x/image/colornames"
)

// ParseColour turns an SVG colour name or a #rrggbb (or #rgb) string into a
// colour with components in [0, 1]. An empty string yields fallback.
func ParseColour(value string, fallback math.Vec3) (math.Vec3, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	if c, ok := colornames.Map[strings.ToLower(value)]; ok {
		return math.NewVec3(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255), nil
	}
	// colorful.Hex ignores trailing input, so the length is checked first
	if len(value) == 7 || len(value) == 4 {
		if c, err := colorful.Hex(value); err == nil {
			r, g, b := c.RGB255()
			return math.NewVec3(float32(r)/255, float32(g)/255, float32(b)/255), nil
		}
	}
	return fallback, fmt.Errorf("%w: unknown colour %q", ErrInvalidConfig, value)
}
