package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the ranges the simulation depends on.
func (c *GameConfig) Validate() error {
	g := c.Game
	switch {
	case g == nil || c.World == nil || c.Assets == nil:
		return invalid("missing section")
	case g.Display.ScreenWidth <= 0 || g.Display.ScreenHeight <= 0:
		return invalid("display size %dx%d", g.Display.ScreenWidth, g.Display.ScreenHeight)
	case g.Display.Framerate <= 0:
		return invalid("framerate %d", g.Display.Framerate)
	case g.Player.Lives <= 0:
		return invalid("player lives %d", g.Player.Lives)
	case g.Player.Radius <= 0 || g.Enemies.Radius <= 0:
		return invalid("radii must be positive")
	case g.Player.BlinkInterval <= 0:
		return invalid("blink interval %f", g.Player.BlinkInterval)
	case g.Session.SpawnInterval <= 0:
		return invalid("spawn interval %f", g.Session.SpawnInterval)
	case g.Session.MaxScaleTime <= 0:
		return invalid("max scale time %f", g.Session.MaxScaleTime)
	case g.Effects.ParticleCountMin > g.Effects.ParticleCountMax:
		return invalid("particle count range %d..%d", g.Effects.ParticleCountMin, g.Effects.ParticleCountMax)
	case c.World.Terrain.GridSpacing <= 0 || c.World.Clouds.GridSpacing <= 0 || c.World.Terrain.TintCellSize <= 0:
		return invalid("grid spacing must be positive")
	}

	for name, s := range map[string]int{"normal": g.Enemies.Normal.Health, "fast": g.Enemies.Fast.Health, "heavy": g.Enemies.Heavy.Health} {
		if s <= 0 {
			return invalid("%s enemy health %d", name, s)
		}
	}
	return nil
}

// resolveColors fills the colour fields of the entity configs from the
// colour table.
func (g *GameSettings) resolveColors() error {
	targets := []struct {
		key string
		dst *color.RGBA
	}{
		{"enemyNormal", &g.Enemies.Normal.Color},
		{"enemyFast", &g.Enemies.Fast.Color},
		{"enemyHeavy", &g.Enemies.Heavy.Color},
		{"heavyBullet", &g.Enemies.Heavy.BulletColor},
		{"playerBullet", &g.Bullets.Player.Color},
		{"enemyBullet", &g.Bullets.Enemy.Color},
		{"specialBullet", &g.Bullets.Special.Color},
	}
	for _, t := range targets {
		hex, ok := g.Colors[t.key]
		if !ok {
			continue
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("color %s: %w", t.key, err)
		}
		*t.dst = c
	}
	return nil
}

// Color returns a named colour from the table, or def when absent or
// malformed.
func (g *GameSettings) Color(key string, def color.RGBA) color.RGBA {
	hex, ok := g.Colors[key]
	if !ok {
		return def
	}
	c, err := ParseHexColor(hex)
	if err != nil {
		return def
	}
	return c
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, invalid("color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, invalid("color %q", s)
	}
	if len(s) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
