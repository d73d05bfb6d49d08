package terrain

import (
	"github.com/younwookim/pevious/internal/domain/camera"
	"github.com/younwookim/pevious/internal/domain/entity"
)

// Shadow is where a flying object's shadow lands on the ground.
type Shadow struct {
	X, Y    float64 // playfield coordinates
	OverSea bool
}

// ShadowFor projects the shadow of an object at playfield position pos.
// Shadows fall further over forest, as if cast onto the canopy from higher up.
func (g *Generator) ShadowFor(cam *camera.Camera, pos entity.Vector2D) Shadow {
	ox, oy := g.cfg.ShadowOffsetX, g.cfg.ShadowOffsetY

	w := cam.ScreenToWorld(pos)
	if n, _ := g.TreeNoiseAndRadius(w.X, w.Y); n > g.cfg.ShadowTreeNoise {
		ox += g.cfg.ShadowTreeAdjust
		oy += g.cfg.ShadowTreeAdjust
	}

	s := entity.Vector2D{X: pos.X + ox, Y: pos.Y + oy}
	sw := cam.ScreenToWorld(s)
	return Shadow{X: s.X, Y: s.Y, OverSea: g.IsSeaAvailable(sw.X, sw.Y)}
}
