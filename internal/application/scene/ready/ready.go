// Package ready provides the countdown shown before play starts.
package ready

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pevious/internal/application/scene"
	"github.com/younwookim/pevious/internal/application/state"
	"github.com/younwookim/pevious/internal/application/system"
)

// Ready scrolls the terrain under a countdown, then starts play
type Ready struct {
	env      *scene.Env
	elapsed  float64
	duration float64
}

// New creates the ready scene
func New(env *scene.Env) *Ready {
	return &Ready{env: env, duration: env.Settings().Session.ReadyDuration}
}

// State implements scene.Scene
func (r *Ready) State() state.GameState { return state.StateReady }

// OnEnter restarts the countdown
func (r *Ready) OnEnter() {
	r.elapsed = 0
}

// OnExit implements scene.Scene
func (r *Ready) OnExit() {}

// Remaining returns the seconds left on the countdown
func (r *Ready) Remaining() float64 {
	return math.Max(0, r.duration-r.elapsed)
}

// Update advances the countdown. Input is drained but ignored.
func (r *Ready) Update(dt float64) (scene.Scene, error) {
	r.env.Input.Next()
	r.env.Scenery.Update(dt)

	r.elapsed += dt
	if r.elapsed >= r.duration {
		return r.env.Scenes.Playing(), nil
	}
	return nil, nil
}

// Draw renders the terrain and the countdown
func (r *Ready) Draw(screen *ebiten.Image) {
	rd := r.env.Renderer
	rd.DrawScenery(screen, r.env.Scenery)
	rd.DrawClouds(screen, r.env.Scenery.CloudPlan())

	w, h := r.env.Width, r.env.Height
	rd.Text(screen, "READY?", w/2, h/2-60, 5, system.AlignCenter, rd.Palette.Text)
	rd.Text(screen, fmt.Sprintf("%d", int(math.Ceil(r.Remaining()))), w/2, h/2+20, 4, system.AlignCenter, rd.Palette.Text)
}
