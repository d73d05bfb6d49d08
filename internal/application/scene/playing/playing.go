// Package playing provides the main gameplay scene.
package playing

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pevious/internal/application/scene"
	"github.com/younwookim/pevious/internal/application/state"
	"github.com/younwookim/pevious/internal/application/system"
)

// Playing runs one session over the scrolling terrain
type Playing struct {
	env     *scene.Env
	rng     *rand.Rand
	session *system.Session

	over      bool
	highScore int
}

// New creates a Playing scene with a fresh session
func New(env *scene.Env, rng *rand.Rand) *Playing {
	p := &Playing{env: env, rng: rng}
	p.session = system.NewSession(env.Settings(), rng)
	p.session.OnSound = env.PlaySound
	p.session.OnGameOver = func(int) { p.over = true }
	return p
}

// State implements scene.Scene
func (p *Playing) State() state.GameState { return state.StatePlaying }

// Session exposes the running session
func (p *Playing) Session() *system.Session {
	return p.session
}

// OnEnter starts the music
func (p *Playing) OnEnter() {
	p.highScore = p.env.HighScore()
	p.env.StartBGM()
}

// OnExit stops the music
func (p *Playing) OnExit() {
	p.env.StopBGM()
}

// Update applies input, advances the scenery and the session, and moves to
// GameOver when the last life is lost
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.session.Apply(p.env.Input.Next())
	p.env.Scenery.Update(dt)
	p.session.Update(dt)

	if p.over {
		return p.env.Scenes.GameOver(p.session.Score), nil
	}
	return nil, nil
}

// Draw renders terrain, entities, clouds and HUD
func (p *Playing) Draw(screen *ebiten.Image) {
	r := p.env.Renderer
	r.DrawScenery(screen, p.env.Scenery)
	r.DrawSession(screen, p.env.Scenery, p.session)
	r.DrawClouds(screen, p.env.Scenery.CloudPlan())
	r.DrawHUD(screen, p.session, p.highScore)
}
