// Package gameover provides the results screen.
package gameover

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pevious/internal/application/scene"
	"github.com/younwookim/pevious/internal/application/state"
	"github.com/younwookim/pevious/internal/application/system"
)

// GameOver shows the final score, records a new high score and offers a
// replay
type GameOver struct {
	env    *scene.Env
	score  int
	replay *system.Button

	highScore int
	newRecord bool
	copied    bool
}

// New creates the game over scene for a finished session
func New(env *scene.Env, score int) *GameOver {
	return &GameOver{
		env:    env,
		score:  score,
		replay: system.NewCenteredButton("REPLAY", env.Width/2, env.Height/2+20, scene.ButtonWidth, scene.ButtonHeight, 0),
	}
}

// State implements scene.Scene
func (g *GameOver) State() state.GameState { return state.StateGameOver }

// Score returns the final score
func (g *GameOver) Score() int { return g.score }

// NewRecord reports whether the score beat the stored high score
func (g *GameOver) NewRecord() bool { return g.newRecord }

// OnEnter stores the score if it is a new high score
func (g *GameOver) OnEnter() {
	g.env.StopBGM()
	if g.env.Scores != nil {
		recorded, err := g.env.Scores.Set(g.score)
		if err != nil {
			log.Printf("failed to save high score: %v", err)
		}
		g.newRecord = recorded
	}
	g.highScore = g.env.HighScore()
	g.copied = false
}

// OnExit implements scene.Scene
func (g *GameOver) OnExit() {}

// ResultLine is the text copied to the clipboard
func (g *GameOver) ResultLine() string {
	return fmt.Sprintf("Pevious score %06d (high score %06d)", g.score, g.highScore)
}

// Update waits for replay, and copies the result on request
func (g *GameOver) Update(dt float64) (scene.Scene, error) {
	for _, in := range g.env.Input.Next() {
		switch in := in.(type) {
		case system.PointerMoveIntent:
			g.env.HoverButtons(in.X, in.Y, g.replay)
		case system.ClickIntent:
			if g.replay.Contains(in.X, in.Y) {
				return g.restart(), nil
			}
		case system.ConfirmIntent:
			return g.restart(), nil
		case system.CopyIntent:
			g.copy()
		}
	}
	return nil, nil
}

func (g *GameOver) restart() scene.Scene {
	g.env.PlaySound(scene.SoundClick)
	return g.env.Scenes.Playing()
}

func (g *GameOver) copy() {
	if g.env.Clipboard == nil {
		return
	}
	if err := g.env.Clipboard.WriteText(g.ResultLine()); err != nil {
		log.Printf("copy score: %v", err)
		return
	}
	g.copied = true
}

// Draw renders the frozen terrain under the results
func (g *GameOver) Draw(screen *ebiten.Image) {
	r := g.env.Renderer
	pal := r.Palette
	w, h := g.env.Width, g.env.Height

	r.DrawScenery(screen, g.env.Scenery)
	r.DrawClouds(screen, g.env.Scenery.CloudPlan())
	r.Dim(screen, 0.6)

	r.Text(screen, "GAME OVER", w/2, h/2-130, 5, system.AlignCenter, pal.Text)
	r.Text(screen, fmt.Sprintf("SCORE %06d", g.score), w/2, h/2-60, 2, system.AlignCenter, pal.Text)
	r.Text(screen, fmt.Sprintf("HIGH SCORE %06d", g.highScore), w/2, h/2-30, 2, system.AlignCenter, pal.Text)
	if g.newRecord {
		r.Text(screen, "NEW RECORD!", w/2, h/2-175, 2, system.AlignCenter, pal.Gauge)
	}
	r.DrawButton(screen, g.replay)

	hint := "ENTER: REPLAY   C: COPY SCORE"
	if g.copied {
		hint = "SCORE COPIED"
	}
	r.Text(screen, hint, w/2, h/2+110, 1.5, system.AlignCenter, pal.Text)
}
