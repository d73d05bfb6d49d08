// Package title provides the title screen.
package title

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pevious/internal/application/scene"
	"github.com/younwookim/pevious/internal/application/state"
	"github.com/younwookim/pevious/internal/application/system"
	"github.com/younwookim/pevious/internal/domain/entity"
)

// startPad widens the start button's hit area
const startPad = 50.0

// Title shows the game name, the high score and a start button
type Title struct {
	env       *scene.Env
	start     *system.Button
	highScore int
}

// New creates the title scene
func New(env *scene.Env) *Title {
	return &Title{
		env:   env,
		start: system.NewCenteredButton("START", env.Width/2, env.Height*0.5+20, scene.ButtonWidth, scene.ButtonHeight, startPad),
	}
}

// State implements scene.Scene
func (t *Title) State() state.GameState { return state.StateTitle }

// OnEnter reads the high score
func (t *Title) OnEnter() {
	t.highScore = t.env.HighScore()
}

// OnExit implements scene.Scene
func (t *Title) OnExit() {}

// Update waits for the start button or the confirm key
func (t *Title) Update(dt float64) (scene.Scene, error) {
	for _, in := range t.env.Input.Next() {
		switch in := in.(type) {
		case system.PointerMoveIntent:
			t.env.HoverButtons(in.X, in.Y, t.start)
		case system.ClickIntent:
			if t.start.Contains(in.X, in.Y) {
				return t.begin(), nil
			}
		case system.ConfirmIntent:
			return t.begin(), nil
		}
	}
	return nil, nil
}

func (t *Title) begin() scene.Scene {
	t.env.PlaySound(scene.SoundClick)
	return t.env.Scenes.Ready()
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	r := t.env.Renderer
	pal := r.Palette
	w, h := t.env.Width, t.env.Height

	screen.Fill(pal.TitleBackground)

	ship := entity.Object{
		Position: entity.Vector2D{X: w / 2, Y: h * 0.3},
		Radius:   100,
		Color:    pal.Player,
		ImageKey: "player",
	}
	r.DrawObject(screen, &ship, 1)

	r.Text(screen, "PEVIOUS", w/2, h*0.5-90, 5, system.AlignCenter, pal.Text)
	r.Text(screen, fmt.Sprintf("HIGH SCORE %06d", t.highScore), w/2, h*0.5-25, 2, system.AlignCenter, pal.Text)
	r.DrawButton(screen, t.start)
	r.Text(screen, "MOUSE: MOVE   SPACE: SHOOT   P: SPECIAL", w/2, h*0.5+120, 1.5, system.AlignCenter, pal.Text)
	r.Text(screen, "ENTER: START", w/2, h*0.5+150, 1.5, system.AlignCenter, pal.Text)
}
