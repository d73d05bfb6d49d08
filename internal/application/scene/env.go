package scene

import (
	"log"

	"github.com/younwookim/pevious/internal/application/system"
	"github.com/younwookim/pevious/internal/infrastructure/clipboard"
	"github.com/younwookim/pevious/internal/infrastructure/config"
)

// Menu feedback sounds and the BGM key
const (
	SoundClick  = "button-click"
	SoundSelect = "button-select"
	BGMKey      = "bgm"
)

// Button layout shared by the menu screens
const (
	ButtonWidth  = 200.0
	ButtonHeight = 60.0
	ButtonPad    = 20.0
)

// Sounds is the audio surface scenes use
type Sounds interface {
	PlaySound(key string, volume float64)
	PlayBGM(key string, volume float64) error
	StopBGM()
}

// HighScores is the persisted best score
type HighScores interface {
	Get() int
	Set(score int) (bool, error)
}

// Factory builds the next scene. Scenes never construct each other
// directly, which keeps the scene packages free of import cycles.
type Factory struct {
	Title    func() Scene
	Ready    func() Scene
	Playing  func() Scene
	GameOver func(score int) Scene
}

// Env carries the services shared by every scene
type Env struct {
	Config    *config.GameConfig
	Width     float64
	Height    float64
	Input     *system.Controller
	Scenery   *system.Scenery
	Renderer  *system.Renderer
	Sounds    Sounds
	Scores    HighScores
	Clipboard clipboard.Writer
	Scenes    Factory
}

// Settings returns the game settings
func (e *Env) Settings() *config.GameSettings {
	return e.Config.Game
}

// PlaySound plays key at its configured volume
func (e *Env) PlaySound(key string) {
	if e.Sounds == nil {
		return
	}
	e.Sounds.PlaySound(key, e.Config.Game.Audio.Volume(key, 0.5))
}

// StartBGM starts the background track, logging a missing one
func (e *Env) StartBGM() {
	if e.Sounds == nil || e.Config.Assets == nil || e.Config.Assets.BGM == "" {
		return
	}
	if err := e.Sounds.PlayBGM(BGMKey, e.Config.Game.Audio.BGMVolume); err != nil {
		log.Printf("bgm unavailable: %v", err)
	}
}

// StopBGM stops the background track
func (e *Env) StopBGM() {
	if e.Sounds != nil {
		e.Sounds.StopBGM()
	}
}

// HoverButtons updates hover state and plays the select sound when the
// pointer enters a button
func (e *Env) HoverButtons(x, y float64, buttons ...*system.Button) {
	for _, b := range buttons {
		if b.Hover(x, y) {
			e.PlaySound(SoundSelect)
		}
	}
}

// HighScore returns the stored high score, or 0 without a store
func (e *Env) HighScore() int {
	if e.Scores == nil {
		return 0
	}
	return e.Scores.Get()
}
