// Package scenetest provides fakes for driving scenes in tests.
package scenetest

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pevious/internal/application/scene"
	"github.com/younwookim/pevious/internal/application/state"
	"github.com/younwookim/pevious/internal/application/system"
	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/domain/terrain"
	"github.com/younwookim/pevious/internal/infrastructure/clipboard"
	"github.com/younwookim/pevious/internal/infrastructure/config"
)

// Input replays queued input states. Once drained it keeps reporting the
// last pointer position with no buttons down.
type Input struct {
	queue []system.InputState
	last  system.InputState
}

// Push queues states for the next polls
func (in *Input) Push(states ...system.InputState) {
	in.queue = append(in.queue, states...)
}

// Click queues a click at (x, y)
func (in *Input) Click(x, y int) {
	in.Push(system.InputState{MouseX: x, MouseY: y, Click: true})
}

// Poll implements system.InputSource
func (in *Input) Poll() system.InputState {
	if len(in.queue) == 0 {
		return system.InputState{MouseX: in.last.MouseX, MouseY: in.last.MouseY}
	}
	s := in.queue[0]
	in.queue = in.queue[1:]
	in.last = s
	return s
}

// Sounds records every call
type Sounds struct {
	Played  []string
	BGM     string
	Starts  int
	Stops   int
	BGMFail error
}

// PlaySound implements scene.Sounds
func (s *Sounds) PlaySound(key string, volume float64) {
	s.Played = append(s.Played, key)
}

// PlayBGM implements scene.Sounds
func (s *Sounds) PlayBGM(key string, volume float64) error {
	if s.BGMFail != nil {
		return s.BGMFail
	}
	s.BGM = key
	s.Starts++
	return nil
}

// StopBGM implements scene.Sounds
func (s *Sounds) StopBGM() {
	s.BGM = ""
	s.Stops++
}

// Count returns how many times key was played
func (s *Sounds) Count(key string) int {
	n := 0
	for _, k := range s.Played {
		if k == key {
			n++
		}
	}
	return n
}

// Scores is an in-memory high score
type Scores struct {
	Best int
	Err  error
}

// Get implements scene.HighScores
func (s *Scores) Get() int { return s.Best }

// Set implements scene.HighScores
func (s *Scores) Set(score int) (bool, error) {
	if score <= s.Best {
		return false, nil
	}
	s.Best = score
	return true, s.Err
}

// Config returns a small but complete game config
func Config() *config.GameConfig {
	return &config.GameConfig{
		Game: &config.GameSettings{
			Display: config.DisplayConfig{ScreenWidth: 800, ScreenHeight: 1000, Framerate: 60},
			Session: config.SessionConfig{ReadyDuration: 3, SpawnInterval: 1, MaxScaleTime: 120},
			Player: entity.PlayerConfig{
				Radius: 15, Lives: 3, RespawnTime: 1, InvincibilityTime: 2,
				BlinkInterval: 0.25, FireInterval: 0.25, SpecialChargeTime: 3,
			},
			Enemies: config.EnemiesConfig{
				Radius: 20, FlashTime: 0.15,
				Normal: entity.EnemyStats{Health: 1, Speed: 200, ShootInterval: 1, RadiusScale: 1, Score: 100},
				Fast:   entity.EnemyStats{Health: 1, Speed: 400, ShootInterval: 2, RadiusScale: 1, Score: 100},
				Heavy:  entity.EnemyStats{Health: 5, Speed: 200, ShootInterval: 0.5, RadiusScale: 1.5, Score: 300},
			},
			Bullets: config.BulletsConfig{
				Player:  entity.BulletConfig{Radius: 4, Speed: 500, Damage: 1},
				Enemy:   entity.BulletConfig{Radius: 5, Speed: 300, Damage: 1},
				Special: entity.BulletConfig{Radius: 6, Speed: 800, Damage: 10},
				Homing:  entity.HomingConfig{InitialRatio: 0.1, FinalRatio: 1, Duration: 6},
			},
			Effects: config.EffectsConfig{
				ParticleCountMin: 5, ParticleCountMax: 8,
				ParticleSpeedMin: 50, ParticleSpeedMax: 150,
				ParticleRadiusMin: 3, ParticleRadiusMax: 8,
				ParticleLifetime: 1, ScoreTextLifetime: 0.5, ScoreTextRise: 50,
			},
		},
		World: &config.WorldConfig{
			ScrollSpeed: 100,
			Terrain:     terrain.DefaultConfig(),
			Clouds:      terrain.DefaultCloudConfig(),
		},
		Assets: &config.AssetsConfig{BGM: "sounds/bgm.mp3"},
	}
}

// Env bundles a scene.Env with its fakes
type Env struct {
	*scene.Env
	In   *Input
	Snd  *Sounds
	HS   *Scores
	Clip *clipboard.Memory
	RNG  *rand.Rand
}

// NewEnv builds an Env on fakes. Transitions produce Markers.
func NewEnv() *Env {
	cfg := Config()
	rng := rand.New(rand.NewSource(7))
	in := &Input{}
	e := &Env{
		In:   in,
		Snd:  &Sounds{},
		HS:   &Scores{},
		Clip: &clipboard.Memory{},
		RNG:  rng,
	}
	w := float64(cfg.Game.Display.ScreenWidth)
	h := float64(cfg.Game.Display.ScreenHeight)
	e.Env = &scene.Env{
		Config:    cfg,
		Width:     w,
		Height:    h,
		Input:     system.NewController(in),
		Scenery:   system.NewScenery(cfg.World, w, h, rng),
		Renderer:  system.NewRenderer(system.NewPalette(cfg.Game), nil),
		Sounds:    e.Snd,
		Scores:    e.HS,
		Clipboard: e.Clip,
		Scenes:    MarkerFactory(),
	}
	return e
}

// Marker is a do-nothing scene that records which factory built it
type Marker struct {
	Name  string
	Score int
	Kind  state.GameState
}

// Update implements scene.Scene
func (m *Marker) Update(dt float64) (scene.Scene, error) { return nil, nil }

// Draw implements scene.Scene
func (m *Marker) Draw(screen *ebiten.Image) {}

// OnEnter implements scene.Scene
func (m *Marker) OnEnter() {}

// OnExit implements scene.Scene
func (m *Marker) OnExit() {}

// State implements scene.Scene
func (m *Marker) State() state.GameState { return m.Kind }

// MarkerFactory returns a factory whose scenes are Markers
func MarkerFactory() scene.Factory {
	return scene.Factory{
		Title:   func() scene.Scene { return &Marker{Name: "title", Kind: state.StateTitle} },
		Ready:   func() scene.Scene { return &Marker{Name: "ready", Kind: state.StateReady} },
		Playing: func() scene.Scene { return &Marker{Name: "playing", Kind: state.StatePlaying} },
		GameOver: func(score int) scene.Scene {
			return &Marker{Name: "gameover", Score: score, Kind: state.StateGameOver}
		},
	}
}
