package config

import "github.com/younwookim/pevious/internal/domain/entity"

// GameSettings is the root config for game.json
type GameSettings struct {
	Display  DisplayConfig       `json:"display"`
	Session  SessionConfig       `json:"session"`
	Player   entity.PlayerConfig `json:"player"`
	Enemies  EnemiesConfig       `json:"enemies"`
	Bullets  BulletsConfig       `json:"bullets"`
	Effects  EffectsConfig       `json:"effects"`
	Audio    AudioConfig         `json:"audio"`
	Colors   map[string]string   `json:"colors"`
	Controls ControlsConfig      `json:"controls"`
}

type DisplayConfig struct {
	ScreenWidth  int     `json:"screenWidth"`
	ScreenHeight int     `json:"screenHeight"`
	Scale        float64 `json:"scale"`
	Framerate    int     `json:"framerate"`
	Title        string  `json:"title"`
}

// SessionConfig controls pacing of a play session
type SessionConfig struct {
	ReadyDuration  float64 `json:"readyDuration"`
	SpawnInterval  float64 `json:"spawnInterval"`
	MaxScaleTime   float64 `json:"maxScaleTime"`
	FastAfter      float64 `json:"fastAfter"`
	HeavyAfter     float64 `json:"heavyAfter"`
	RampFastChance float64 `json:"rampFastChance"`
	LateHeavy      float64 `json:"lateHeavyChance"`
	LateFast       float64 `json:"lateFastChance"`
}

// AudioConfig holds mixer volumes
type AudioConfig struct {
	BGMVolume float64            `json:"bgmVolume"`
	Volumes   map[string]float64 `json:"volumes"` // per sound key
}

// ControlsConfig names the keys bound to actions (ebiten key names)
type ControlsConfig struct {
	Fire    string `json:"fire"`
	Special string `json:"special"`
	Confirm string `json:"confirm"`
	Copy    string `json:"copy"`
}

// Volume returns the configured volume for a sound key, or def.
func (a AudioConfig) Volume(key string, def float64) float64 {
	if v, ok := a.Volumes[key]; ok {
		return v
	}
	return def
}
