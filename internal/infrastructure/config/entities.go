package config

import "github.com/younwookim/pevious/internal/domain/entity"

// EnemiesConfig holds the shared and per-type enemy parameters
type EnemiesConfig struct {
	Radius    float64           `json:"radius"`
	FlashTime float64           `json:"flashTime"`
	Normal    entity.EnemyStats `json:"normal"`
	Fast      entity.EnemyStats `json:"fast"`
	Heavy     entity.EnemyStats `json:"heavy"`
}

// Stats returns the stats for an enemy type.
func (c *EnemiesConfig) Stats(t entity.EnemyType) entity.EnemyStats {
	switch t {
	case entity.EnemyFast:
		return c.Fast
	case entity.EnemyHeavy:
		return c.Heavy
	default:
		return c.Normal
	}
}

// BulletsConfig holds the three bullet kinds
type BulletsConfig struct {
	Player  entity.BulletConfig `json:"player"`
	Enemy   entity.BulletConfig `json:"enemy"`
	Special entity.BulletConfig `json:"special"`
	Homing  entity.HomingConfig `json:"homing"`
}

// EffectsConfig holds cosmetic effect parameters
type EffectsConfig struct {
	ParticleCountMin  int      `json:"particleCountMin"`
	ParticleCountMax  int      `json:"particleCountMax"`
	ParticleSpeedMin  float64  `json:"particleSpeedMin"`
	ParticleSpeedMax  float64  `json:"particleSpeedMax"`
	ParticleRadiusMin float64  `json:"particleRadiusMin"`
	ParticleRadiusMax float64  `json:"particleRadiusMax"`
	ParticleLifetime  float64  `json:"particleLifetime"`
	ParticleColors    []string `json:"particleColors"`
	ScoreTextLifetime float64  `json:"scoreTextLifetime"`
	ScoreTextRise     float64  `json:"scoreTextRise"`
}
