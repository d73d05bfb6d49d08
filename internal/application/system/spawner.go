package system

import (
	"math/rand"

	"github.com/younwookim/pevious/internal/domain/difficulty"
	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/infrastructure/config"
)

// Spawner releases enemies at the top of the playfield on a fixed interval
type Spawner struct {
	Interval float64
	timer    float64

	cfg    *config.EnemiesConfig
	scaler *difficulty.Scaler
	field  entity.Playfield
	rng    *rand.Rand
	ids    *IDSource
}

// NewSpawner creates a spawner that fires on its first update
func NewSpawner(interval float64, cfg *config.EnemiesConfig, scaler *difficulty.Scaler, field entity.Playfield, rng *rand.Rand, ids *IDSource) *Spawner {
	return &Spawner{
		Interval: interval,
		timer:    interval,
		cfg:      cfg,
		scaler:   scaler,
		field:    field,
		rng:      rng,
		ids:      ids,
	}
}

// Update advances the timer and returns a new enemy when one is due
func (s *Spawner) Update(dt, elapsed float64) *entity.Enemy {
	s.timer += dt
	if s.timer < s.Interval {
		return nil
	}
	s.timer = 0
	return s.Spawn(elapsed)
}

// Spawn creates an enemy just above the playfield. Type, size and speed
// follow the difficulty at elapsed.
func (s *Spawner) Spawn(elapsed float64) *entity.Enemy {
	t := enemyType(s.scaler.PickKind(elapsed, s.rng))
	stats := s.cfg.Stats(t)
	mult := s.scaler.SpawnMultiplier(elapsed)

	scale := stats.RadiusScale
	if scale <= 0 {
		scale = 1
	}
	radius := s.cfg.Radius * scale * mult
	speed := stats.Speed * mult

	x := radius
	if span := s.field.Width - 2*radius; span > 0 {
		x += s.rng.Float64() * span
	}
	pos := entity.Vector2D{X: x, Y: -radius}
	vel := entity.SpawnVelocity(speed, s.rng.Float64(), s.rng.Float64())

	return entity.NewEnemy(s.ids.Next(), t, pos, radius, vel, stats, s.field, s.cfg.FlashTime)
}

func enemyType(k difficulty.EnemyKind) entity.EnemyType {
	switch k {
	case difficulty.KindFast:
		return entity.EnemyFast
	case difficulty.KindHeavy:
		return entity.EnemyHeavy
	default:
		return entity.EnemyNormal
	}
}
