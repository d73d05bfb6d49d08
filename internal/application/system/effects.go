package system

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/infrastructure/config"
)

// IDSource hands out entity ids for one session
type IDSource struct {
	next entity.EntityID
}

// Next returns a fresh id
func (s *IDSource) Next() entity.EntityID {
	s.next++
	return s.next
}

// EffectSpawner builds cosmetic particles and score labels
type EffectSpawner struct {
	cfg        config.EffectsConfig
	palette    []color.RGBA
	scoreColor color.RGBA
	field      entity.Playfield
	rng        *rand.Rand
	ids        *IDSource
}

// NewEffectSpawner resolves the particle palette from cfg
func NewEffectSpawner(cfg config.EffectsConfig, scoreColor color.RGBA, field entity.Playfield, rng *rand.Rand, ids *IDSource) *EffectSpawner {
	palette := make([]color.RGBA, 0, len(cfg.ParticleColors))
	for _, hex := range cfg.ParticleColors {
		c, err := config.ParseHexColor(hex)
		if err != nil {
			log.Printf("particle color skipped: %v", err)
			continue
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		palette = append(palette, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	}
	return &EffectSpawner{
		cfg:        cfg,
		palette:    palette,
		scoreColor: scoreColor,
		field:      field,
		rng:        rng,
		ids:        ids,
	}
}

// Explosion returns a burst of particles flying out from pos
func (e *EffectSpawner) Explosion(pos entity.Vector2D) []*entity.Particle {
	n := e.cfg.ParticleCountMin
	if span := e.cfg.ParticleCountMax - e.cfg.ParticleCountMin; span > 0 {
		n += e.rng.Intn(span + 1)
	}

	out := make([]*entity.Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := e.between(e.cfg.ParticleSpeedMin, e.cfg.ParticleSpeedMax)
		radius := e.between(e.cfg.ParticleRadiusMin, e.cfg.ParticleRadiusMax)
		vel := entity.Vector2D{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
		c := e.palette[e.rng.Intn(len(e.palette))]
		out = append(out, entity.NewParticle(e.ids.Next(), pos, radius, vel, e.cfg.ParticleLifetime, c, e.field))
	}
	return out
}

// ScoreText returns a floating label for points awarded at pos
func (e *EffectSpawner) ScoreText(pos entity.Vector2D, points int) *entity.ScoreText {
	return entity.NewScoreText(e.ids.Next(), pos, points, e.cfg.ScoreTextLifetime, e.cfg.ScoreTextRise, e.scoreColor)
}

func (e *EffectSpawner) between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.Float64()*(hi-lo)
}
