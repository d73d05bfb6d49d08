package entity

import (
	"fmt"
	"image/color"
	"math"
)

// Particle is a cosmetic spark that shrinks and fades over its lifetime.
type Particle struct {
	Object
	Velocity    Vector2D
	Lifetime    float64 // elapsed seconds
	MaxLifetime float64

	initialRadius float64
	field         Playfield
}

// NewParticle creates a particle.
func NewParticle(id EntityID, pos Vector2D, radius float64, vel Vector2D, lifetime float64, c color.RGBA, field Playfield) *Particle {
	return &Particle{
		Object: Object{
			ID:       id,
			Position: pos,
			Radius:   radius,
			Color:    c,
			Active:   true,
		},
		Velocity:      vel,
		MaxLifetime:   lifetime,
		initialRadius: radius,
		field:         field,
	}
}

// Update moves the particle and shrinks it linearly to zero.
func (p *Particle) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Lifetime += dt
	if p.Lifetime >= p.MaxLifetime {
		p.Active = false
		return
	}
	p.Radius = p.initialRadius * (1 - p.progress())
	if !p.field.Contains(p.Position, p.Radius) {
		p.Active = false
	}
}

// Alpha returns the current opacity.
func (p *Particle) Alpha() float64 {
	return 1 - p.progress()
}

func (p *Particle) progress() float64 {
	if p.MaxLifetime <= 0 {
		return 1
	}
	return math.Min(p.Lifetime/p.MaxLifetime, 1)
}

// ScoreText is a floating "+N" label that rises, slows and fades.
type ScoreText struct {
	ID          EntityID
	Position    Vector2D
	Velocity    Vector2D
	Text        string
	Color       color.RGBA
	Lifetime    float64 // remaining seconds
	MaxLifetime float64
	Active      bool
}

// NewScoreText creates a label for points awarded at pos.
func NewScoreText(id EntityID, pos Vector2D, points int, lifetime, riseSpeed float64, c color.RGBA) *ScoreText {
	return &ScoreText{
		ID:          id,
		Position:    pos,
		Velocity:    Vector2D{Y: -riseSpeed},
		Text:        fmt.Sprintf("+%d", points),
		Color:       c,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
		Active:      true,
	}
}

// Update moves the label. Rise speed decays by 5% per 60 Hz tick.
func (s *ScoreText) Update(dt float64) {
	if !s.Active {
		return
	}
	s.Position = s.Position.Add(s.Velocity.Scale(dt))
	s.Velocity.Y *= math.Pow(0.95, dt*60)
	s.Lifetime -= dt
	if s.Lifetime <= 0 {
		s.Active = false
	}
}

// Alpha returns the current opacity.
func (s *ScoreText) Alpha() float64 {
	if s.MaxLifetime <= 0 {
		return 0
	}
	return math.Max(0, s.Lifetime/s.MaxLifetime)
}
