package entity

import (
	"image/color"
	"math"
)

// BulletType tells who fired a bullet.
type BulletType int

const (
	BulletPlayer BulletType = iota
	BulletEnemy
	BulletSpecial
)

// BulletConfig holds per-kind bullet parameters.
type BulletConfig struct {
	Radius     float64    `json:"radius"`
	Speed      float64    `json:"speed"`
	Damage     int        `json:"damage"`
	TrailCount int        `json:"trailCount"`
	TrailDecay float64    `json:"trailDecay"`
	Color      color.RGBA `json:"-"`
}

// Bullet flies in a straight line until it leaves the playfield.
type Bullet struct {
	Object
	Type     BulletType
	Velocity Vector2D
	Damage   int

	// Trail holds recent positions, oldest first.
	Trail      []Vector2D
	trailCount int
	TrailDecay float64

	field Playfield
}

// NewBullet creates a bullet.
func NewBullet(id EntityID, t BulletType, pos Vector2D, radius float64, vel Vector2D, c color.RGBA, cfg BulletConfig, field Playfield) *Bullet {
	return &Bullet{
		Object: Object{
			ID:       id,
			Position: pos,
			Radius:   radius,
			Color:    c,
			Active:   true,
		},
		Type:       t,
		Velocity:   vel,
		Damage:     cfg.Damage,
		Trail:      make([]Vector2D, 0, cfg.TrailCount),
		trailCount: cfg.TrailCount,
		TrailDecay: cfg.TrailDecay,
		field:      field,
	}
}

// Update moves the bullet and records its trail.
func (b *Bullet) Update(dt float64) {
	if !b.Active {
		return
	}
	b.record()
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	if !b.field.Contains(b.Position, b.Radius) {
		b.Active = false
	}
}

func (b *Bullet) record() {
	if b.trailCount <= 0 {
		return
	}
	if len(b.Trail) == b.trailCount {
		copy(b.Trail, b.Trail[1:])
		b.Trail = b.Trail[:len(b.Trail)-1]
	}
	b.Trail = append(b.Trail, b.Position)
}

// TrailAlpha returns the opacity of trail point i, brightest at the newest.
func (b *Bullet) TrailAlpha(i int) float64 {
	a := float64(i+1) * b.TrailDecay
	return math.Min(a, 1)
}

// HomingConfig holds the special bullet's steering ramp.
type HomingConfig struct {
	InitialRatio  float64 `json:"initialRatio"`
	FinalRatio    float64 `json:"finalRatio"`
	Duration      float64 `json:"duration"`
	RingBlink     float64 `json:"ringBlink"`
	RingRadiusMul float64 `json:"ringRadiusMul"`
}

// SpecialBullet is a homing bullet. It turns toward its target by a ratio of
// the remaining angle that ramps up over its lifetime, at constant speed.
type SpecialBullet struct {
	Bullet
	Target *Enemy
	Age    float64

	homing HomingConfig
}

// NewSpecialBullet creates a homing bullet locked on target. A nil target
// is acquired on the first update.
func NewSpecialBullet(id EntityID, pos Vector2D, vel Vector2D, target *Enemy, cfg BulletConfig, homing HomingConfig, field Playfield) *SpecialBullet {
	return &SpecialBullet{
		Bullet: *NewBullet(id, BulletSpecial, pos, cfg.Radius, vel, cfg.Color, cfg, field),
		Target: target,
		homing: homing,
	}
}

// HomingRatio returns the steering ratio for the current age.
func (s *SpecialBullet) HomingRatio() float64 {
	progress := 1.0
	if s.homing.Duration > 0 {
		progress = math.Min(s.Age/s.homing.Duration, 1)
	}
	return s.homing.InitialRatio + (s.homing.FinalRatio-s.homing.InitialRatio)*progress
}

// Steer re-acquires a target if needed and bends the heading toward it.
func (s *SpecialBullet) Steer(enemies []*Enemy) {
	if s.Target == nil || !s.Target.Active {
		s.Target = NearestEnemy(s.Position, enemies)
	}
	if s.Target == nil {
		return
	}

	current := math.Atan2(s.Velocity.Y, s.Velocity.X)
	bearing := math.Atan2(s.Target.Position.Y-s.Position.Y, s.Target.Position.X-s.Position.X)
	diff := NormalizeAngle(bearing - current)

	heading := current + diff*s.HomingRatio()
	speed := s.Velocity.Len()
	s.Velocity = Vector2D{X: math.Cos(heading) * speed, Y: math.Sin(heading) * speed}
}

// UpdateHoming steers then moves the bullet.
func (s *SpecialBullet) UpdateHoming(dt float64, enemies []*Enemy) {
	if !s.Active {
		return
	}
	s.Steer(enemies)
	s.Age += dt
	s.Bullet.Update(dt)
}

// Update moves the bullet without steering.
func (s *SpecialBullet) Update(dt float64) {
	s.UpdateHoming(dt, nil)
}

// RingVisible reports whether the blinking ring shows at time now.
func (s *SpecialBullet) RingVisible(now float64) bool {
	if s.homing.RingBlink <= 0 {
		return true
	}
	return int(now/s.homing.RingBlink)%2 == 0
}

// RingRadius returns the radius of the blinking ring.
func (s *SpecialBullet) RingRadius() float64 {
	if s.homing.RingRadiusMul <= 0 {
		return s.Radius * 2
	}
	return s.Radius * s.homing.RingRadiusMul
}

// NearestEnemy returns the closest active enemy to p, or nil.
func NearestEnemy(p Vector2D, enemies []*Enemy) *Enemy {
	var nearest *Enemy
	best := math.Inf(1)
	for _, e := range enemies {
		if !e.Active {
			continue
		}
		if d := p.Dist(e.Position); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}

// NormalizeAngle maps a into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
