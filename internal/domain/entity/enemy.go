package entity

import (
	"fmt"
	"image/color"
	"math"
)

// EnemyType selects an enemy's stats. It is fixed at spawn.
type EnemyType int

const (
	EnemyNormal EnemyType = iota
	EnemyFast
	EnemyHeavy
)

// String returns the string representation of the enemy type
func (t EnemyType) String() string {
	switch t {
	case EnemyNormal:
		return "Normal"
	case EnemyFast:
		return "Fast"
	case EnemyHeavy:
		return "Heavy"
	default:
		return fmt.Sprintf("EnemyType(%d)", int(t))
	}
}

// EnemyStats are the per-type parameters.
type EnemyStats struct {
	Health           int        `json:"health"`
	Speed            float64    `json:"speed"`
	ShootInterval    float64    `json:"shootInterval"`
	RadiusScale      float64    `json:"radiusScale"`
	BulletSpeedScale float64    `json:"bulletSpeedScale"`
	Score            int        `json:"score"`
	ImageKey         string     `json:"imageKey"`
	Color            color.RGBA `json:"-"`
	BulletColor      color.RGBA `json:"-"`
}

// Enemy drifts down the playfield and fires at the player.
type Enemy struct {
	Object
	Type      EnemyType
	Health    int
	MaxHealth int
	Velocity  Vector2D

	LastShootTime float64
	hasShot       bool

	FlashTimer float64 // >0 while showing the hit flash
	flashTime  float64

	stats EnemyStats
	field Playfield
}

// NewEnemy creates an enemy. Velocity is chosen by the caller.
func NewEnemy(id EntityID, t EnemyType, pos Vector2D, radius float64, vel Vector2D, stats EnemyStats, field Playfield, flashTime float64) *Enemy {
	return &Enemy{
		Object: Object{
			ID:        id,
			Position:  pos,
			Radius:    radius,
			Color:     stats.Color,
			Active:    true,
			ImageKey:  stats.ImageKey,
			HasShadow: true,
		},
		Type:      t,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Velocity:  vel,
		flashTime: flashTime,
		stats:     stats,
		field:     field,
	}
}

// Update moves the enemy, bouncing off the side walls. It deactivates once
// fully below the playfield.
func (e *Enemy) Update(dt float64) {
	if !e.Active {
		return
	}

	e.Position = e.Position.Add(e.Velocity.Scale(dt))

	if e.Position.X-e.Radius < 0 && e.Velocity.X < 0 ||
		e.Position.X+e.Radius > e.field.Width && e.Velocity.X > 0 {
		e.Velocity.X = -e.Velocity.X
	}

	if e.Position.Y-e.Radius > e.field.Height {
		e.Active = false
	}

	if e.FlashTimer > 0 {
		e.FlashTimer -= dt
		if e.FlashTimer < 0 {
			e.FlashTimer = 0
		}
	}
}

// ShootInterval returns the cooldown after applying the difficulty
// multiplier.
func (e *Enemy) ShootInterval(multiplier float64) float64 {
	return e.stats.ShootInterval * multiplier
}

// Shoot fires at target if the cooldown has elapsed, and returns nil
// otherwise. A fresh enemy may fire immediately.
func (e *Enemy) Shoot(id EntityID, target Vector2D, now, intervalMultiplier float64, shot BulletConfig) *Bullet {
	if !e.Active {
		return nil
	}
	if e.hasShot && now-e.LastShootTime < e.ShootInterval(intervalMultiplier) {
		return nil
	}
	e.LastShootTime = now
	e.hasShot = true

	dir := HeadingTo(e.Position, target)
	speed := shot.Speed
	if e.stats.BulletSpeedScale > 0 {
		speed *= e.stats.BulletSpeedScale
	}

	c := shot.Color
	if e.stats.BulletColor.A != 0 {
		c = e.stats.BulletColor
	}
	return NewBullet(id, BulletEnemy, e.Position, shot.Radius, dir.Scale(speed), c, shot, e.field)
}

// TakeDamage subtracts health and reports whether the enemy died.
// Sturdy enemies flash when they survive a hit.
func (e *Enemy) TakeDamage(damage int) bool {
	e.Health -= damage
	if e.Health <= 0 {
		return true
	}
	if e.MaxHealth >= 2 {
		e.FlashTimer = e.flashTime
	}
	return false
}

// Flashing reports whether the hit flash is showing.
func (e *Enemy) Flashing() bool {
	return e.FlashTimer > 0
}

// ScoreValue returns the points awarded for destroying the enemy.
func (e *Enemy) ScoreValue() int {
	return e.stats.Score
}

// SpawnVelocity derives a drift velocity from two uniform samples in [0,1).
// Enemies drift sideways at up to half speed and always move down.
func SpawnVelocity(speed, r1, r2 float64) Vector2D {
	return Vector2D{
		X: (r1 - 0.5) * speed,
		Y: r2*speed*0.5 + speed*0.3,
	}
}

// HeadingTo returns the unit vector from a to b, or straight down when they
// coincide.
func HeadingTo(a, b Vector2D) Vector2D {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 || math.IsNaN(l) {
		return Vector2D{Y: 1}
	}
	return d.Scale(1 / l)
}
