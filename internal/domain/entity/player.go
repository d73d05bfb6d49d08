package entity

import "image/color"

// PlayerConfig holds the ship parameters.
type PlayerConfig struct {
	Radius            float64 `json:"radius"`
	Lives             int     `json:"lives"`
	RespawnTime       float64 `json:"respawnTime"`
	InvincibilityTime float64 `json:"invincibilityTime"`
	BlinkInterval     float64 `json:"blinkInterval"`
	FireInterval      float64 `json:"fireInterval"`
	SpecialChargeTime float64 `json:"specialChargeTime"`
}

// Player is the ship steered by the mouse.
//
// After a non-fatal hit the ship disappears for RespawnTime, then blinks for
// InvincibilityTime. It cannot be hit during either phase.
type Player struct {
	Object
	Lives int

	Invincible         bool
	RespawnTimer       float64
	InvincibilityTimer float64
	Blinking           bool
	blinkTimer         float64
	hidden             bool // blink "off" phase

	FireCooldown  float64
	SpecialCharge float64 // seconds charged, capped at SpecialChargeTime

	field Playfield
	cfg   PlayerConfig
}

// NewPlayer places a ship near the bottom centre of the playfield.
func NewPlayer(id EntityID, field Playfield, cfg PlayerConfig, c color.RGBA) *Player {
	return &Player{
		Object: Object{
			ID:        id,
			Position:  Vector2D{X: field.Width / 2, Y: field.Height - cfg.Radius*3},
			Radius:    cfg.Radius,
			Color:     c,
			Active:    true,
			ImageKey:  "player",
			HasShadow: true,
		},
		Lives: cfg.Lives,
		field: field,
		cfg:   cfg,
	}
}

// Update advances respawn, invincibility, blink and weapon timers.
func (p *Player) Update(dt float64) {
	if p.RespawnTimer > 0 {
		p.RespawnTimer -= dt
		if p.RespawnTimer <= 0 {
			p.RespawnTimer = 0
			p.Invincible = true
			p.InvincibilityTimer = p.cfg.InvincibilityTime
			p.Blinking = true
			p.blinkTimer = 0
		}
	}

	if p.InvincibilityTimer > 0 {
		p.InvincibilityTimer -= dt
		if p.InvincibilityTimer <= 0 {
			p.InvincibilityTimer = 0
			p.Invincible = false
			p.Blinking = false
			p.hidden = false
		}
	}

	if p.Blinking {
		p.blinkTimer += dt
		phase := int(p.blinkTimer / p.cfg.BlinkInterval)
		p.hidden = phase%2 == 1
	}

	if p.FireCooldown > 0 {
		p.FireCooldown -= dt
	}
	if p.SpecialCharge < p.cfg.SpecialChargeTime {
		p.SpecialCharge += dt
		if p.SpecialCharge > p.cfg.SpecialChargeTime {
			p.SpecialCharge = p.cfg.SpecialChargeTime
		}
	}
}

// MoveTo steers the ship to a playfield point, keeping it fully on screen.
func (p *Player) MoveTo(target Vector2D) {
	p.Position.X = clamp(target.X, p.Radius, p.field.Width-p.Radius)
	p.Position.Y = clamp(target.Y, p.Radius, p.field.Height-p.Radius)
}

// TakeDamage removes a life. It returns true only when the last life is
// lost. Hits while respawning or invincible are ignored.
func (p *Player) TakeDamage() bool {
	if p.Invincible || p.RespawnTimer > 0 || p.InvincibilityTimer > 0 {
		return false
	}
	if p.Lives <= 0 {
		return false
	}

	p.Lives--
	if p.Lives > 0 {
		p.RespawnTimer = p.cfg.RespawnTime
		p.Invincible = true
		p.InvincibilityTimer = 0
		p.Blinking = false
		p.hidden = false
		return false
	}
	return true
}

// CanCollide reports whether hits currently register.
func (p *Player) CanCollide() bool {
	return !p.Invincible && p.RespawnTimer <= 0 && p.InvincibilityTimer <= 0
}

// ShouldRender reports whether the ship is drawn this frame. Firing is gated
// on this too.
func (p *Player) ShouldRender() bool {
	return p.RespawnTimer <= 0 && !p.hidden
}

// CanFire reports whether the gun is ready.
func (p *Player) CanFire() bool {
	return p.ShouldRender() && p.FireCooldown <= 0
}

// MarkFired restarts the gun cooldown.
func (p *Player) MarkFired() {
	p.FireCooldown = p.cfg.FireInterval
}

// SpecialReady reports whether the special gauge is full.
func (p *Player) SpecialReady() bool {
	return p.SpecialCharge >= p.cfg.SpecialChargeTime
}

// SpecialProgress returns the gauge fill in [0, 1].
func (p *Player) SpecialProgress() float64 {
	if p.cfg.SpecialChargeTime <= 0 {
		return 1
	}
	return clamp(p.SpecialCharge/p.cfg.SpecialChargeTime, 0, 1)
}

// ConsumeSpecial empties the gauge.
func (p *Player) ConsumeSpecial() {
	p.SpecialCharge = 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
