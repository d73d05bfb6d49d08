package system

import (
	"image/color"
	"math/rand"

	"github.com/younwookim/pevious/internal/domain/difficulty"
	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/infrastructure/config"
)

// Sound keys played by the simulation
const (
	SoundPlayerShoot   = "player-shoot"
	SoundEnemyShoot    = "enemy-shoot"
	SoundExplosion     = "explosion"
	SoundPlayerDamage  = "player-damage"
	SoundEnemySpawn    = "enemy-spawn"
	SoundSpecialAttack = "special-attack"
)

// Session is one play-through: a fresh player, empty entity lists and a
// clock that starts at zero. Replaying builds a new Session.
type Session struct {
	Entities
	Score   int
	Elapsed float64 // session clock, seconds
	Over    bool

	cfg      *config.GameSettings
	field    entity.Playfield
	ids      *IDSource
	scaler   *difficulty.Scaler
	spawner  *Spawner
	effects  *EffectSpawner
	resolver CollisionResolver

	// OnSound is called at each sound trigger point
	OnSound func(key string)
	// OnGameOver is called once, when the last life is lost
	OnGameOver func(score int)
}

// NewSession starts a session with the given settings
func NewSession(cfg *config.GameSettings, rng *rand.Rand) *Session {
	field := entity.Playfield{
		Width:  float64(cfg.Display.ScreenWidth),
		Height: float64(cfg.Display.ScreenHeight),
	}
	ids := &IDSource{}

	sc := cfg.Session
	scaler := difficulty.NewScaler(sc.MaxScaleTime)
	if sc.FastAfter > 0 {
		scaler.FastAfter = sc.FastAfter
	}
	if sc.HeavyAfter > 0 {
		scaler.HeavyAfter = sc.HeavyAfter
	}
	if sc.RampFastChance > 0 {
		scaler.RampFastChance = sc.RampFastChance
	}
	if sc.LateHeavy > 0 {
		scaler.LateHeavyChance = sc.LateHeavy
	}
	if sc.LateFast > 0 {
		scaler.LateFastChance = sc.LateFast
	}

	s := &Session{
		cfg:     cfg,
		field:   field,
		ids:     ids,
		scaler:  scaler,
		spawner: NewSpawner(sc.SpawnInterval, &cfg.Enemies, scaler, field, rng, ids),
		effects: NewEffectSpawner(cfg.Effects, cfg.Color("scoreText", color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}), field, rng, ids),
	}
	s.Player = entity.NewPlayer(ids.Next(), field, cfg.Player, cfg.Color("player", color.RGBA{B: 0xFF, A: 0xFF}))
	return s
}

// Field returns the playfield bounds
func (s *Session) Field() entity.Playfield {
	return s.field
}

// Scale returns the current difficulty in [0, 1]
func (s *Session) Scale() float64 {
	return s.scaler.Scale(s.Elapsed)
}

// Spawner exposes the enemy spawner
func (s *Session) Spawner() *Spawner {
	return s.spawner
}

// Apply handles this frame's intents
func (s *Session) Apply(intents []Intent) {
	if s.Over {
		return
	}
	for _, in := range intents {
		switch in := in.(type) {
		case PointerMoveIntent:
			s.Player.MoveTo(entity.Vector2D{X: in.X, Y: in.Y})
		case FireIntent:
			s.FirePlayer()
		case SpecialIntent:
			s.FireSpecial()
		}
	}
}

// FirePlayer shoots straight up from the ship's nose. It reports whether a
// bullet was fired.
func (s *Session) FirePlayer() bool {
	p := s.Player
	if s.Over || !p.CanFire() {
		return false
	}
	shot := s.cfg.Bullets.Player
	pos := entity.Vector2D{X: p.Position.X, Y: p.Position.Y - p.Radius}
	b := entity.NewBullet(s.ids.Next(), entity.BulletPlayer, pos, shot.Radius, entity.Vector2D{Y: -shot.Speed}, shot.Color, shot, s.field)
	s.PlayerBullets = append(s.PlayerBullets, b)
	p.MarkFired()
	s.sound(SoundPlayerShoot)
	return true
}

// FireSpecial launches one homing bullet at each active enemy when the
// gauge is full. The gauge is spent only if something was fired. It returns
// the number of bullets launched.
func (s *Session) FireSpecial() int {
	p := s.Player
	if s.Over || !p.SpecialReady() || !p.ShouldRender() {
		return 0
	}
	shot := s.cfg.Bullets.Special
	n := 0
	for _, e := range s.Enemies {
		if !e.Active {
			continue
		}
		b := entity.NewSpecialBullet(s.ids.Next(), p.Position, entity.Vector2D{Y: -shot.Speed}, e, shot, s.cfg.Bullets.Homing, s.field)
		s.Specials = append(s.Specials, b)
		n++
	}
	if n > 0 {
		p.ConsumeSpecial()
		s.sound(SoundSpecialAttack)
	}
	return n
}

// Update advances the simulation one frame: timers and spawns, every live
// entity, collisions, then the sweep of inactive entities.
func (s *Session) Update(dt float64) {
	if s.Over {
		return
	}
	s.Elapsed += dt

	guard(s.Player.ID, &s.Player.Active, func() { s.Player.Update(dt) })

	if e := s.spawner.Update(dt, s.Elapsed); e != nil {
		s.Enemies = append(s.Enemies, e)
		s.sound(SoundEnemySpawn)
	}

	mult := s.scaler.ShootIntervalMultiplier(s.Elapsed)
	for _, e := range s.Enemies {
		if !e.Active {
			continue
		}
		guard(e.ID, &e.Active, func() {
			e.Update(dt)
			if b := e.Shoot(0, s.Player.Position, s.Elapsed, mult, s.cfg.Bullets.Enemy); b != nil {
				b.ID = s.ids.Next()
				s.EnemyBullets = append(s.EnemyBullets, b)
				s.sound(SoundEnemyShoot)
			}
		})
	}

	for _, b := range s.PlayerBullets {
		guard(b.ID, &b.Active, func() { b.Update(dt) })
	}
	for _, b := range s.EnemyBullets {
		guard(b.ID, &b.Active, func() { b.Update(dt) })
	}
	for _, b := range s.Specials {
		guard(b.ID, &b.Active, func() { b.UpdateHoming(dt, s.Enemies) })
	}
	for _, p := range s.Particles {
		guard(p.ID, &p.Active, func() { p.Update(dt) })
	}
	for _, t := range s.ScoreTexts {
		guard(t.ID, &t.Active, func() { t.Update(dt) })
	}

	s.resolve()
	s.Sweep()
}

func (s *Session) resolve() {
	res := s.resolver.Resolve(&s.Entities)

	if res.PlayerHit {
		s.Particles = append(s.Particles, s.effects.Explosion(res.HitAt)...)
		s.sound(SoundPlayerDamage)
	}
	if res.Fatal {
		s.Over = true
		if s.OnGameOver != nil {
			s.OnGameOver(s.Score)
		}
		return
	}

	for _, e := range res.Kills {
		points := e.ScoreValue()
		s.Score += points
		s.Particles = append(s.Particles, s.effects.Explosion(e.Position)...)
		s.ScoreTexts = append(s.ScoreTexts, s.effects.ScoreText(e.Position, points))
		s.sound(SoundExplosion)
	}
}

func (s *Session) sound(key string) {
	if s.OnSound != nil {
		s.OnSound(key)
	}
}
