package system

import (
	"slices"

	"github.com/younwookim/pevious/internal/domain/entity"
)

// Entities holds the live lists of one play session. Inactive entries stay
// in place until Sweep, so every pass within a frame sees the same lists.
type Entities struct {
	Player        *entity.Player
	Enemies       []*entity.Enemy
	PlayerBullets []*entity.Bullet
	EnemyBullets  []*entity.Bullet
	Specials      []*entity.SpecialBullet
	Particles     []*entity.Particle
	ScoreTexts    []*entity.ScoreText
}

// Sweep drops every inactive entity
func (w *Entities) Sweep() {
	w.Enemies = slices.DeleteFunc(w.Enemies, func(e *entity.Enemy) bool { return !e.Active })
	w.PlayerBullets = slices.DeleteFunc(w.PlayerBullets, func(b *entity.Bullet) bool { return !b.Active })
	w.EnemyBullets = slices.DeleteFunc(w.EnemyBullets, func(b *entity.Bullet) bool { return !b.Active })
	w.Specials = slices.DeleteFunc(w.Specials, func(b *entity.SpecialBullet) bool { return !b.Active })
	w.Particles = slices.DeleteFunc(w.Particles, func(p *entity.Particle) bool { return !p.Active })
	w.ScoreTexts = slices.DeleteFunc(w.ScoreTexts, func(t *entity.ScoreText) bool { return !t.Active })
}

// CollisionResult reports what one resolution pass did
type CollisionResult struct {
	PlayerHit bool
	HitAt     entity.Vector2D
	Fatal     bool
	Kills     []*entity.Enemy
}

// CollisionResolver applies hits in a fixed order: enemy bodies against
// the player, enemy bullets against the player, then player and special
// bullets against enemies. A fatal hit on the player ends the pass.
type CollisionResolver struct {
	kills []*entity.Enemy
}

// Resolve runs one pass over w
func (r *CollisionResolver) Resolve(w *Entities) CollisionResult {
	var res CollisionResult
	r.kills = r.kills[:0]
	p := w.Player

	if p != nil && p.CanCollide() {
		for _, e := range w.Enemies {
			if !p.IsColliding(&e.Object) {
				continue
			}
			res.PlayerHit = true
			res.HitAt = p.Position
			if p.TakeDamage() {
				res.Fatal = true
				return res
			}
			break
		}
	}

	if p != nil && p.CanCollide() {
		for _, b := range w.EnemyBullets {
			if !p.IsColliding(&b.Object) {
				continue
			}
			b.Active = false
			res.PlayerHit = true
			res.HitAt = p.Position
			if p.TakeDamage() {
				res.Fatal = true
				return res
			}
			break
		}
	}

	for _, b := range w.PlayerBullets {
		r.bulletVsEnemies(b, w.Enemies)
	}
	for _, s := range w.Specials {
		r.bulletVsEnemies(&s.Bullet, w.Enemies)
	}

	res.Kills = slices.Clone(r.kills)
	return res
}

func (r *CollisionResolver) bulletVsEnemies(b *entity.Bullet, enemies []*entity.Enemy) {
	if !b.Active {
		return
	}
	for _, e := range enemies {
		if !b.IsColliding(&e.Object) {
			continue
		}
		b.Active = false
		if e.TakeDamage(b.Damage) {
			e.Active = false
			r.kills = append(r.kills, e)
		}
		return
	}
}
