package entity

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStats(t EnemyType) EnemyStats {
	switch t {
	case EnemyFast:
		return EnemyStats{Health: 1, Speed: 400, ShootInterval: 2, RadiusScale: 1, Score: 100, ImageKey: "enemy-fast"}
	case EnemyHeavy:
		return EnemyStats{Health: 5, Speed: 200, ShootInterval: 0.5, RadiusScale: 1.5, BulletSpeedScale: 1.3, Score: 300, ImageKey: "enemy-heavy",
			BulletColor: color.RGBA{0x8A, 0x2B, 0xE2, 0xFF}}
	default:
		return EnemyStats{Health: 1, Speed: 200, ShootInterval: 1, RadiusScale: 1, Score: 100, ImageKey: "enemy"}
	}
}

func testEnemyBullet() BulletConfig {
	return BulletConfig{Radius: 5, Speed: 300, Damage: 1, TrailCount: 5, TrailDecay: 0.15, Color: color.RGBA{0xFF, 0x33, 0x55, 0xFF}}
}

func newTestEnemy(t EnemyType, pos Vector2D) *Enemy {
	return NewEnemy(10, t, pos, 20, Vector2D{}, testStats(t), testField, 0.15)
}

func TestNewEnemy(t *testing.T) {
	e := newTestEnemy(EnemyHeavy, Vector2D{X: 100, Y: 200})

	require.NotNil(t, e)
	assert.Equal(t, EntityID(10), e.ID)
	assert.Equal(t, EnemyHeavy, e.Type)
	assert.Equal(t, 5, e.Health)
	assert.Equal(t, 5, e.MaxHealth)
	assert.Equal(t, "enemy-heavy", e.ImageKey)
	assert.True(t, e.Active)
	assert.Equal(t, 300, e.ScoreValue())
}

func TestEnemyType_String(t *testing.T) {
	assert.Equal(t, "Normal", EnemyNormal.String())
	assert.Equal(t, "Fast", EnemyFast.String())
	assert.Equal(t, "Heavy", EnemyHeavy.String())
	assert.Equal(t, "EnemyType(9)", EnemyType(9).String())
}

func TestEnemy_Shoot_Cooldown(t *testing.T) {
	e := newTestEnemy(EnemyNormal, Vector2D{X: 400, Y: 100})
	target := Vector2D{X: 400, Y: 900}
	shot := testEnemyBullet()

	b := e.Shoot(1, target, 5.0, 1.0, shot)
	require.NotNil(t, b, "fresh enemy fires immediately")
	assert.Equal(t, 5.0, e.LastShootTime)

	for now := 5.0; now < 6.0; now += 0.05 {
		assert.Nil(t, e.Shoot(2, target, now, 1.0, shot), "now=%f", now)
	}
	assert.Equal(t, 5.0, e.LastShootTime, "rejected calls do not reset the cooldown")

	assert.NotNil(t, e.Shoot(3, target, 6.0, 1.0, shot))
	assert.Equal(t, 6.0, e.LastShootTime)
}

func TestEnemy_Shoot_ScaledInterval(t *testing.T) {
	e := newTestEnemy(EnemyNormal, Vector2D{X: 400, Y: 100})
	shot := testEnemyBullet()

	require.NotNil(t, e.Shoot(1, Vector2D{}, 0, 2.0, shot))
	assert.Nil(t, e.Shoot(2, Vector2D{}, 1.5, 2.0, shot))
	assert.NotNil(t, e.Shoot(3, Vector2D{}, 2.0, 2.0, shot))
}

func TestEnemy_Shoot_AimsAtTarget(t *testing.T) {
	shot := testEnemyBullet()

	t.Run("normal", func(t *testing.T) {
		e := newTestEnemy(EnemyNormal, Vector2D{X: 100, Y: 100})
		b := e.Shoot(1, Vector2D{X: 400, Y: 500}, 0, 1, shot)
		require.NotNil(t, b)
		assert.Equal(t, BulletEnemy, b.Type)
		assert.InDelta(t, 180, b.Velocity.X, 1e-9)
		assert.InDelta(t, 240, b.Velocity.Y, 1e-9)
		assert.Equal(t, shot.Color, b.Color)
		assert.Equal(t, e.Position, b.Position)
	})

	t.Run("heavy is faster", func(t *testing.T) {
		e := newTestEnemy(EnemyHeavy, Vector2D{X: 100, Y: 100})
		b := e.Shoot(1, Vector2D{X: 100, Y: 500}, 0, 1, shot)
		require.NotNil(t, b)
		assert.InDelta(t, 390, b.Velocity.Len(), 1e-9)
		assert.Equal(t, testStats(EnemyHeavy).BulletColor, b.Color)
	})

	t.Run("inactive never fires", func(t *testing.T) {
		e := newTestEnemy(EnemyNormal, Vector2D{X: 100, Y: 100})
		e.Active = false
		assert.Nil(t, e.Shoot(1, Vector2D{}, 0, 1, shot))
	})
}

func TestEnemy_TakeDamage(t *testing.T) {
	t.Run("normal dies in one hit", func(t *testing.T) {
		e := newTestEnemy(EnemyNormal, Vector2D{})
		assert.True(t, e.TakeDamage(1))
		assert.False(t, e.Flashing())
	})

	t.Run("heavy flashes until dead", func(t *testing.T) {
		e := newTestEnemy(EnemyHeavy, Vector2D{})
		for i := 0; i < 4; i++ {
			assert.False(t, e.TakeDamage(1))
			assert.True(t, e.Flashing())
		}
		assert.True(t, e.TakeDamage(1))
		assert.Equal(t, 0, e.Health)
	})

	t.Run("special damage overkills", func(t *testing.T) {
		e := newTestEnemy(EnemyHeavy, Vector2D{})
		assert.True(t, e.TakeDamage(10))
	})

	t.Run("flash wears off", func(t *testing.T) {
		e := newTestEnemy(EnemyHeavy, Vector2D{X: 400, Y: 400})
		e.TakeDamage(1)
		e.Update(0.1)
		assert.True(t, e.Flashing())
		e.Update(0.1)
		assert.False(t, e.Flashing())
	})
}

func TestEnemy_Update(t *testing.T) {
	t.Run("moves by velocity", func(t *testing.T) {
		e := newTestEnemy(EnemyNormal, Vector2D{X: 400, Y: 100})
		e.Velocity = Vector2D{X: 10, Y: 100}
		e.Update(0.5)
		assert.Equal(t, Vector2D{X: 405, Y: 150}, e.Position)
	})

	t.Run("bounces off walls", func(t *testing.T) {
		e := newTestEnemy(EnemyNormal, Vector2D{X: 25, Y: 100})
		e.Velocity = Vector2D{X: -100, Y: 0}
		e.Update(0.1)
		assert.Equal(t, 100.0, e.Velocity.X)

		e = newTestEnemy(EnemyNormal, Vector2D{X: 775, Y: 100})
		e.Velocity = Vector2D{X: 100, Y: 0}
		e.Update(0.1)
		assert.Equal(t, -100.0, e.Velocity.X)
	})

	t.Run("leaves through the bottom", func(t *testing.T) {
		e := newTestEnemy(EnemyNormal, Vector2D{X: 400, Y: 1005})
		e.Velocity = Vector2D{Y: 100}
		e.Update(0.1)
		assert.True(t, e.Active)
		e.Update(0.1)
		assert.False(t, e.Active)
	})
}

func TestSpawnVelocity(t *testing.T) {
	v := SpawnVelocity(200, 0, 0)
	assert.Equal(t, Vector2D{X: -100, Y: 60}, v)

	v = SpawnVelocity(200, 1, 1)
	assert.Equal(t, Vector2D{X: 100, Y: 160}, v)

	for r := 0.0; r < 1; r += 0.1 {
		assert.Positive(t, SpawnVelocity(200, r, r).Y)
	}
}

func TestHeadingTo(t *testing.T) {
	h := HeadingTo(Vector2D{}, Vector2D{X: 3, Y: 4})
	assert.InDelta(t, 0.6, h.X, 1e-12)
	assert.InDelta(t, 0.8, h.Y, 1e-12)
	assert.Equal(t, Vector2D{Y: 1}, HeadingTo(Vector2D{X: 1}, Vector2D{X: 1}))
	assert.InDelta(t, 1, HeadingTo(Vector2D{X: -5, Y: 2}, Vector2D{X: 7, Y: -9}).Len(), 1e-12)
	assert.False(t, math.IsNaN(HeadingTo(Vector2D{}, Vector2D{}).X))
}
