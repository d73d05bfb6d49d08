package entity

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayerBullet() BulletConfig {
	return BulletConfig{Radius: 4, Speed: 500, Damage: 1, TrailCount: 5, TrailDecay: 0.15, Color: color.RGBA{0, 0x88, 0xFF, 0xFF}}
}

func testSpecialBullet() (BulletConfig, HomingConfig) {
	return BulletConfig{Radius: 6, Speed: 800, Damage: 10, TrailCount: 20, TrailDecay: 0.15, Color: color.RGBA{0xF0, 0xC7, 0, 0xFF}},
		HomingConfig{InitialRatio: 0.1, FinalRatio: 1.0, Duration: 6.0, RingBlink: 0.015}
}

func TestBullet_Update(t *testing.T) {
	cfg := testPlayerBullet()
	b := NewBullet(1, BulletPlayer, Vector2D{X: 400, Y: 500}, cfg.Radius, Vector2D{Y: -500}, cfg.Color, cfg, testField)

	b.Update(0.5)
	assert.Equal(t, Vector2D{X: 400, Y: 250}, b.Position)
	assert.True(t, b.Active)
	assert.Equal(t, []Vector2D{{X: 400, Y: 500}}, b.Trail)

	b.Update(0.5)
	assert.True(t, b.Active, "y=0 is still inside")
	b.Update(0.5)
	assert.False(t, b.Active, "left through the top")
}

func TestBullet_TrailIsBounded(t *testing.T) {
	cfg := testPlayerBullet()
	b := NewBullet(1, BulletPlayer, Vector2D{X: 400, Y: 900}, cfg.Radius, Vector2D{Y: -100}, cfg.Color, cfg, testField)

	for i := 0; i < 12; i++ {
		b.Update(0.1)
	}
	require.Len(t, b.Trail, 5)
	assert.InDelta(t, 900-70.0, b.Trail[0].Y, 1e-9)
	assert.InDelta(t, 900-110.0, b.Trail[4].Y, 1e-9)
	assert.InDelta(t, 0.15, b.TrailAlpha(0), 1e-12)
	assert.InDelta(t, 0.75, b.TrailAlpha(4), 1e-12)
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{7 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeAngle(tt.in), 1e-9, "in=%f", tt.in)
	}
}

func TestNearestEnemy(t *testing.T) {
	a := newTestEnemy(EnemyNormal, Vector2D{X: 100, Y: 100})
	b := newTestEnemy(EnemyNormal, Vector2D{X: 300, Y: 100})
	c := newTestEnemy(EnemyNormal, Vector2D{X: 120, Y: 100})
	c.Active = false

	assert.Same(t, a, NearestEnemy(Vector2D{X: 110, Y: 100}, []*Enemy{a, b, c}))
	assert.Same(t, b, NearestEnemy(Vector2D{X: 250, Y: 0}, []*Enemy{a, b, c}))
	assert.Nil(t, NearestEnemy(Vector2D{}, nil))
	assert.Nil(t, NearestEnemy(Vector2D{}, []*Enemy{c}))
}

func TestSpecialBullet_HomingRatio(t *testing.T) {
	cfg, homing := testSpecialBullet()
	s := NewSpecialBullet(1, Vector2D{}, Vector2D{Y: -800}, nil, cfg, homing, testField)

	assert.InDelta(t, 0.1, s.HomingRatio(), 1e-12)
	s.Age = 3
	assert.InDelta(t, 0.55, s.HomingRatio(), 1e-12)
	s.Age = 6
	assert.InDelta(t, 1.0, s.HomingRatio(), 1e-12)
	s.Age = 60
	assert.InDelta(t, 1.0, s.HomingRatio(), 1e-12)
}

func TestSpecialBullet_ConvergesOnTarget(t *testing.T) {
	cfg, homing := testSpecialBullet()
	field := Playfield{Width: 20000, Height: 20000}

	target := NewEnemy(2, EnemyNormal, Vector2D{X: 6000, Y: 15000}, 20, Vector2D{}, testStats(EnemyNormal), field, 0.15)
	s := NewSpecialBullet(1, Vector2D{X: 1000, Y: 10000}, Vector2D{Y: -800}, nil, cfg, homing, field)
	enemies := []*Enemy{target}

	offset := func() float64 {
		bearing := math.Atan2(target.Position.Y-s.Position.Y, target.Position.X-s.Position.X)
		heading := math.Atan2(s.Velocity.Y, s.Velocity.X)
		return math.Abs(NormalizeAngle(bearing - heading))
	}

	prev := offset()
	require.InDelta(t, 3*math.Pi/4, prev, 1e-9)

	const dt = 1.0 / 60
	for i := 0; i < 360; i++ {
		s.UpdateHoming(dt, enemies)
		require.True(t, s.Active)
		assert.Same(t, target, s.Target)
		assert.InDelta(t, 800, s.Velocity.Len(), 1e-6, "speed is constant")

		cur := offset()
		assert.LessOrEqual(t, cur, prev+1e-12, "tick %d", i)
		prev = cur
	}
	assert.Less(t, prev, 1e-3)
}

func TestSpecialBullet_ReacquiresTarget(t *testing.T) {
	cfg, homing := testSpecialBullet()
	near := newTestEnemy(EnemyNormal, Vector2D{X: 400, Y: 300})
	far := newTestEnemy(EnemyNormal, Vector2D{X: 100, Y: 100})

	s := NewSpecialBullet(1, Vector2D{X: 400, Y: 500}, Vector2D{Y: -800}, nil, cfg, homing, testField)
	s.Steer([]*Enemy{near, far})
	require.Same(t, near, s.Target)

	near.Active = false
	s.Steer([]*Enemy{near, far})
	assert.Same(t, far, s.Target)

	far.Active = false
	s.Steer([]*Enemy{near, far})
	assert.Nil(t, s.Target)
}

func TestSpecialBullet_NoTargetFliesStraight(t *testing.T) {
	cfg, homing := testSpecialBullet()
	s := NewSpecialBullet(1, Vector2D{X: 400, Y: 500}, Vector2D{Y: -800}, nil, cfg, homing, testField)

	s.UpdateHoming(0.125, nil)
	assert.Equal(t, Vector2D{X: 400, Y: 400}, s.Position)
	assert.Equal(t, Vector2D{Y: -800}, s.Velocity)
	assert.Equal(t, 0.125, s.Age)
}

func TestSpecialBullet_Ring(t *testing.T) {
	cfg, homing := testSpecialBullet()
	s := NewSpecialBullet(1, Vector2D{}, Vector2D{Y: -800}, nil, cfg, homing, testField)

	assert.True(t, s.RingVisible(0))
	assert.False(t, s.RingVisible(0.02))
	assert.True(t, s.RingVisible(0.031))
	assert.Equal(t, 12.0, s.RingRadius())
}
