package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testField = Playfield{Width: 800, Height: 1000}

func testPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Radius:            15,
		Lives:             3,
		RespawnTime:       1.0,
		InvincibilityTime: 2.0,
		BlinkInterval:     0.2,
		FireInterval:      0.2,
		SpecialChargeTime: 3.0,
	}
}

func newTestPlayer() *Player {
	return NewPlayer(1, testField, testPlayerConfig(), color.RGBA{0, 0, 255, 255})
}

// tick advances p by roughly total seconds in 1/64 s steps, which keep
// timer arithmetic exact.
func tick(p *Player, total float64) {
	const step = 1.0 / 64
	for i := 0; i < int(total/step+0.5); i++ {
		p.Update(step)
	}
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()
	require.NotNil(t, p)
	assert.Equal(t, 3, p.Lives)
	assert.Equal(t, Vector2D{X: 400, Y: 955}, p.Position)
	assert.True(t, p.Active)
	assert.True(t, p.HasShadow)
	assert.True(t, p.CanCollide())
	assert.True(t, p.ShouldRender())
}

func TestPlayer_TakeDamage_FatalExactlyOnce(t *testing.T) {
	p := newTestPlayer()

	assert.False(t, p.TakeDamage())
	assert.Equal(t, 2, p.Lives)
	tick(p, 3.1)

	assert.False(t, p.TakeDamage())
	assert.Equal(t, 1, p.Lives)
	tick(p, 3.1)

	assert.True(t, p.TakeDamage(), "last life is fatal")
	assert.Equal(t, 0, p.Lives)

	assert.False(t, p.TakeDamage(), "no second fatal report")
	assert.Equal(t, 0, p.Lives)
}

func TestPlayer_InvulnerableWindow(t *testing.T) {
	p := newTestPlayer()
	require.False(t, p.TakeDamage())

	// Respawn phase: hidden and not collidable.
	assert.False(t, p.CanCollide())
	assert.False(t, p.ShouldRender())
	assert.False(t, p.TakeDamage(), "hits ignored while respawning")
	assert.Equal(t, 2, p.Lives)

	tick(p, 1.0)
	assert.Equal(t, 0.0, p.RespawnTimer)
	assert.True(t, p.Invincible)
	assert.True(t, p.Blinking)
	assert.False(t, p.CanCollide())

	// Still protected right before the window closes.
	tick(p, 1.9)
	assert.False(t, p.CanCollide())

	tick(p, 0.2)
	assert.True(t, p.CanCollide())
	assert.True(t, p.ShouldRender())
	assert.False(t, p.Blinking)
}

func TestPlayer_Blink(t *testing.T) {
	p := newTestPlayer()
	p.TakeDamage()
	tick(p, 1.0)

	tick(p, 0.1)
	assert.True(t, p.ShouldRender(), "first blink phase visible")
	assert.True(t, p.CanFire())

	tick(p, 0.2)
	assert.False(t, p.ShouldRender(), "second blink phase hidden")
	assert.False(t, p.CanFire(), "cannot fire while hidden")
}

func TestPlayer_MoveTo_Clamps(t *testing.T) {
	p := newTestPlayer()

	tests := []struct {
		name   string
		target Vector2D
		want   Vector2D
	}{
		{"inside", Vector2D{X: 100, Y: 200}, Vector2D{X: 100, Y: 200}},
		{"left top", Vector2D{X: -50, Y: -50}, Vector2D{X: 15, Y: 15}},
		{"right bottom", Vector2D{X: 900, Y: 2000}, Vector2D{X: 785, Y: 985}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.MoveTo(tt.target)
			assert.Equal(t, tt.want, p.Position)
		})
	}
}

func TestPlayer_FireCooldown(t *testing.T) {
	p := newTestPlayer()
	require.True(t, p.CanFire())

	p.MarkFired()
	assert.False(t, p.CanFire())

	tick(p, 0.1)
	assert.False(t, p.CanFire())

	tick(p, 0.11)
	assert.True(t, p.CanFire())
}

func TestPlayer_SpecialCharge(t *testing.T) {
	p := newTestPlayer()
	assert.False(t, p.SpecialReady())
	assert.Equal(t, 0.0, p.SpecialProgress())

	tick(p, 1.5)
	assert.InDelta(t, 0.5, p.SpecialProgress(), 0.01)

	tick(p, 2.0)
	assert.True(t, p.SpecialReady())
	assert.Equal(t, 1.0, p.SpecialProgress())

	p.ConsumeSpecial()
	assert.False(t, p.SpecialReady())
}
