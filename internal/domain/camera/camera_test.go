package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pevious/internal/domain/entity"
)

func TestCamera_Update(t *testing.T) {
	c := New(200)
	c.Update(0.5)
	assert.Equal(t, -100.0, c.Position.Y)
	assert.Equal(t, 0.0, c.Position.X)

	c.Update(0.25)
	assert.Equal(t, -150.0, c.Position.Y)
}

func TestCamera_RoundTrip(t *testing.T) {
	offsets := []float64{0, -1, -333.25, -12345.5, 77}
	points := []entity.Vector2D{{X: 0, Y: 0}, {X: 400, Y: 500}, {X: -10, Y: 999.75}, {X: 800, Y: -1000}}

	for _, off := range offsets {
		c := New(200)
		c.Position.Y = off
		for _, p := range points {
			assert.Equal(t, p, c.WorldToScreen(c.ScreenToWorld(p)), "offset %f", off)
			assert.Equal(t, p, c.ScreenToWorld(c.WorldToScreen(p)), "offset %f", off)
		}
	}
}

func TestCamera_WorldToScreen(t *testing.T) {
	c := New(200)
	c.Position.Y = -1000
	got := c.WorldToScreen(entity.Vector2D{X: 50, Y: -900})
	assert.Equal(t, entity.Vector2D{X: 50, Y: 100}, got)
}
