// Package camera maps the scrolling world onto the fixed playfield.
package camera

import "github.com/younwookim/pevious/internal/domain/entity"

// Camera scrolls the world vertically at a constant speed.
type Camera struct {
	Position entity.Vector2D
	Speed    float64 // world units per second
}

// New creates a camera at the world origin.
func New(speed float64) *Camera {
	return &Camera{Speed: speed}
}

// Update scrolls the camera. The world moves toward negative y.
func (c *Camera) Update(dt float64) {
	c.Position.Y -= c.Speed * dt
}

// WorldToScreen converts a world-space point to playfield coordinates.
func (c *Camera) WorldToScreen(p entity.Vector2D) entity.Vector2D {
	return entity.Vector2D{X: p.X - c.Position.X, Y: p.Y - c.Position.Y}
}

// ScreenToWorld converts a playfield point to world-space coordinates.
func (c *Camera) ScreenToWorld(p entity.Vector2D) entity.Vector2D {
	return entity.Vector2D{X: p.X + c.Position.X, Y: p.Y + c.Position.Y}
}
