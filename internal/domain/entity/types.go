// Package entity defines the flying objects of a session: the player ship,
// enemies, bullets and cosmetic effects.
//
// All positions are playfield coordinates. Timers count down or up in
// seconds.
package entity

import (
	"image/color"
	"math"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// Vector2D is a 2D point or velocity.
type Vector2D struct {
	X, Y float64
}

// Add returns v+o.
func (v Vector2D) Add(o Vector2D) Vector2D { return Vector2D{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vector2D) Sub(o Vector2D) Vector2D { return Vector2D{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k.
func (v Vector2D) Scale(k float64) Vector2D { return Vector2D{v.X * k, v.Y * k} }

// Len returns the Euclidean length.
func (v Vector2D) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vector2D) Dist(o Vector2D) float64 { return v.Sub(o).Len() }

// Playfield is the visible rectangle entities live in.
type Playfield struct {
	Width, Height float64
}

// Contains reports whether a circle at p with radius r overlaps the
// playfield.
func (f Playfield) Contains(p Vector2D, r float64) bool {
	return p.X >= -r && p.X <= f.Width+r && p.Y >= -r && p.Y <= f.Height+r
}

// Object is the state shared by every entity.
type Object struct {
	ID       EntityID
	Position Vector2D
	Radius   float64
	Color    color.RGBA
	Active   bool

	// ImageKey names the sprite in the image cache. Empty or not yet loaded
	// falls back to a filled circle.
	ImageKey  string
	HasShadow bool
}

// IsColliding reports whether the two circles overlap. An inactive object
// never collides.
func (o *Object) IsColliding(other *Object) bool {
	if !o.Active || !other.Active {
		return false
	}
	return o.Position.Dist(other.Position) < o.Radius+other.Radius
}
