// Package noise provides a seeded 2D gradient noise field used for terrain
// and weather generation.
package noise

import (
	"math"
	"math/rand"
)

// Field is a 2D Perlin noise field. A Field is immutable after construction
// and safe for concurrent reads.
type Field struct {
	perm [512]int
}

// New creates a Field whose permutation table is drawn from rng.
func New(rng *rand.Rand) *Field {
	f := &Field{}
	for i := 0; i < 256; i++ {
		f.perm[i] = rng.Intn(256)
	}
	// Duplicated so lattice lookups at i+1 never overflow.
	for i := 0; i < 256; i++ {
		f.perm[i+256] = f.perm[i]
	}
	return f
}

// NewSeeded creates a Field from an integer seed.
func NewSeeded(seed int64) *Field {
	return New(rand.New(rand.NewSource(seed)))
}

// At samples the field at (x, y). The result is in [0, 1].
//
// Negative inputs are folded with abs, so the field is mirrored around both
// axes.
func (f *Field) At(x, y float64) float64 {
	x = math.Abs(x)
	y = math.Abs(y)

	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	p := &f.perm
	a := p[xi] + yi
	aa := p[a]
	ab := p[a+1]
	b := p[xi+1] + yi
	ba := p[b]
	bb := p[b+1]

	n := lerp(v,
		lerp(u, grad(p[aa], x, y), grad(p[ba], x-1, y)),
		lerp(u, grad(p[ab], x, y-1), grad(p[bb], x-1, y-1)),
	)

	// Corner gradients are not unit length, so the raw sum can leave [-1, 1].
	out := n*0.5 + 0.5
	if out < 0 {
		return 0
	}
	if out > 1 {
		return 1
	}
	return out
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	h := hash & 15
	u, v := y, x
	if h < 8 {
		u = x
	}
	if h < 4 {
		v = y
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
