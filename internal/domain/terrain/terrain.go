// Package terrain derives the scrolling landscape (sea, beach, road, forest)
// and the cloud layer from noise fields.
//
// The generator is stateless per frame: given a camera it produces a Plan of
// discs in playfield coordinates, grouped by layer in draw order. Rendering
// is left to the caller.
package terrain

import (
	"math"
	"math/rand"

	"github.com/younwookim/pevious/internal/domain/camera"
	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/domain/noise"
)

// Config holds the terrain tuning parameters.
type Config struct {
	GridSpacing float64 `json:"gridSpacing"`
	MarginCells float64 `json:"marginCells"`

	TintCellSize float64 `json:"tintCellSize"`
	TintScaleX   float64 `json:"tintScaleX"`
	TintScaleY   float64 `json:"tintScaleY"`

	SeaNoiseScale    float64 `json:"seaNoiseScale"`
	SeaRadiusMin     float64 `json:"seaRadiusMin"`
	SeaRadiusMax     float64 `json:"seaRadiusMax"`
	SeaRadiusVisible float64 `json:"seaRadiusVisible"`
	BeachFactor      float64 `json:"beachFactor"`

	TreeNoiseScale    float64 `json:"treeNoiseScale"`
	TreeRadiusMin     float64 `json:"treeRadiusMin"`
	TreeRadiusMax     float64 `json:"treeRadiusMax"`
	TreeRadiusVisible float64 `json:"treeRadiusVisible"`
	TreeShadowOffsetX float64 `json:"treeShadowOffsetX"`
	TreeShadowOffsetY float64 `json:"treeShadowOffsetY"`

	RoadRadius    float64 `json:"roadRadius"`
	RoadThreshold float64 `json:"roadThreshold"`

	// Entity shadows.
	ShadowOffsetX    float64 `json:"shadowOffsetX"`
	ShadowOffsetY    float64 `json:"shadowOffsetY"`
	ShadowTreeNoise  float64 `json:"shadowTreeNoise"`
	ShadowTreeAdjust float64 `json:"shadowTreeAdjust"`
}

// DefaultConfig returns the standard landscape.
func DefaultConfig() Config {
	return Config{
		GridSpacing:       10,
		MarginCells:       3,
		TintCellSize:      10,
		TintScaleX:        0.02,
		TintScaleY:        0.08,
		SeaNoiseScale:     0.001,
		SeaRadiusMin:      0,
		SeaRadiusMax:      60,
		SeaRadiusVisible:  40,
		BeachFactor:       2.0,
		TreeNoiseScale:    0.002,
		TreeRadiusMin:     0,
		TreeRadiusMax:     30,
		TreeRadiusVisible: 20,
		TreeShadowOffsetX: 15,
		TreeShadowOffsetY: 10,
		RoadRadius:        20,
		RoadThreshold:     0.02,
		ShadowOffsetX:     30,
		ShadowOffsetY:     30,
		ShadowTreeNoise:   0.3,
		ShadowTreeAdjust:  10,
	}
}

// Disc is a filled circle in playfield coordinates.
type Disc struct {
	X, Y   float64
	Radius float64
}

// Cell is one square of the tinted ground, in playfield coordinates.
// Tint is in [0, 1] and selects between the two ground colours.
type Cell struct {
	X, Y float64
	Size float64
	Tint float64
}

// Plan is one frame of terrain, grouped by layer. Layers are listed in
// draw order.
type Plan struct {
	Ground     []Cell
	Beach      []Disc
	Road       []Disc
	Sea        []Disc
	TreeShadow []Disc
	Tree       []Disc
}

func (p *Plan) reset() {
	p.Ground = p.Ground[:0]
	p.Beach = p.Beach[:0]
	p.Road = p.Road[:0]
	p.Sea = p.Sea[:0]
	p.TreeShadow = p.TreeShadow[:0]
	p.Tree = p.Tree[:0]
}

// Generator samples the landscape noise fields.
type Generator struct {
	cfg    Config
	ground *noise.Field // ground tint, trees and roads
	sea    *noise.Field
}

// New creates a generator with independent noise fields drawn from rng.
func New(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{
		cfg:    cfg,
		ground: noise.New(rng),
		sea:    noise.New(rng),
	}
}

// Config returns the generator's parameters.
func (g *Generator) Config() Config {
	return g.cfg
}

// SeaNoiseAndRadius samples the sea field at a world position.
func (g *Generator) SeaNoiseAndRadius(worldX, worldY float64) (n, radius float64) {
	n = g.sea.At(worldX*g.cfg.SeaNoiseScale, worldY*g.cfg.SeaNoiseScale)
	return n, g.cfg.SeaRadiusMin + n*(g.cfg.SeaRadiusMax-g.cfg.SeaRadiusMin)
}

// TreeNoiseAndRadius samples the forest field at a world position.
func (g *Generator) TreeNoiseAndRadius(worldX, worldY float64) (n, radius float64) {
	n = g.ground.At(worldX*g.cfg.TreeNoiseScale, worldY*g.cfg.TreeNoiseScale)
	return n, g.cfg.TreeRadiusMin + n*(g.cfg.TreeRadiusMax-g.cfg.TreeRadiusMin)
}

// IsSeaAvailable reports whether sea covers the world position.
func (g *Generator) IsSeaAvailable(worldX, worldY float64) bool {
	_, r := g.SeaNoiseAndRadius(worldX, worldY)
	return r > g.cfg.SeaRadiusVisible
}

// IsTreeAvailable reports whether a tree grows at the world position.
// Sea always wins.
func (g *Generator) IsTreeAvailable(worldX, worldY float64) bool {
	if g.IsSeaAvailable(worldX, worldY) {
		return false
	}
	_, r := g.TreeNoiseAndRadius(worldX, worldY)
	return r > g.cfg.TreeRadiusVisible
}

// IsRoadAvailable reports whether a road runs through the world position.
// Roads follow the mid contour of the forest field.
func (g *Generator) IsRoadAvailable(worldX, worldY float64) bool {
	if g.IsSeaAvailable(worldX, worldY) {
		return false
	}
	n, _ := g.TreeNoiseAndRadius(worldX, worldY)
	return math.Abs(n*2-1) <= g.cfg.RoadThreshold
}

// GroundTint returns the ground colour interpolation factor for a world
// position. The result lies in [0.5, 1].
func (g *Generator) GroundTint(worldX, worldY float64) float64 {
	n := g.ground.At(worldX*g.cfg.TintScaleX, worldY*g.cfg.TintScaleY)
	return (n + 1) / 2
}

// Plan computes the visible terrain for the camera and a playfield of
// width x height.
func (g *Generator) Plan(cam *camera.Camera, width, height float64) *Plan {
	p := &Plan{}
	g.PlanInto(p, cam, width, height)
	return p
}

// PlanInto is Plan reusing the slices of an existing plan.
func (g *Generator) PlanInto(p *Plan, cam *camera.Camera, width, height float64) {
	p.reset()
	g.planGround(p, cam, width, height)

	minX, maxX, minY, maxY := gridBounds(cam, width, height, g.cfg.GridSpacing, g.cfg.MarginCells)
	spacing := g.cfg.GridSpacing

	for gx := minX; gx <= maxX; gx++ {
		for gy := minY; gy <= maxY; gy++ {
			wx := float64(gx) * spacing
			wy := float64(gy) * spacing
			s := cam.WorldToScreen(entity.Vector2D{X: wx, Y: wy})

			_, seaR := g.SeaNoiseAndRadius(wx, wy)
			if seaR > g.cfg.SeaRadiusVisible {
				beachR := seaR * g.cfg.BeachFactor
				if onScreen(s, beachR, width, height) {
					p.Beach = append(p.Beach, Disc{X: s.X, Y: s.Y, Radius: beachR})
				}
				if onScreen(s, seaR, width, height) {
					p.Sea = append(p.Sea, Disc{X: s.X, Y: s.Y, Radius: seaR})
				}
				continue
			}

			treeN, treeR := g.TreeNoiseAndRadius(wx, wy)
			if math.Abs(treeN*2-1) <= g.cfg.RoadThreshold && onScreen(s, g.cfg.RoadRadius, width, height) {
				p.Road = append(p.Road, Disc{X: s.X, Y: s.Y, Radius: g.cfg.RoadRadius})
			}
			if treeR > g.cfg.TreeRadiusVisible && onScreen(s, treeR, width, height) {
				p.TreeShadow = append(p.TreeShadow, Disc{
					X:      s.X + g.cfg.TreeShadowOffsetX,
					Y:      s.Y + g.cfg.TreeShadowOffsetY,
					Radius: treeR,
				})
				p.Tree = append(p.Tree, Disc{X: s.X, Y: s.Y, Radius: treeR})
			}
		}
	}
}

func (g *Generator) planGround(p *Plan, cam *camera.Camera, width, height float64) {
	size := g.cfg.TintCellSize
	minX, maxX, minY, maxY := gridBounds(cam, width, height, size, 0)
	for gx := minX; gx <= maxX; gx++ {
		for gy := minY; gy <= maxY; gy++ {
			wx := float64(gx) * size
			wy := float64(gy) * size
			s := cam.WorldToScreen(entity.Vector2D{X: wx, Y: wy})
			p.Ground = append(p.Ground, Cell{X: s.X, Y: s.Y, Size: size, Tint: g.GroundTint(wx, wy)})
		}
	}
}

// gridBounds returns the inclusive grid index range covering the viewport
// widened by margin cells on every side.
func gridBounds(cam *camera.Camera, width, height, spacing, margin float64) (minX, maxX, minY, maxY int) {
	tl := cam.ScreenToWorld(entity.Vector2D{X: 0, Y: 0})
	br := cam.ScreenToWorld(entity.Vector2D{X: width, Y: height})
	m := spacing * margin
	minX = int(math.Floor((tl.X - m) / spacing))
	maxX = int(math.Ceil((br.X + m) / spacing))
	minY = int(math.Floor((tl.Y - m) / spacing))
	maxY = int(math.Ceil((br.Y + m) / spacing))
	return
}

func onScreen(s entity.Vector2D, r, width, height float64) bool {
	return s.X >= -r && s.X <= width+r && s.Y >= -r && s.Y <= height+r
}
