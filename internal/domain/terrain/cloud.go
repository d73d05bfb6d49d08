package terrain

import (
	"math/rand"

	"github.com/younwookim/pevious/internal/domain/camera"
	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/domain/noise"
)

// CloudConfig holds the cloud layer parameters.
type CloudConfig struct {
	ScrollSpeed   float64 `json:"scrollSpeed"`
	GridSpacing   float64 `json:"gridSpacing"`
	NoiseScale    float64 `json:"noiseScale"`
	RadiusMin     float64 `json:"radiusMin"`
	RadiusMax     float64 `json:"radiusMax"`
	RadiusVisible float64 `json:"radiusVisible"`
	ShadowOffsetX float64 `json:"shadowOffsetX"`
	ShadowOffsetY float64 `json:"shadowOffsetY"`
}

// DefaultCloudConfig returns the standard cloud layer.
func DefaultCloudConfig() CloudConfig {
	return CloudConfig{
		ScrollSpeed:   350,
		GridSpacing:   15,
		NoiseScale:    0.003,
		RadiusMin:     0,
		RadiusMax:     20,
		RadiusVisible: 12,
		ShadowOffsetX: 40,
		ShadowOffsetY: 40,
	}
}

// Cloud is one puff of the cloud layer with its ground shadow.
type Cloud struct {
	Body    Disc
	Shadow  Disc
	OverSea bool // shadow lands on water
	Light   bool // alternate shade for variety
}

// CloudLayer drifts faster than the terrain. Its noise is sampled in its own
// drifting frame while shadows are anchored to the ground grid.
type CloudLayer struct {
	cfg     CloudConfig
	field   *noise.Field
	OffsetY float64
}

// NewCloudLayer creates a cloud layer with its own noise field.
func NewCloudLayer(cfg CloudConfig, rng *rand.Rand) *CloudLayer {
	return &CloudLayer{cfg: cfg, field: noise.New(rng)}
}

// Update drifts the layer.
func (c *CloudLayer) Update(dt float64) {
	c.OffsetY -= c.cfg.ScrollSpeed * dt
}

// NoiseAndRadius samples the cloud field at a point of the drifting frame.
func (c *CloudLayer) NoiseAndRadius(x, y float64) (n, radius float64) {
	n = c.field.At(x*c.cfg.NoiseScale, y*c.cfg.NoiseScale)
	return n, c.cfg.RadiusMin + n*(c.cfg.RadiusMax-c.cfg.RadiusMin)
}

// Plan returns the visible clouds. ground decides shadow colour.
func (c *CloudLayer) Plan(cam *camera.Camera, ground *Generator, width, height float64) []Cloud {
	return c.PlanInto(nil, cam, ground, width, height)
}

// PlanInto is Plan appending to dst[:0].
func (c *CloudLayer) PlanInto(dst []Cloud, cam *camera.Camera, ground *Generator, width, height float64) []Cloud {
	dst = dst[:0]
	spacing := c.cfg.GridSpacing
	minX, maxX, minY, maxY := gridBounds(cam, width, height, spacing, 3)

	for gx := minX; gx <= maxX; gx++ {
		for gy := minY; gy <= maxY; gy++ {
			wx := float64(gx) * spacing
			wy := float64(gy) * spacing

			_, r := c.NoiseAndRadius(wx, wy+c.OffsetY)
			if r <= c.cfg.RadiusVisible {
				continue
			}

			body := cam.WorldToScreen(entity.Vector2D{X: wx, Y: wy})
			shadowWorld := entity.Vector2D{X: wx + c.cfg.ShadowOffsetX, Y: wy + c.cfg.ShadowOffsetY}
			shadow := cam.WorldToScreen(shadowWorld)
			if !onScreen(body, r, width, height) && !onScreen(shadow, r, width, height) {
				continue
			}

			dst = append(dst, Cloud{
				Body:    Disc{X: body.X, Y: body.Y, Radius: r},
				Shadow:  Disc{X: shadow.X, Y: shadow.Y, Radius: r},
				OverSea: ground.IsSeaAvailable(shadowWorld.X, shadowWorld.Y),
				Light:   (gx+gy)&1 == 0,
			})
		}
	}
	return dst
}
