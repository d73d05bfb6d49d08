package system

import (
	"math/rand"

	"github.com/younwookim/pevious/internal/domain/camera"
	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/domain/terrain"
	"github.com/younwookim/pevious/internal/infrastructure/config"
)

// Scenery is the scrolling backdrop shared by the Ready, Playing and
// GameOver scenes. It outlives play sessions.
type Scenery struct {
	Camera  *camera.Camera
	Terrain *terrain.Generator
	Clouds  *terrain.CloudLayer

	width, height float64
	plan          terrain.Plan
	clouds        []terrain.Cloud
}

// NewScenery creates the camera, terrain and cloud layer
func NewScenery(cfg *config.WorldConfig, width, height float64, rng *rand.Rand) *Scenery {
	s := &Scenery{
		Camera:  camera.New(cfg.ScrollSpeed),
		Terrain: terrain.New(cfg.Terrain, rng),
		Clouds:  terrain.NewCloudLayer(cfg.Clouds, rng),
		width:   width,
		height:  height,
	}
	s.replan()
	return s
}

// Update scrolls the camera and clouds and rebuilds the visible layers
func (s *Scenery) Update(dt float64) {
	s.Camera.Update(dt)
	s.Clouds.Update(dt)
	s.replan()
}

func (s *Scenery) replan() {
	s.Terrain.PlanInto(&s.plan, s.Camera, s.width, s.height)
	s.clouds = s.Clouds.PlanInto(s.clouds, s.Camera, s.Terrain, s.width, s.height)
}

// Plan returns the terrain layers for the current frame
func (s *Scenery) Plan() *terrain.Plan {
	return &s.plan
}

// CloudPlan returns the clouds for the current frame
func (s *Scenery) CloudPlan() []terrain.Cloud {
	return s.clouds
}

// ShadowFor projects an entity shadow onto the current terrain
func (s *Scenery) ShadowFor(pos entity.Vector2D) terrain.Shadow {
	return s.Terrain.ShadowFor(s.Camera, pos)
}
