package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pevious/internal/domain/entity"
	"github.com/younwookim/pevious/internal/domain/terrain"
	"github.com/younwookim/pevious/internal/infrastructure/config"
)

func testWorldConfig() *config.WorldConfig {
	return &config.WorldConfig{
		ScrollSpeed: 100,
		Terrain:     terrain.DefaultConfig(),
		Clouds:      terrain.DefaultCloudConfig(),
	}
}

func TestScenery_UpdateScrolls(t *testing.T) {
	s := NewScenery(testWorldConfig(), 800, 1000, testRNG())
	assert.NotEmpty(t, s.Plan().Ground, "planned on construction")

	s.Update(0.5)

	assert.Equal(t, -50.0, s.Camera.Position.Y)
	assert.Equal(t, -175.0, s.Clouds.OffsetY)
	assert.NotEmpty(t, s.Plan().Ground)
}

func TestScenery_ShadowFor(t *testing.T) {
	s := NewScenery(testWorldConfig(), 800, 1000, testRNG())
	cfg := terrain.DefaultConfig()

	sh := s.ShadowFor(entity.Vector2D{X: 100, Y: 100})

	assert.GreaterOrEqual(t, sh.X, 100+cfg.ShadowOffsetX)
	assert.GreaterOrEqual(t, sh.Y, 100+cfg.ShadowOffsetY)
}
