package difficulty

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaler_Scale(t *testing.T) {
	s := NewScaler(120)

	tests := []struct {
		name    string
		elapsed float64
		want    float64
	}{
		{"start", 0, 0},
		{"negative", -5, 0},
		{"quarter", 30, 0.25},
		{"half", 60, 0.5},
		{"cap", 120, 1},
		{"past cap", 500, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Scale(tt.elapsed))
		})
	}
}

func TestScaler_Monotonic(t *testing.T) {
	s := NewScaler(120)
	prev := s.Scale(0)
	for e := 0.0; e <= 200; e += 0.5 {
		cur := s.Scale(e)
		assert.GreaterOrEqual(t, cur, prev, "elapsed %f", e)
		prev = cur
	}
}

func TestScaler_Multipliers(t *testing.T) {
	s := NewScaler(120)
	assert.Equal(t, 1.0, s.ShootIntervalMultiplier(0))
	assert.Equal(t, 2.0, s.ShootIntervalMultiplier(120))
	assert.Equal(t, 1.0, s.SpawnMultiplier(0))
	assert.Equal(t, 1.5, s.SpawnMultiplier(240))
}

func TestScaler_PickKind(t *testing.T) {
	s := NewScaler(120)
	rng := rand.New(rand.NewSource(1))

	t.Run("normal only early", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			assert.Equal(t, KindNormal, s.PickKind(10, rng))
		}
	})

	t.Run("no heavy during ramp", func(t *testing.T) {
		fast := 0
		for i := 0; i < 1000; i++ {
			k := s.PickKind(20, rng)
			assert.NotEqual(t, KindHeavy, k)
			if k == KindFast {
				fast++
			}
		}
		assert.InDelta(t, 300, fast, 60)
	})

	t.Run("late mix", func(t *testing.T) {
		counts := map[EnemyKind]int{}
		for i := 0; i < 5000; i++ {
			counts[s.PickKind(60, rng)]++
		}
		assert.InDelta(t, 500, counts[KindHeavy], 100)
		assert.InDelta(t, 1500, counts[KindFast], 150)
		assert.InDelta(t, 3000, counts[KindNormal], 200)
	})
}
