// Package difficulty maps elapsed session time to enemy intensity.
package difficulty

import "math/rand"

// EnemyKind mirrors entity.EnemyType without importing it, so the scaler
// stays a leaf package.
type EnemyKind int

const (
	KindNormal EnemyKind = iota
	KindFast
	KindHeavy
)

// Scaler computes a monotonic intensity in [0, 1] from elapsed time.
type Scaler struct {
	MaxScaleTime float64 // seconds until full intensity
	FastAfter    float64 // seconds before Fast enemies appear
	HeavyAfter   float64 // seconds before Heavy enemies appear

	RampFastChance  float64 // Fast probability between FastAfter and HeavyAfter
	LateHeavyChance float64
	LateFastChance  float64
}

// NewScaler returns a scaler with the standard ramp.
func NewScaler(maxScaleTime float64) *Scaler {
	return &Scaler{
		MaxScaleTime:    maxScaleTime,
		FastAfter:       15,
		HeavyAfter:      30,
		RampFastChance:  0.3,
		LateHeavyChance: 0.1,
		LateFastChance:  0.3,
	}
}

// Scale returns min(elapsed/MaxScaleTime, 1). Negative elapsed clamps to 0.
func (s *Scaler) Scale(elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	if s.MaxScaleTime <= 0 || elapsed >= s.MaxScaleTime {
		return 1
	}
	return elapsed / s.MaxScaleTime
}

// ShootIntervalMultiplier scales an enemy's base shoot interval.
func (s *Scaler) ShootIntervalMultiplier(elapsed float64) float64 {
	return 1 + s.Scale(elapsed)
}

// SpawnMultiplier scales spawn radius and speed.
func (s *Scaler) SpawnMultiplier(elapsed float64) float64 {
	return 1 + s.Scale(elapsed)*0.5
}

// PickKind draws an enemy kind for the given elapsed time.
func (s *Scaler) PickKind(elapsed float64, rng *rand.Rand) EnemyKind {
	switch {
	case elapsed < s.FastAfter:
		return KindNormal
	case elapsed < s.HeavyAfter:
		if rng.Float64() < s.RampFastChance {
			return KindFast
		}
		return KindNormal
	default:
		r := rng.Float64()
		if r < s.LateHeavyChance {
			return KindHeavy
		}
		if r < s.LateHeavyChance+s.LateFastChance {
			return KindFast
		}
		return KindNormal
	}
}
