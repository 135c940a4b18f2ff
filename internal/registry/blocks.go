// Package registry owns the static physical-property tables consumed
// by the physics core: per-material surface friction and the block-id
// to fluid classification. Tuning lives here so gameplay code and the
// simulation agree on one source of truth.
package registry

import "sync"

// Fluid classifies a block id as a fluid medium.
type Fluid int

const (
	FluidNone Fluid = iota
	FluidWater
	FluidLava
)

// DefaultFriction applies to materials with no registered coefficient.
const DefaultFriction = 0.5

var (
	mu        sync.RWMutex
	frictions = map[string]float64{
		"ice":        0.02,
		"packed_ice": 0.05,
		"slime":      0.08,
		"stone":      0.7,
		"dirt":       0.6,
		"grass":      0.6,
		"sand":       0.55,
		"gravel":     0.6,
		"wood":       0.65,
		"rubber":     0.9,
	}
	fluids = map[string]Fluid{
		"water":         FluidWater,
		"flowing_water": FluidWater,
		"lava":          FluidLava,
		"flowing_lava":  FluidLava,
	}
)

// RegisterMaterial adds or overrides a material friction coefficient.
func RegisterMaterial(name string, coefficient float64) {
	mu.Lock()
	defer mu.Unlock()
	frictions[name] = coefficient
}

// RegisterFluid adds or overrides a block-id fluid classification.
func RegisterFluid(block string, kind Fluid) {
	mu.Lock()
	defer mu.Unlock()
	fluids[block] = kind
}

// FrictionOf returns the surface friction coefficient for a material.
// Unknown materials fall back to DefaultFriction.
func FrictionOf(material string) float64 {
	mu.RLock()
	defer mu.RUnlock()
	if c, ok := frictions[material]; ok {
		return c
	}
	return DefaultFriction
}

// FluidOf classifies a block id. Non-fluid blocks (including air and
// the empty id) report FluidNone.
func FluidOf(block string) Fluid {
	mu.RLock()
	defer mu.RUnlock()
	return fluids[block]
}
