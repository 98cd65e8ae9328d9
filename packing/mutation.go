package packing

// MutationConfig bundles the annealed creep-mutation parameters.
type MutationConfig struct {
	Rate             float64 // P_m, per-locus mutation probability
	InitialStrength  float64 // S_0
	TotalGenerations int
}

// DefaultMutationConfig matches the spec's reference constants; callers must
// still set TotalGenerations to the engine's configured generation count.
func DefaultMutationConfig(totalGenerations int) MutationConfig {
	return MutationConfig{Rate: 0.02, InitialStrength: 1.0, TotalGenerations: totalGenerations}
}

// strength returns the annealed mutation magnitude for generation g:
// S_0 / (1 + 5*g/G).
func (c MutationConfig) strength(generation int) float64 {
	if c.TotalGenerations <= 0 {
		return c.InitialStrength
	}
	return c.InitialStrength / (1 + 5*float64(generation)/float64(c.TotalGenerations))
}

// Mutate applies creep mutation in place to child, for the given generation
// index, clamping any relocated gene to rect. Radius and variety metadata
// are preserved; only position moves.
func Mutate(child *Individual, src *Source, generation int, cfg MutationConfig, rect Rect) {
	s := cfg.strength(generation)
	for i := 0; i < child.Len(); i++ {
		if src.Float64() >= cfg.Rate {
			continue
		}
		g := child.At(i)
		x := clamp(g.X+src.signedUnit()*s, rect.MinX, rect.MaxX)
		y := clamp(g.Y+src.signedUnit()*s, rect.MinY, rect.MaxY)
		child.setGene(i, g.withPosition(x, y))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
