package packing

import (
	"context"
	"time"
)

// Engine runs one evolutionary optimization for a fixed domain and
// inventory. Construct with NewEngine and call Run exactly once; an Engine
// is not reusable across runs.
type Engine struct {
	domain    Domain
	inventory Inventory
	cfg       EngineConfig
	rMax      float64
	rect      Rect
}

// NewEngine validates domain, inventory, and cfg together and returns a
// ready-to-run Engine. Fails with ConfigError if the largest plant radius
// cannot possibly fit the domain's bounding box, or if any hyperparameter is
// out of range.
func NewEngine(domain Domain, inventory Inventory, cfg EngineConfig) (*Engine, error) {
	if domain == nil {
		return nil, configErrorf("domain must not be nil")
	}
	if err := inventory.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rect := domain.BoundingBox()
	rMax := inventory.RMax()
	minHalfExtent := rect.Width() / 2
	if h := rect.Height() / 2; h < minHalfExtent {
		minHalfExtent = h
	}
	if rMax > minHalfExtent {
		return nil, configErrorf(
			"largest plant radius %g exceeds half the domain's smallest bounding-box dimension %g",
			rMax, minHalfExtent)
	}

	return &Engine{domain: domain, inventory: inventory, cfg: cfg, rMax: rMax, rect: rect}, nil
}

// TMax returns the generational time budget for k genes per individual:
// 5000 + 100*k milliseconds.
func TMax(k int) time.Duration {
	return time.Duration(5000+100*k) * time.Millisecond
}

// Run executes the steady-state generational loop to completion and returns
// a deep clone of the fittest individual ever observed. It returns
// TimeoutError if the generational time budget is exceeded, or the
// context's error if ctx is canceled, both checked only at the top of each
// generation (the hot path itself has no suspension points).
func (e *Engine) Run(ctx context.Context) (*Individual, error) {
	k := e.inventory.K()
	limit := TMax(k)

	population, err := CreateFirstGeneration(e.domain, e.inventory, e.cfg.PopulationSize, e.cfg.Seed)
	if err != nil {
		return nil, err
	}
	e.evaluateAll(population)

	best := bestOf(population, nil)
	start := time.Now()

	mutCfg := e.cfg.mutationConfig()

	for gen := 0; gen < e.cfg.Generations; gen++ {
		if elapsed := time.Since(start); elapsed > limit {
			return nil, &TimeoutError{Elapsed: elapsed, Limit: limit, GenerationsCompleted: gen}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		elites := Elites(population, e.cfg.EliteFraction)
		childCount := len(population) - len(elites)
		children := e.produceChildren(population, childCount, gen, mutCfg, taskOffset(gen, len(population)))

		next := make([]*Individual, 0, len(population))
		next = append(next, elites...)
		next = append(next, children...)
		population = next

		best = bestOf(population, best)
	}

	return best.Clone(), nil
}

// evaluateAll evaluates every individual in population in parallel. Pure
// fitness computation needs no RNG, so unlike produceChildren it has no
// per-task seed to derive.
func (e *Engine) evaluateAll(population []*Individual) {
	ParallelFor(len(population), e.workers(), func(i int) {
		Evaluate(population[i], e.domain, e.rMax, e.cfg.fitnessConfig())
	})
}

// produceChildren runs childCount independent (select, crossover, mutate,
// evaluate) pipelines in parallel, each on its own thread-local RNG derived
// from seedOffset+i.
func (e *Engine) produceChildren(population []*Individual, childCount, generation int, mutCfg MutationConfig, seedOffset int) []*Individual {
	children := make([]*Individual, childCount)
	tSize := e.cfg.TournamentSize
	px := e.cfg.CrossoverRate

	// EngineConfig.validate (called by NewEngine) rejects any TournamentSize outside (0, PopulationSize],
	// so tSize never exceeds len(population) here and Tournament cannot fail.
	ParallelFor(childCount, e.workers(), func(i int) {
		src := NewTaskSource(e.cfg.Seed, seedOffset+i)

		p1, _ := Tournament(population, tSize, src)
		p2, _ := Tournament(population, tSize, src)
		// Re-sample the second parent if selection degenerated to the
		// same individual and the population offers an alternative.
		for attempts := 0; p1 == p2 && attempts < tSize && len(population) > 1; attempts++ {
			p2, _ = Tournament(population, tSize, src)
		}

		child := Crossover(p1, p2, src, px)
		Mutate(child, src, generation, mutCfg, e.rect)
		Evaluate(child, e.domain, e.rMax, e.cfg.fitnessConfig())
		children[i] = child
	})
	return children
}

func (e *Engine) workers() int {
	if e.cfg.MaxWorkers > 0 {
		return e.cfg.MaxWorkers
	}
	return MaxGenesisWorkers
}

// taskOffset gives each generation's children a disjoint slice of the seed
// space so two generations never reuse the same per-task seed.
func taskOffset(generation, populationSize int) int {
	return (generation + 1) * populationSize
}

// bestOf returns whichever of the fittest individual in population and
// previous (if any) has the higher fitness, as a clone. This realizes the
// monotonic global-best invariant: the returned pointer's fitness never
// decreases across successive calls within one run.
func bestOf(population []*Individual, previous *Individual) *Individual {
	var candidate *Individual
	for _, ind := range population {
		if candidate == nil || ind.Fitness > candidate.Fitness {
			candidate = ind
		}
	}
	if previous != nil && previous.Fitness >= candidate.Fitness {
		return previous
	}
	return candidate.Clone()
}
