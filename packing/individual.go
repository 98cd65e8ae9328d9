package packing

import "math"

// Individual is a fixed-length ordered sequence of genes plus a cached
// fitness. Fitness is negative infinity until the individual has been
// evaluated.
type Individual struct {
	genes   []Point
	Fitness float64
}

// NewIndividual deep-copies genes into a new, unevaluated individual.
func NewIndividual(genes []Point) *Individual {
	owned := make([]Point, len(genes))
	copy(owned, genes)
	return &Individual{genes: owned, Fitness: math.Inf(-1)}
}

// Genes returns a defensive copy of the gene sequence; callers cannot
// mutate the individual's internal state through the returned slice.
func (ind *Individual) Genes() []Point {
	out := make([]Point, len(ind.genes))
	copy(out, ind.genes)
	return out
}

// Len returns the number of genes.
func (ind *Individual) Len() int { return len(ind.genes) }

// At returns the gene at locus i.
func (ind *Individual) At(i int) Point { return ind.genes[i] }

// Clone returns a deep copy of ind, including its cached fitness.
func (ind *Individual) Clone() *Individual {
	c := NewIndividual(ind.genes)
	c.Fitness = ind.Fitness
	return c
}

// setGene replaces the gene at locus i. Unexported: only crossover and
// mutation, which build brand-new individuals, may call this.
func (ind *Individual) setGene(i int, p Point) { ind.genes[i] = p }
