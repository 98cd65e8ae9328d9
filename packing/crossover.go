package packing

// Crossover produces a new child from two parents of equal length. With
// probability px it performs locus-wise uniform crossover (each gene comes
// from parent1 or parent2 by a fair coin); otherwise the child is a
// structural clone of one parent chosen by a fair coin. The returned
// individual always owns its own gene sequence, so neither parent can be
// corrupted by later mutation of the child.
func Crossover(parent1, parent2 *Individual, src *Source, px float64) *Individual {
	if src.Float64() >= px {
		if src.Coin() == 0 {
			return parent1.Clone()
		}
		return parent2.Clone()
	}

	n := parent1.Len()
	genes := make([]Point, n)
	for i := 0; i < n; i++ {
		if src.Coin() == 0 {
			genes[i] = parent1.At(i)
		} else {
			genes[i] = parent2.At(i)
		}
	}
	return NewIndividual(genes)
}
