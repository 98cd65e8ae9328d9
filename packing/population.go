package packing

import "sort"

// MaxGenesisWorkers bounds how many goroutines the population factory may
// use, independent of GOMAXPROCS; it is also the engine's worker cap for
// evaluation and per-generation fan-out when EngineConfig.MaxWorkers is not
// positive (and DefaultEngineConfig's MaxWorkers value), mirroring
// the teacher's bounded-worker-count convention for compute-heavy fan-out.
const MaxGenesisWorkers = 32

// CreateFirstGeneration builds n individuals, each with one gene per
// inventory unit placed uniformly at random within domain's bounding box.
// Genes are then reordered by (TypeTag, VarietyID) so that locus i means the
// same variety slot across every individual in the population (homology),
// which uniform crossover depends on. masterSeed, if non-zero, makes the
// generation reproducible; zero lets each call pick its own entropy.
func CreateFirstGeneration(domain Domain, inv Inventory, n int, masterSeed int64) ([]*Individual, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, configErrorf("population size must be strictly positive, got %d", n)
	}

	rect := domain.BoundingBox()
	population := make([]*Individual, n)

	ParallelFor(n, MaxGenesisWorkers, func(i int) {
		src := NewTaskSource(masterSeed, i)
		genes := make([]Point, 0, inv.K())
		for _, entry := range inv {
			for q := 0; q < entry.Quantity; q++ {
				p := src.PointInRect(rect, entry.Radius, entry.TypeTag, entry.VarietyID, entry.VarietyName)
				genes = append(genes, p)
			}
		}
		sortByHomology(genes)
		population[i] = NewIndividual(genes)
	})

	return population, nil
}

// sortByHomology orders genes by (TypeTag, VarietyID) so that identical
// variety slots land at the same locus across every individual.
func sortByHomology(genes []Point) {
	sort.SliceStable(genes, func(i, j int) bool {
		if genes[i].TypeTag != genes[j].TypeTag {
			return genes[i].TypeTag < genes[j].TypeTag
		}
		return genes[i].VarietyID < genes[j].VarietyID
	})
}
