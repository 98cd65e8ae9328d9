package packing

import "container/heap"

// DefaultEliteFraction and DefaultTournamentSize match the spec's reference constants.
const (
	DefaultEliteFraction  = 0.05
	DefaultTournamentSize = 3
)

// EliteCount returns max(1, floor(n*fraction)).
func EliteCount(n int, fraction float64) int {
	c := int(float64(n) * fraction)
	if c < 1 {
		c = 1
	}
	return c
}

// eliteHeap is a bounded min-heap over fitness, used to keep only the top-k
// individuals seen so far in O(n log k) rather than sorting the population.
type eliteHeap []*Individual

func (h eliteHeap) Len() int            { return len(h) }
func (h eliteHeap) Less(i, j int) bool  { return h[i].Fitness < h[j].Fitness }
func (h eliteHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eliteHeap) Push(x interface{}) { *h = append(*h, x.(*Individual)) }
func (h *eliteHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Elites returns deep clones of the k fittest individuals in population,
// sorted from fittest to least fit, where k = EliteCount(len(population),
// fraction). Clones are returned so later mutation of the next generation
// cannot corrupt an elite.
func Elites(population []*Individual, fraction float64) []*Individual {
	k := EliteCount(len(population), fraction)
	if k > len(population) {
		k = len(population)
	}

	h := make(eliteHeap, 0, k)
	heap.Init(&h)
	for _, ind := range population {
		if h.Len() < k {
			heap.Push(&h, ind)
			continue
		}
		if ind.Fitness > h[0].Fitness {
			heap.Pop(&h)
			heap.Push(&h, ind)
		}
	}

	out := make([]*Individual, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(*Individual).Clone()
	}
	return out
}

// Tournament samples size distinct indices from population uniformly
// without replacement and returns the fittest contestant, ties broken by
// first occurrence.
func Tournament(population []*Individual, size int, src *Source) (*Individual, error) {
	idxs, err := src.UniqueIndices(size, len(population))
	if err != nil {
		return nil, err
	}
	best := population[idxs[0]]
	for _, idx := range idxs[1:] {
		if population[idx].Fitness > best.Fitness {
			best = population[idx]
		}
	}
	return best, nil
}
