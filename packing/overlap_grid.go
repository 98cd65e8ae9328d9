package packing

// UniformGridOverlap buckets genes into a uniform spatial grid with cell
// size 2*rMax, guaranteeing any colliding pair shares a cell or lies in the
// 3x3 Moore neighborhood around it. Expected O(K) for uniformly distributed
// populations.
type UniformGridOverlap struct {
	CellSize float64
}

// NewUniformGridOverlap builds a grid sized from rMax, the largest radius
// present in the inventory. rMax must be strictly positive.
func NewUniformGridOverlap(rMax float64) UniformGridOverlap {
	return UniformGridOverlap{CellSize: 2 * rMax}
}

type cellKey struct{ cx, cy int64 }

func (g UniformGridOverlap) cellOf(p Point) cellKey {
	return cellKey{cx: floorDiv(p.X, g.CellSize), cy: floorDiv(p.Y, g.CellSize)}
}

func floorDiv(v, size float64) int64 {
	q := v / size
	f := int64(q)
	if q < 0 && float64(f) != q {
		f--
	}
	return f
}

// Penalty counts each colliding pair once by requiring the neighbor's slice
// index to be strictly greater than the current gene's index — a canonical
// ordering attached at construction time rather than derived from pointer
// identity or grid insertion order.
func (g UniformGridOverlap) Penalty(genes []Point, weight float64) float64 {
	buckets := make(map[cellKey][]int, len(genes))
	for i, p := range genes {
		k := g.cellOf(p)
		buckets[k] = append(buckets[k], i)
	}

	total := 0.0
	for i, p := range genes {
		home := g.cellOf(p)
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				neighbors, ok := buckets[cellKey{home.cx + dx, home.cy + dy}]
				if !ok {
					continue
				}
				for _, j := range neighbors {
					if j <= i {
						continue
					}
					total += pairPenalty(p, genes[j], weight)
				}
			}
		}
	}
	return total
}
