package packing

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"
)

// Source is a thread-local uniform random generator. Each parallel task
// constructs and owns exactly one Source; instances are never shared across
// goroutines, so there is no lock and no contention on the fitness hot path.
type Source struct {
	r *rand.Rand
}

// NewSource builds a Source from an explicit seed.
func NewSource(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NewTaskSource derives a Source for parallel task index id from a single
// per-run master seed. The derivation hashes (master, id) through SHA-256,
// the same technique used elsewhere in this codebase's lineage to give
// deterministic offspring seeds without any shared mutable generator state.
// A zero masterSeed pins nothing: the current time stands in for it, so the
// derived sources differ from call to call and from run to run.
func NewTaskSource(masterSeed int64, id int) *Source {
	if masterSeed == 0 {
		masterSeed = time.Now().UnixNano()
	}
	return NewSource(deriveSeed(masterSeed, id))
}

func deriveSeed(masterSeed int64, id int) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(masterSeed))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(id))
	sum := sha256.Sum256(buf[:])
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

// Float64 returns a uniform draw in [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Coin returns 0 or 1 with equal probability.
func (s *Source) Coin() int { return s.r.Intn(2) }

// UniqueIndices returns n distinct indices drawn uniformly from
// [0, maxExclusive) without replacement, in the order produced.
func (s *Source) UniqueIndices(n, maxExclusive int) ([]int, error) {
	if n > maxExclusive {
		return nil, &CapacityError{Requested: n, Available: maxExclusive}
	}
	if n <= 0 {
		return nil, nil
	}
	perm := s.r.Perm(maxExclusive)
	return perm[:n], nil
}

// PointInRect samples a gene uniformly at random within rect, carrying the
// given radius and variety metadata. Callers are expected to have already
// validated radius > 0 (e.g. via Inventory.Validate) and rect's bounds are
// always finite because every Domain constructor validates its parameters;
// so unlike NewPoint, this never fails.
func (s *Source) PointInRect(rect Rect, radius float64, tag PlantType, varietyID int32, varietyName string) Point {
	x := rect.MinX + s.Float64()*rect.Width()
	y := rect.MinY + s.Float64()*rect.Height()
	return Point{X: x, Y: y, Radius: radius, TypeTag: tag, VarietyID: varietyID, VarietyName: varietyName}
}

// signedUnit returns a uniform draw in [-1, 1).
func (s *Source) signedUnit() float64 {
	return 2*s.Float64() - 1
}
