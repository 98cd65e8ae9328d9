package packing

import (
	"fmt"
	"time"
)

// ErrEmptyInventory is returned when an engine is constructed with an
// inventory that contributes zero genes. It is a *ConfigError.
var ErrEmptyInventory error = &ConfigError{Reason: "inventory contains no plants"}

// ConfigError reports an invalid combination of domain, inventory, or
// hyperparameter values discovered at construction time.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("packing: invalid configuration: %s", e.Reason)
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// InvalidPointError reports a gene whose coordinates or radius violate the
// Point invariants (finite coordinates, strictly positive radius).
type InvalidPointError struct {
	Reason string
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("packing: invalid point: %s", e.Reason)
}

// TimeoutError reports that the evolution loop exceeded its generational time
// budget. Elapsed and Limit are wall-clock durations; GenerationsCompleted is
// the number of full generations that finished before the deadline was hit.
type TimeoutError struct {
	Elapsed              time.Duration
	Limit                time.Duration
	GenerationsCompleted int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("packing: timed out after %v (limit %v) having completed %d generations",
		e.Elapsed, e.Limit, e.GenerationsCompleted)
}

// CapacityError reports a request for more distinct items than a pool holds;
// this indicates a programming error in the caller, not a runtime condition.
type CapacityError struct {
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("packing: requested %d distinct indices from a pool of %d", e.Requested, e.Available)
}
