package outlier

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is matched by every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("outlier: invalid input")

// Reason identifies why an input was rejected.
type Reason int

const (
	// ReasonEmpty means the sequence had no values.
	ReasonEmpty Reason = iota
	// ReasonNonFinite means the sequence contained NaN or ±Inf.
	ReasonNonFinite
	// ReasonMultiplier means the fence multiplier was negative or non-finite.
	ReasonMultiplier
	// ReasonProbability means a quantile probability was outside [0, 1].
	ReasonProbability
)

func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty input"
	case ReasonNonFinite:
		return "non-finite value"
	case ReasonMultiplier:
		return "invalid fence multiplier"
	case ReasonProbability:
		return "probability out of range"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// InvalidInputError reports a violated precondition. Index is the offending
// position for ReasonNonFinite and -1 otherwise.
type InvalidInputError struct {
	Reason Reason
	Index  int
	Value  float64
}

func (e *InvalidInputError) Error() string {
	switch e.Reason {
	case ReasonNonFinite:
		return fmt.Sprintf("outlier: %s %v at index %d", e.Reason, e.Value, e.Index)
	case ReasonMultiplier, ReasonProbability:
		return fmt.Sprintf("outlier: %s: %v", e.Reason, e.Value)
	default:
		return "outlier: " + e.Reason.String()
	}
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Validate checks that values is non-empty and holds only finite numbers.
// It returns the first violation found.
func Validate(values []float64) error {
	if len(values) == 0 {
		return &InvalidInputError{Reason: ReasonEmpty, Index: -1}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidInputError{Reason: ReasonNonFinite, Index: i, Value: v}
		}
	}
	return nil
}

func validateMultiplier(k float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
		return &InvalidInputError{Reason: ReasonMultiplier, Index: -1, Value: k}
	}
	return nil
}
