package domain

import (
	"fmt"
	"math"
)

const (
	MinYears = 1
	MaxYears = 50
)

// InvalidRangeError rejects out-of-domain input before any computation
// runs. The upstream UI clamps its ranges already, but the engine does
// not trust callers silently.
type InvalidRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e InvalidRangeError) Error() string {
	if math.IsInf(e.Max, 1) {
		return fmt.Sprintf("%s out of range: %v (must be >= %v)", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s out of range: %v (must be between %v and %v)", e.Field, e.Value, e.Min, e.Max)
}
