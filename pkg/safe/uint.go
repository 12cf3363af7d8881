// Package safe provides numeric conversions that fail instead of wrapping or losing precision.
package safe

import (
	"fmt"
	"math"
	"strconv"
)

// Integer is the set of integer types the conversions accept.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// MaxExactFloat is the largest integer every smaller integer of which a float64 represents exactly.
const MaxExactFloat = 1 << 53

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Uint32 converts v to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil || u > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(u), nil
}

// Float64 converts v to float64 only when the conversion is exact.
func Float64(v uint64) (float64, error) {
	if v > MaxExactFloat {
		return 0, fmt.Errorf("value %d is not exactly representable as float64", v)
	}
	return float64(v), nil
}

// ParseAmount parses a non-negative decimal integer that converts exactly to float64.
func ParseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if _, err := Float64(v); err != nil {
		return 0, err
	}
	return v, nil
}
