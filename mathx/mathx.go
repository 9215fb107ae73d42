// Package mathx holds the floored arithmetic the geo package normalizes with.
package mathx

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned by FmodChecked for a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// Fmod returns the floored remainder x - floor(x/y)*y. Unlike math.Mod the
// result carries the sign of y, so Fmod(-10, 360) is 350.
//
// A zero y yields NaN. Use FmodChecked when the divisor is not a constant.
func Fmod[T constraints.Float](x, y T) T {
	return x - T(math.Floor(float64(x/y)))*y
}

// FmodChecked is Fmod with an explicit ErrDivisionByZero for y == 0.
func FmodChecked[T constraints.Float](x, y T) (T, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return Fmod(x, y), nil
}

// Floor rounds toward negative infinity. The result is only defined when
// floor(x) fits in an int64; NaN, the infinities and larger magnitudes
// convert to an implementation-specific value.
func Floor[T constraints.Float](x T) int64 {
	return int64(math.Floor(float64(x)))
}

// Ceiling rounds toward positive infinity. Like Floor, it is only defined
// when ceil(x) fits in an int64.
func Ceiling[T constraints.Float](x T) int64 {
	return int64(math.Ceil(float64(x)))
}
