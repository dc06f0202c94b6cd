// Package domain builds the finite value ranges that quantum numbers are
// searched over.
//
// What:
//
//   - Integers(start, stop): inclusive integer range.
//   - HalfIntegers(start, stop): inclusive range in steps of 1/2; the bounds
//     must be multiples of 1/2 (ErrNotHalfInteger otherwise).
//   - Mirror(values): sorted union of values and their negatives.
//   - MaxInteger / MaxHalfInteger: largest |value| observed, for domains
//     derived from a particle list.
//
// All functions return new, sorted slices and never modify their input.
package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/qrules/quantum"
)

// ErrNotHalfInteger indicates a bound that is not a multiple of 1/2.
var ErrNotHalfInteger = errors.New("domain: value is not a multiple of 1/2")

// Integers returns start, start+1, ..., stop. It is empty when stop < start.
func Integers(start, stop int64) []quantum.Fraction {
	if stop < start {
		return nil
	}
	out := make([]quantum.Fraction, 0, stop-start+1)
	for n := start; n <= stop; n++ {
		out = append(out, quantum.Int(n))
	}

	return out
}

// HalfIntegers returns start, start+1/2, ..., stop.
func HalfIntegers(start, stop quantum.Fraction) ([]quantum.Fraction, error) {
	if !start.IsHalfInteger() {
		return nil, fmt.Errorf("%w: start %s", ErrNotHalfInteger, start)
	}
	if !stop.IsHalfInteger() {
		return nil, fmt.Errorf("%w: stop %s", ErrNotHalfInteger, stop)
	}
	var out []quantum.Fraction
	for v := start; !stop.Less(v); v = v.Add(quantum.Half(1)) {
		out = append(out, v)
	}

	return out, nil
}

// HalfIntegersFloat is HalfIntegers for float bounds such as 1.5.
// Values that are not an exact multiple of 0.5 are rejected, not rounded.
func HalfIntegersFloat(start, stop float64) ([]quantum.Fraction, error) {
	toHalf := func(x float64) (quantum.Fraction, error) {
		doubled := 2 * x
		if math.IsNaN(doubled) || math.IsInf(doubled, 0) || doubled != math.Trunc(doubled) {
			return quantum.Fraction{}, fmt.Errorf("%w: %v", ErrNotHalfInteger, x)
		}
		return quantum.Half(int64(doubled)), nil
	}
	a, err := toHalf(start)
	if err != nil {
		return nil, err
	}
	b, err := toHalf(stop)
	if err != nil {
		return nil, err
	}

	return HalfIntegers(a, b)
}

// Mirror returns the sorted union of values and their negatives; zero appears once.
func Mirror(values []quantum.Fraction) []quantum.Fraction {
	out := make([]quantum.Fraction, 0, 2*len(values))
	for _, v := range values {
		out = append(out, v, v.Neg())
	}

	return SortUnique(out)
}

// SortUnique returns the values in ascending order without duplicates.
func SortUnique(values []quantum.Fraction) []quantum.Fraction {
	out := slices.Clone(values)
	slices.SortFunc(out, quantum.Fraction.Cmp)

	return slices.Compact(out)
}

// MaxInteger returns the largest |v| as an integer domain bound, rounding up.
// It returns 0 for an empty input.
func MaxInteger(values []quantum.Fraction) int64 {
	var best int64
	for _, v := range values {
		a := v.Abs()
		n := a.Num() / a.Den()
		if a.Num()%a.Den() != 0 {
			n++
		}
		if n > best {
			best = n
		}
	}

	return best
}

// MaxHalfInteger returns the largest |v|, rounded up to a multiple of 1/2.
// It returns 0 for an empty input.
func MaxHalfInteger(values []quantum.Fraction) quantum.Fraction {
	var best quantum.Fraction
	for _, v := range values {
		a := v.Abs()
		doubled := a.MulInt(2)
		n := doubled.Num() / doubled.Den()
		if doubled.Num()%doubled.Den() != 0 {
			n++
		}
		if h := quantum.Half(n); best.Less(h) {
			best = h
		}
	}

	return best
}
