package orbital

import "math"

// Linspace returns n evenly spaced coordinates on [lo, hi], endpoints
// included. n < 2 yields the single point lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	xs[n-1] = hi
	return xs
}

// SymmetricRange returns the default sampling axis [-d, d] at the given
// resolution.
func SymmetricRange(d float64, n int) []float64 {
	return Linspace(-d, d, n)
}

func validateRange(xs []float64) error {
	if len(xs) == 0 {
		return ErrEmptyRange
	}
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNonFiniteRange
		}
		if i > 0 && x <= xs[i-1] {
			return ErrNotIncreasing
		}
	}
	return nil
}
