package orbital

import "math"

// Overlap computes the closed-form overlap integral S(R) between two 1s
// Slater orbitals with exponent alpha separated by R:
//
//	S = exp(-w) * (1 + w + w²/3),  w = alpha*R
//
// S is 1 at R = 0 and decays monotonically toward 0 with growing R,
// underflowing gracefully rather than erroring at extreme separations.
func Overlap(alpha, R float64) (float64, error) {
	if err := (Params{Alpha: alpha, R: R}).Validate(); err != nil {
		return 0, err
	}
	w := alpha * R
	return math.Exp(-w) * (1 + w + w*w/3), nil
}
