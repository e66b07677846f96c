package orbital

import "math"

// The two nuclei sit symmetrically on the x axis at (-R/2, 0) and (+R/2, 0).

func pointDistance(px, py, qx, qy float64) float64 {
	return math.Hypot(px-qx, py-qy)
}

// amplitude is the unnormalized molecular-orbital magnitude at (x, y): the
// sum of the two 1s Slater orbitals centered on the nuclei.
func amplitude(alpha, R, x, y float64) float64 {
	ra := pointDistance(x, y, -R/2, 0)
	rb := pointDistance(x, y, +R/2, 0)
	return math.Exp(-alpha*ra) + math.Exp(-alpha*rb)
}

// Evaluate2D computes the electron density over the outer-product grid of
// xs × ys. With normalized set, each squared amplitude is scaled by
// alpha³/(π(1+S)); otherwise the raw squared amplitude is returned, matching
// the convention of Evaluate1D. The result shape is (len(xs), len(ys)).
//
// The call is pure: identical inputs produce identical fields and no state is
// retained between calls.
func Evaluate2D(alpha, R float64, xs, ys []float64, normalized bool) (*Field, error) {
	if err := (Params{Alpha: alpha, R: R}).Validate(); err != nil {
		return nil, err
	}
	if err := validateRange(xs); err != nil {
		return nil, err
	}
	if err := validateRange(ys); err != nil {
		return nil, err
	}

	scale := 1.0
	if normalized {
		s, err := Overlap(alpha, R)
		if err != nil {
			return nil, err
		}
		// 1+S > 0 for all valid R, so no division hazard here.
		scale = alpha * alpha * alpha / (math.Pi * (1 + s))
	}

	f := NewField(len(xs), len(ys))
	for i, x := range xs {
		for j, y := range ys {
			a := amplitude(alpha, R, x, y)
			f.set(i, j, scale*a*a)
		}
	}
	return f, nil
}

// Evaluate1D computes the density along the bond axis (y = 0). The 1D cut is
// always the unnormalized squared amplitude (exp(-α·ra)+exp(-α·rb))²; apply
// the 2D prefactor externally if a normalized profile is wanted.
func Evaluate1D(alpha, R float64, xs []float64) ([]float64, error) {
	if err := (Params{Alpha: alpha, R: R}).Validate(); err != nil {
		return nil, err
	}
	if err := validateRange(xs); err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		a := amplitude(alpha, R, x, 0)
		out[i] = a * a
	}
	return out, nil
}
