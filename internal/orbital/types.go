package orbital

import "math"

// Default physical parameters. Lengths are in units of the inverse orbital
// exponent; the default alpha is the variationally optimal 1s exponent for H2
// and the default R sits near the equilibrium bond length in those units.
const (
	DefaultAlpha      = 1.24
	DefaultR          = 1.4
	DefaultHalfWidth  = 2.0
	DefaultResolution = 100
)

// Params holds the two free physical parameters of the LCAO model.
type Params struct {
	Alpha float64
	R     float64
}

// DefaultParams returns the equilibrium-geometry parameter set.
func DefaultParams() Params {
	return Params{Alpha: DefaultAlpha, R: DefaultR}
}

// Validate rejects parameter values outside the physical domain.
func (p Params) Validate() error {
	if !(p.Alpha > 0) || math.IsInf(p.Alpha, 0) {
		return ErrInvalidAlpha
	}
	if p.R < 0 || math.IsNaN(p.R) || math.IsInf(p.R, 0) {
		return ErrInvalidSeparation
	}
	return nil
}

// Field is a scalar density sampled on a rectangular grid. Values are stored
// row-major with the x index outermost, matching the (len(xs), len(ys)) shape
// of the sample grid.
type Field struct {
	NX, NY int
	Values []float64
}

// NewField allocates a zero field of the given shape.
func NewField(nx, ny int) *Field {
	return &Field{NX: nx, NY: ny, Values: make([]float64, nx*ny)}
}

// At returns the value at grid indices (i, j). Indices are not range-checked;
// callers iterate over the shape they requested.
func (f *Field) At(i, j int) float64 {
	return f.Values[i*f.NY+j]
}

func (f *Field) set(i, j int, v float64) {
	f.Values[i*f.NY+j] = v
}

// Max returns the largest value in the field, or 0 for an empty field.
func (f *Field) Max() float64 {
	max := 0.0
	for _, v := range f.Values {
		if v > max {
			max = v
		}
	}
	return max
}
