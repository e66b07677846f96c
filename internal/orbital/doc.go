// Package orbital computes the LCAO electron density of the hydrogen
// molecule from two 1s Slater-type orbitals.
//
// The model has one free geometric parameter, the internuclear distance R,
// plus the orbital exponent alpha (default 1.24):
//
//   - [Overlap]: closed-form overlap integral S(R) between the two orbitals
//   - [Evaluate2D]: density over an x × y sample grid, optionally scaled by
//     the alpha³/(π(1+S)) normalization prefactor
//   - [Evaluate1D]: density along the bond axis (y = 0), always unnormalized
//   - [Linspace], [SymmetricRange]: sample-axis construction
//
// # Purity
//
// Every evaluation is a pure function of (alpha, R, sample points): no state
// is shared between calls, so callers may evaluate different R values
// concurrently without synchronization.
//
//	xs := orbital.SymmetricRange(2.0, 100)
//	field, _ := orbital.Evaluate2D(orbital.DefaultAlpha, 1.4, xs, xs, true)
package orbital
