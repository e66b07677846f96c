package orbital_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avask/h2lab/internal/orbital"
)

var _ = Describe("Evaluate2D", func() {
	var xs, ys []float64

	BeforeEach(func() {
		xs = orbital.SymmetricRange(2.0, 50)
		ys = orbital.SymmetricRange(2.0, 50)
	})

	It("returns a field shaped (len(xs), len(ys))", func() {
		f, err := orbital.Evaluate2D(1.24, 1.0, orbital.Linspace(-2, 2, 30), orbital.Linspace(-1, 1, 20), false)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.NX).To(Equal(30))
		Expect(f.NY).To(Equal(20))
		Expect(f.Values).To(HaveLen(600))
	})

	It("is non-negative everywhere", func() {
		f, err := orbital.Evaluate2D(1.24, 1.4, xs, ys, true)
		Expect(err).NotTo(HaveOccurred())
		for _, v := range f.Values {
			Expect(v).To(BeNumerically(">=", 0))
		}
	})

	It("is symmetric under x -> -x", func() {
		f, err := orbital.Evaluate2D(1.24, 1.4, xs, ys, false)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < f.NX; i++ {
			for j := 0; j < f.NY; j++ {
				Expect(f.At(i, j)).To(BeNumerically("~", f.At(f.NX-1-i, j), 1e-12))
			}
		}
	})

	It("is deterministic across repeated calls", func() {
		a, err := orbital.Evaluate2D(1.24, 0.9, xs, ys, true)
		Expect(err).NotTo(HaveOccurred())
		b, err := orbital.Evaluate2D(1.24, 0.9, xs, ys, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Values).To(Equal(a.Values))
	})

	It("applies the alpha³/(π(1+S)) prefactor when normalized", func() {
		raw, err := orbital.Evaluate2D(1.24, 1.4, xs, ys, false)
		Expect(err).NotTo(HaveOccurred())
		norm, err := orbital.Evaluate2D(1.24, 1.4, xs, ys, true)
		Expect(err).NotTo(HaveOccurred())

		s, err := orbital.Overlap(1.24, 1.4)
		Expect(err).NotTo(HaveOccurred())
		scale := 1.24 * 1.24 * 1.24 / (math.Pi * (1 + s))
		for k := range raw.Values {
			Expect(norm.Values[k]).To(BeNumerically("~", raw.Values[k]*scale, 1e-12))
		}
	})

	It("rejects malformed coordinate ranges", func() {
		_, err := orbital.Evaluate2D(1.24, 1.0, nil, ys, false)
		Expect(err).To(MatchError(orbital.ErrEmptyRange))

		_, err = orbital.Evaluate2D(1.24, 1.0, []float64{0, 1, 1}, ys, false)
		Expect(err).To(MatchError(orbital.ErrNotIncreasing))

		_, err = orbital.Evaluate2D(1.24, 1.0, []float64{0, math.NaN()}, ys, false)
		Expect(err).To(MatchError(orbital.ErrNonFiniteRange))

		_, err = orbital.Evaluate2D(-1, 1.0, xs, ys, false)
		Expect(err).To(MatchError(orbital.ErrInvalidAlpha))
	})
})

var _ = Describe("Evaluate1D", func() {
	It("collapses to a single peak (2 exp(-alpha |x|))² at R = 0", func() {
		xs := orbital.SymmetricRange(2.0, 100)
		d, err := orbital.Evaluate1D(1.24, 0, xs)
		Expect(err).NotTo(HaveOccurred())
		for i, x := range xs {
			a := 2 * math.Exp(-1.24*math.Abs(x))
			Expect(d[i]).To(BeNumerically("~", a*a, 1e-12))
		}
	})

	It("forms two lobes peaked near the nuclei at R = 1.4", func() {
		xs := orbital.Linspace(-2, 2, 100)
		d, err := orbital.Evaluate1D(1.24, 1.4, xs)
		Expect(err).NotTo(HaveOccurred())

		step := xs[1] - xs[0]
		var maxima []float64
		for i := 1; i < len(d)-1; i++ {
			if d[i] > d[i-1] && d[i] >= d[i+1] {
				maxima = append(maxima, xs[i])
			}
		}
		Expect(maxima).To(HaveLen(2))
		Expect(math.Abs(maxima[0] - (-0.7))).To(BeNumerically("<=", step))
		Expect(math.Abs(maxima[1] - 0.7)).To(BeNumerically("<=", step))

		// midpoint sits in a strict local minimum between the lobes
		mid := len(xs) / 2
		peak := d[0]
		for _, v := range d {
			if v > peak {
				peak = v
			}
		}
		Expect(d[mid]).To(BeNumerically("<", peak))
	})

	It("matches the bond-axis cut of the unnormalized 2D field", func() {
		xs := orbital.SymmetricRange(2.0, 81)
		ys := []float64{-0.5, 0, 0.5}
		d, err := orbital.Evaluate1D(1.24, 1.1, xs)
		Expect(err).NotTo(HaveOccurred())
		f, err := orbital.Evaluate2D(1.24, 1.1, xs, ys, false)
		Expect(err).NotTo(HaveOccurred())
		for i := range xs {
			Expect(f.At(i, 1)).To(Equal(d[i]))
		}
	})
})

var _ = Describe("Linspace", func() {
	It("includes both endpoints and spaces evenly", func() {
		xs := orbital.Linspace(-2, 2, 5)
		Expect(xs).To(Equal([]float64{-2, -1, 0, 1, 2}))
	})

	It("degenerates to the lower bound for n < 2", func() {
		Expect(orbital.Linspace(3, 7, 1)).To(Equal([]float64{3}))
	})
})
