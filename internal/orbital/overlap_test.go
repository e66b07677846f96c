package orbital_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avask/h2lab/internal/orbital"
)

var _ = Describe("Overlap", func() {
	It("is exactly 1 at zero separation", func() {
		for _, alpha := range []float64{0.5, 1.0, 1.24, 3.7} {
			s, err := orbital.Overlap(alpha, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(1.0))
		}
	})

	It("stays in (0, 1] and decreases monotonically with R", func() {
		prev := math.Inf(1)
		for _, r := range orbital.Linspace(0, 10, 200) {
			s, err := orbital.Overlap(1.24, r)
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(BeNumerically(">", 0))
			Expect(s).To(BeNumerically("<=", 1))
			Expect(s).To(BeNumerically("<=", prev))
			prev = s
		}
	})

	It("underflows toward zero at extreme separation without error", func() {
		s, err := orbital.Overlap(1.24, 1e6)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(0.0))
	})

	It("accepts the default parameter set", func() {
		p := orbital.DefaultParams()
		Expect(p.Validate()).To(Succeed())
		s, err := orbital.Overlap(p.Alpha, p.R)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeNumerically(">", 0.5))
	})

	It("matches the closed form at a hand-checked point", func() {
		// w = 1.24*1.4 = 1.736
		w := 1.736
		want := math.Exp(-w) * (1 + w + w*w/3)
		s, err := orbital.Overlap(1.24, 1.4)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeNumerically("~", want, 1e-15))
	})

	DescribeTable("rejects out-of-domain parameters",
		func(alpha, r float64, want error) {
			_, err := orbital.Overlap(alpha, r)
			Expect(err).To(MatchError(want))
		},
		Entry("zero alpha", 0.0, 1.0, orbital.ErrInvalidAlpha),
		Entry("negative alpha", -1.24, 1.0, orbital.ErrInvalidAlpha),
		Entry("NaN alpha", math.NaN(), 1.0, orbital.ErrInvalidAlpha),
		Entry("negative R", 1.24, -0.1, orbital.ErrInvalidSeparation),
		Entry("infinite R", 1.24, math.Inf(1), orbital.ErrInvalidSeparation),
	)
})
