package analysis

import (
	"math"
	"testing"

	"github.com/avask/h2lab/internal/orbital"
)

func TestLocalMaximaTwoLobes(t *testing.T) {
	xs := orbital.Linspace(-2, 2, 100)
	ds, err := orbital.Evaluate1D(1.24, 1.4, xs)
	if err != nil {
		t.Fatal(err)
	}

	peaks := LocalMaxima(xs, ds)
	if len(peaks) != 2 {
		t.Fatalf("expected 2 peaks, got %d", len(peaks))
	}

	step := xs[1] - xs[0]
	if math.Abs(peaks[0].X+0.7) > step {
		t.Errorf("left peak at %f, expected near -0.7", peaks[0].X)
	}
	if math.Abs(peaks[1].X-0.7) > step {
		t.Errorf("right peak at %f, expected near +0.7", peaks[1].X)
	}
}

func TestLocalMinimaBondMidpoint(t *testing.T) {
	xs := orbital.Linspace(-2, 2, 101)
	ds, err := orbital.Evaluate1D(1.24, 1.4, xs)
	if err != nil {
		t.Fatal(err)
	}

	valleys := LocalMinima(xs, ds)
	if len(valleys) != 1 {
		t.Fatalf("expected 1 valley, got %d", len(valleys))
	}
	if math.Abs(valleys[0].X) > 1e-12 {
		t.Errorf("valley at %f, expected 0", valleys[0].X)
	}
}

func TestPeakSeparationMergedAtZeroR(t *testing.T) {
	xs := orbital.Linspace(-2, 2, 101)
	ds, err := orbital.Evaluate1D(1.24, 0, xs)
	if err != nil {
		t.Fatal(err)
	}

	if sep := PeakSeparation(xs, ds); sep != 0 {
		t.Errorf("expected merged lobes at R=0, got separation %f", sep)
	}
}

func TestPeakSeparationTracksR(t *testing.T) {
	xs := orbital.Linspace(-3, 3, 301)
	for _, r := range []float64{1.4, 2.0, 2.6} {
		ds, err := orbital.Evaluate1D(1.24, r, xs)
		if err != nil {
			t.Fatal(err)
		}
		sep := PeakSeparation(xs, ds)
		if math.Abs(sep-r) > 2*(xs[1]-xs[0]) {
			t.Errorf("R=%f: separation %f, expected within two steps of R", r, sep)
		}
	}
}

func TestMidpointRatio(t *testing.T) {
	xs := orbital.Linspace(-2, 2, 101)

	merged, err := orbital.Evaluate1D(1.24, 0, xs)
	if err != nil {
		t.Fatal(err)
	}
	if r := MidpointRatio(merged); math.Abs(r-1) > 1e-12 {
		t.Errorf("R=0 midpoint ratio %f, expected 1", r)
	}

	split, err := orbital.Evaluate1D(1.24, 1.4, xs)
	if err != nil {
		t.Fatal(err)
	}
	if r := MidpointRatio(split); r >= 1 {
		t.Errorf("R=1.4 midpoint ratio %f, expected < 1", r)
	}

	if MidpointRatio(nil) != 0 {
		t.Error("expected 0 for empty slice")
	}
}

// Even-length axes straddle x=0, so the midpoint density is the mean of the
// two central samples rather than the upper one, which sits off-center and
// biases the ratio near the split threshold.
func TestMidpointRatioEvenLengthAxis(t *testing.T) {
	odd := orbital.Linspace(-2, 2, 101)
	even := orbital.Linspace(-2, 2, 100)

	dsOdd, err := orbital.Evaluate1D(1.24, 1.4, odd)
	if err != nil {
		t.Fatal(err)
	}
	dsEven, err := orbital.Evaluate1D(1.24, 1.4, even)
	if err != nil {
		t.Fatal(err)
	}

	// the grids sample the peaks at different offsets, so the ratios agree
	// only to a few percent
	rOdd := MidpointRatio(dsOdd)
	rEven := MidpointRatio(dsEven)
	if math.Abs(rEven-rOdd) > 0.05 {
		t.Errorf("even-axis ratio %f far from odd-axis ratio %f", rEven, rOdd)
	}

	// symmetric slice: the averaged center must match either central sample's
	// mean exactly
	want := (dsEven[49] + dsEven[50]) / 2
	max := 0.0
	for _, v := range dsEven {
		if v > max {
			max = v
		}
	}
	if got := MidpointRatio(dsEven); math.Abs(got-want/max) > 1e-15 {
		t.Errorf("even-axis midpoint ratio %f, expected %f", got, want/max)
	}
}
