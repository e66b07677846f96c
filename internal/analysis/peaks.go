// Package analysis extracts shape metrics from sampled density slices:
// lobe positions, peak separation and valley depth.
package analysis

// Peak is a sampled local extremum of a density slice.
type Peak struct {
	Index int
	X     float64
	Value float64
}

// LocalMaxima scans a sampled slice for interior local maxima. Plateau edges
// count once; the domain endpoints are never reported.
func LocalMaxima(xs, ds []float64) []Peak {
	var peaks []Peak
	for i := 1; i < len(ds)-1; i++ {
		if ds[i] > ds[i-1] && ds[i] >= ds[i+1] {
			peaks = append(peaks, Peak{Index: i, X: xs[i], Value: ds[i]})
		}
	}
	return peaks
}

// LocalMinima is the mirror of LocalMaxima.
func LocalMinima(xs, ds []float64) []Peak {
	var valleys []Peak
	for i := 1; i < len(ds)-1; i++ {
		if ds[i] < ds[i-1] && ds[i] <= ds[i+1] {
			valleys = append(valleys, Peak{Index: i, X: xs[i], Value: ds[i]})
		}
	}
	return valleys
}

// PeakSeparation returns the distance between the outermost local maxima of
// a slice, or 0 when the lobes have merged into a single peak.
func PeakSeparation(xs, ds []float64) float64 {
	peaks := LocalMaxima(xs, ds)
	if len(peaks) < 2 {
		return 0
	}
	return peaks[len(peaks)-1].X - peaks[0].X
}

// MidpointRatio returns the density at the bond midpoint divided by the
// global maximum. A ratio of 1 means the two lobes are merged; values below
// 1 measure how deep the valley between separated lobes is. Even-length
// slices have no sample exactly at the midpoint, so the two central samples
// are averaged. Returns 0 for an empty slice.
func MidpointRatio(ds []float64) float64 {
	if len(ds) == 0 {
		return 0
	}
	max := ds[0]
	for _, v := range ds {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return 0
	}
	n := len(ds)
	mid := ds[n/2]
	if n%2 == 0 {
		mid = (ds[n/2-1] + ds[n/2]) / 2
	}
	return mid / max
}
