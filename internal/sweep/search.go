package sweep

import (
	"context"
	"errors"
)

// ErrNoSplit indicates the lobes never separate within the searched interval.
var ErrNoSplit = errors.New("sweep: lobes do not separate within the search interval")

// FindSplit locates the smallest R in [cfg.RMin, cfg.RMax] at which the 1D
// density cut resolves into two distinct lobes at the configured sampling
// resolution. The interval is scanned coarsely and then refined around the
// first splitting step, with each refinement pass reusing Run.
func FindSplit(ctx context.Context, cfg Config, passes int) (float64, error) {
	if passes < 1 {
		passes = 1
	}

	lo, hi := cfg.RMin, cfg.RMax
	for pass := 0; pass < passes; pass++ {
		passCfg := cfg
		passCfg.RMin, passCfg.RMax = lo, hi

		points, err := Run(ctx, passCfg)
		if err != nil {
			return 0, err
		}

		found := -1
		for i, p := range points {
			if p.PeakSeparation > 0 {
				found = i
				break
			}
		}
		if found < 0 {
			return 0, ErrNoSplit
		}
		if found == 0 {
			// Already split at the lower bound, nothing to refine.
			return points[0].R, nil
		}

		lo, hi = points[found-1].R, points[found].R
	}

	return hi, nil
}
