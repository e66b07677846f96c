// Package sweep evaluates density metrics over a range of internuclear
// distances. Each R value is an independent pure evaluation, so the sweep
// fans out across CPU cores without synchronization.
package sweep

import (
	"context"

	"github.com/avask/h2lab/internal/analysis"
	"github.com/avask/h2lab/internal/orbital"
)

// Point records the per-R observables of a sweep.
type Point struct {
	R              float64 `json:"r"`
	Overlap        float64 `json:"overlap"`
	PeakSeparation float64 `json:"peak_separation"`
	MidpointRatio  float64 `json:"midpoint_ratio"`
	MaxDensity     float64 `json:"max_density"`
}

// Config describes a sweep over R with a fixed orbital exponent and 1D
// sampling axis.
type Config struct {
	Alpha      float64
	RMin, RMax float64
	Steps      int
	HalfWidth  float64
	Resolution int
}

// DefaultConfig sweeps the bounded physical interval [0, 3] at the default
// grid settings.
func DefaultConfig() Config {
	return Config{
		Alpha:      orbital.DefaultAlpha,
		RMin:       0,
		RMax:       3.0,
		Steps:      60,
		HalfWidth:  orbital.DefaultHalfWidth,
		Resolution: orbital.DefaultResolution,
	}
}

// Run evaluates the sweep. The first evaluation error or a canceled context
// aborts the whole sweep; partial results are never returned.
func Run(ctx context.Context, cfg Config) ([]Point, error) {
	if cfg.Steps < 2 {
		cfg.Steps = 2
	}
	if err := (orbital.Params{Alpha: cfg.Alpha, R: cfg.RMin}).Validate(); err != nil {
		return nil, err
	}
	if err := (orbital.Params{Alpha: cfg.Alpha, R: cfg.RMax}).Validate(); err != nil {
		return nil, err
	}

	rs := orbital.Linspace(cfg.RMin, cfg.RMax, cfg.Steps)
	xs := orbital.SymmetricRange(cfg.HalfWidth, cfg.Resolution)

	points := make([]Point, len(rs))
	errs := make([]error, len(rs))

	ParallelFor(len(rs), 8, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				return
			}
			points[i], errs[i] = evaluatePoint(cfg.Alpha, rs[i], xs)
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

func evaluatePoint(alpha, r float64, xs []float64) (Point, error) {
	s, err := orbital.Overlap(alpha, r)
	if err != nil {
		return Point{}, err
	}
	ds, err := orbital.Evaluate1D(alpha, r, xs)
	if err != nil {
		return Point{}, err
	}

	max := 0.0
	for _, v := range ds {
		if v > max {
			max = v
		}
	}

	return Point{
		R:              r,
		Overlap:        s,
		PeakSeparation: analysis.PeakSeparation(xs, ds),
		MidpointRatio:  analysis.MidpointRatio(ds),
		MaxDensity:     max,
	}, nil
}
