// Package storage persists computed runs: per-run directories holding
// metadata.json plus CSV data, indexed in a SQLite database for listing and
// R-range queries.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/avask/h2lab/internal/orbital"
	"github.com/avask/h2lab/internal/sweep"
)

const (
	KindField = "field"
	KindSlice = "slice"
	KindSweep = "sweep"
)

type Store struct {
	baseDir string
	idx     *Index
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Init creates the data directory and opens the run index.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	idx, err := OpenIndex(filepath.Join(s.baseDir, "index.db"))
	if err != nil {
		return err
	}
	s.idx = idx
	return nil
}

func (s *Store) Close() error {
	if s.idx == nil {
		return nil
	}
	return s.idx.Close()
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Timestamp  time.Time `json:"timestamp"`
	Alpha      float64   `json:"alpha"`
	R          float64   `json:"r"`
	HalfWidth  float64   `json:"halfwidth"`
	Resolution int       `json:"resolution"`
	Normalized bool      `json:"normalized"`
	Overlap    float64   `json:"overlap"`
}

func newRunID(kind string) string {
	return fmt.Sprintf("%s_%s", kind, uuid.NewString())
}

func (s *Store) writeMeta(runDir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// SaveField stores a 2D density field. Rows of the CSV carry one x sample
// each: the x coordinate followed by the densities over ys.
func (s *Store) SaveField(alpha, r, halfWidth float64, normalized bool, xs, ys []float64, field *orbital.Field) (string, error) {
	sv, err := orbital.Overlap(alpha, r)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         newRunID(KindField),
		Kind:       KindField,
		Timestamp:  time.Now(),
		Alpha:      alpha,
		R:          r,
		HalfWidth:  halfWidth,
		Resolution: len(xs),
		Normalized: normalized,
		Overlap:    sv,
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := s.writeMeta(runDir, meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"x"}
	for _, y := range ys {
		header = append(header, strconv.FormatFloat(y, 'f', 6, 64))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, x := range xs {
		row := []string{strconv.FormatFloat(x, 'f', 6, 64)}
		for j := range ys {
			row = append(row, strconv.FormatFloat(field.At(i, j), 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	if err := s.idx.Insert(meta); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// SaveSlice stores a 1D cross-section as x,density rows.
func (s *Store) SaveSlice(alpha, r, halfWidth float64, xs, ds []float64) (string, error) {
	sv, err := orbital.Overlap(alpha, r)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         newRunID(KindSlice),
		Kind:       KindSlice,
		Timestamp:  time.Now(),
		Alpha:      alpha,
		R:          r,
		HalfWidth:  halfWidth,
		Resolution: len(xs),
		Overlap:    sv,
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := s.writeMeta(runDir, meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, "slice.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"x", "density"}); err != nil {
		return "", err
	}
	for i := range xs {
		row := []string{
			strconv.FormatFloat(xs[i], 'f', 6, 64),
			strconv.FormatFloat(ds[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	if err := s.idx.Insert(meta); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// SaveSweep stores per-R sweep metrics. The metadata R records the sweep
// upper bound.
func (s *Store) SaveSweep(cfg sweep.Config, points []sweep.Point) (string, error) {
	meta := RunMetadata{
		ID:         newRunID(KindSweep),
		Kind:       KindSweep,
		Timestamp:  time.Now(),
		Alpha:      cfg.Alpha,
		R:          cfg.RMax,
		HalfWidth:  cfg.HalfWidth,
		Resolution: cfg.Resolution,
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := s.writeMeta(runDir, meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, "sweep.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"r", "overlap", "peak_separation", "midpoint_ratio", "max_density"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.R, 'f', 6, 64),
			strconv.FormatFloat(p.Overlap, 'g', -1, 64),
			strconv.FormatFloat(p.PeakSeparation, 'f', 6, 64),
			strconv.FormatFloat(p.MidpointRatio, 'g', -1, 64),
			strconv.FormatFloat(p.MaxDensity, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	if err := s.idx.Insert(meta); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// List returns all indexed runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	return s.idx.List()
}

// ListByR returns runs whose R falls inside [rmin, rmax].
func (s *Store) ListByR(rmin, rmax float64) ([]RunMetadata, error) {
	return s.idx.ListByR(rmin, rmax)
}

// Load reads a run's metadata from its directory.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadField reads back a stored 2D field and its axes.
func (s *Store) LoadField(runID string) (xs, ys []float64, field *orbital.Field, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, nil, fmt.Errorf("storage: field %s is empty", runID)
	}

	for _, col := range records[0][1:] {
		y, err := strconv.ParseFloat(col, 64)
		if err != nil {
			return nil, nil, nil, err
		}
		ys = append(ys, y)
	}

	field = orbital.NewField(len(records)-1, len(ys))
	for i, record := range records[1:] {
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, nil, err
		}
		xs = append(xs, x)
		for j, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, nil, err
			}
			field.Values[i*field.NY+j] = v
		}
	}
	return xs, ys, field, nil
}

// LoadSlice reads back a stored 1D cross-section.
func (s *Store) LoadSlice(runID string) (xs, ds []float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "slice.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	for _, record := range records[1:] {
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		d, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		xs = append(xs, x)
		ds = append(ds, d)
	}
	return xs, ds, nil
}

// LoadSweep reads back stored sweep metrics.
func (s *Store) LoadSweep(runID string) ([]sweep.Point, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "sweep.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]sweep.Point, 0, len(records))
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		vals := make([]float64, 5)
		ok := true
		for i := 0; i < 5; i++ {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		points = append(points, sweep.Point{
			R:              vals[0],
			Overlap:        vals[1],
			PeakSeparation: vals[2],
			MidpointRatio:  vals[3],
			MaxDensity:     vals[4],
		})
	}
	return points, nil
}
