package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/avask/h2lab/internal/orbital"
)

// FieldData is the JSON export shape for a 2D density run.
type FieldData struct {
	Alpha      float64   `json:"alpha"`
	R          float64   `json:"r"`
	Overlap    float64   `json:"overlap"`
	Normalized bool      `json:"normalized"`
	X          []float64 `json:"x"`
	Y          []float64 `json:"y"`
	NX         int       `json:"nx"`
	NY         int       `json:"ny"`
	Density    []float64 `json:"density"` // row-major, x outermost
}

// SliceData is the JSON export shape for a 1D cross-section.
type SliceData struct {
	Alpha   float64   `json:"alpha"`
	R       float64   `json:"r"`
	Overlap float64   `json:"overlap"`
	X       []float64 `json:"x"`
	Density []float64 `json:"density"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFieldJSON emits a field run as indented JSON.
func WriteFieldJSON(w io.Writer, alpha, r float64, normalized bool, xs, ys []float64, field *orbital.Field) error {
	s, err := orbital.Overlap(alpha, r)
	if err != nil {
		return err
	}
	return writeJSON(w, FieldData{
		Alpha:      alpha,
		R:          r,
		Overlap:    s,
		Normalized: normalized,
		X:          xs,
		Y:          ys,
		NX:         field.NX,
		NY:         field.NY,
		Density:    field.Values,
	})
}

// WriteSliceJSON emits a cross-section run as indented JSON.
func WriteSliceJSON(w io.Writer, alpha, r float64, xs, ds []float64) error {
	s, err := orbital.Overlap(alpha, r)
	if err != nil {
		return err
	}
	return writeJSON(w, SliceData{
		Alpha:   alpha,
		R:       r,
		Overlap: s,
		X:       xs,
		Density: ds,
	})
}

// SaveFieldJSON writes a field run to a file.
func SaveFieldJSON(path string, alpha, r float64, normalized bool, xs, ys []float64, field *orbital.Field) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteFieldJSON(f, alpha, r, normalized, xs, ys, field)
}
