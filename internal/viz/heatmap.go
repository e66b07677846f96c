package viz

import (
	"math"
	"strings"

	"github.com/avask/h2lab/internal/orbital"
)

// shade ramp from empty space to saturated density
var shades = []rune(" .:-=+*#%@")

// Heatmap renders a density field as terminal text. Rows run from y max down
// to y min so the bond axis reads left to right; each cell is doubled
// horizontally to offset the 2:1 aspect of terminal cells. gamma < 1 lifts
// the faint exponential tails into visible shades (0 means linear).
func Heatmap(f *orbital.Field, gamma float64) string {
	if f == nil || f.NX == 0 || f.NY == 0 {
		return ""
	}
	if gamma <= 0 {
		gamma = 1
	}

	max := f.Max()
	if max == 0 {
		max = 1
	}

	var sb strings.Builder
	for j := f.NY - 1; j >= 0; j-- {
		for i := 0; i < f.NX; i++ {
			t := math.Pow(f.At(i, j)/max, gamma)
			idx := int(t * float64(len(shades)-1))
			if idx >= len(shades) {
				idx = len(shades) - 1
			}
			sb.WriteRune(shades[idx])
			sb.WriteRune(shades[idx])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
