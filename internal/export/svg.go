package export

import (
	"fmt"
	"strings"

	"github.com/avask/h2lab/internal/orbital"
)

// FieldToSVG renders a density field as an SVG heatmap, one rect per grid
// cell, shaded on a black-to-cyan ramp scaled by the field maximum.
func FieldToSVG(field *orbital.Field, cellSize float64) string {
	if field == nil || field.NX == 0 || field.NY == 0 {
		return ""
	}

	width := float64(field.NX) * cellSize
	height := float64(field.NY) * cellSize
	max := field.Max()
	if max == 0 {
		max = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i := 0; i < field.NX; i++ {
		for j := 0; j < field.NY; j++ {
			t := field.At(i, j) / max
			if t < 0.004 {
				continue // background shows through
			}
			r := int(t * 64)
			g := int(t * 255)
			b := int(t * 224)
			// SVG y grows downward; grid j grows upward
			y := float64(field.NY-1-j) * cellSize
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%02x%02x%02x"/>
`, float64(i)*cellSize, y, cellSize, cellSize, r, g, b))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SliceToSVG renders a 1D cross-section as an SVG polyline.
func SliceToSVG(xs, ds []float64, width, height int, strokeColor string) string {
	if len(xs) < 2 || len(xs) != len(ds) {
		return ""
	}

	minX, maxX := xs[0], xs[len(xs)-1]
	minY, maxY := ds[0], ds[0]
	for _, d := range ds {
		if d < minY {
			minY = d
		}
		if d > maxY {
			maxY = d
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ds[i]-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
