package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/avask/h2lab/internal/analysis"
	"github.com/avask/h2lab/internal/orbital"
)

const (
	// terminal raster for the 2D view; doubled horizontally by Heatmap
	viewCols = 36
	viewRows = 26

	rStep    = 0.05
	rMax     = 3.0
	gammaMap = 0.45
)

var paramKeys = []string{"R", "alpha", "halfwidth"}

// Model is the interactive viewer. Parameter changes recompute the field
// immediately; there is no retained state between recomputes.
type Model struct {
	alpha      float64
	r          float64
	halfWidth  float64
	normalized bool
	selected   int

	initial struct {
		alpha, r, halfWidth float64
	}

	// recomputed after every parameter change
	heatmap string
	slice   []float64
	sliceXs []float64
	overlap float64
	err     error
}

// NewModel builds the viewer at the given starting parameters.
func NewModel(alpha, r, halfWidth float64, normalized bool) Model {
	m := Model{
		alpha:      alpha,
		r:          r,
		halfWidth:  halfWidth,
		normalized: normalized,
	}
	m.initial.alpha = alpha
	m.initial.r = r
	m.initial.halfWidth = halfWidth
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(paramKeys)
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		case "up", "k":
			m.adjust(1)
		case "down", "j":
			m.adjust(-1)
		case "n":
			m.normalized = !m.normalized
			m.recompute()
		case "r":
			m.alpha = m.initial.alpha
			m.r = m.initial.r
			m.halfWidth = m.initial.halfWidth
			m.recompute()
		}
	}
	return m, nil
}

// adjust nudges the selected parameter and recomputes the field.
func (m *Model) adjust(dir int) {
	switch paramKeys[m.selected] {
	case "R":
		m.r += float64(dir) * rStep
		if m.r < 0 {
			m.r = 0
		}
		if m.r > rMax {
			m.r = rMax
		}
	case "alpha":
		if dir > 0 {
			m.alpha *= 1.05
		} else {
			m.alpha *= 0.95
		}
	case "halfwidth":
		m.halfWidth += float64(dir) * 0.25
		if m.halfWidth < 0.5 {
			m.halfWidth = 0.5
		}
	}
	m.recompute()
}

func (m *Model) recompute() {
	xs := orbital.SymmetricRange(m.halfWidth, viewCols)
	ys := orbital.SymmetricRange(m.halfWidth, viewRows)

	field, err := orbital.Evaluate2D(m.alpha, m.r, xs, ys, m.normalized)
	if err != nil {
		m.err = err
		return
	}

	sliceXs := orbital.SymmetricRange(m.halfWidth, orbital.DefaultResolution)
	ds, err := orbital.Evaluate1D(m.alpha, m.r, sliceXs)
	if err != nil {
		m.err = err
		return
	}

	s, err := orbital.Overlap(m.alpha, m.r)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.heatmap = Heatmap(field, gammaMap)
	m.slice = ds
	m.sliceXs = sliceXs
	m.overlap = s
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	canvasView := canvasStyle.Render(densityStyle.Render(m.heatmap))

	var s strings.Builder
	s.WriteString(headerStyle.Render("H2 ELECTRON DENSITY") + "\n")

	s.WriteString(labelStyle.Render("S(R)") + valueStyle.Render(fmt.Sprintf("%.4f", m.overlap)) + "\n")
	sep := analysis.PeakSeparation(m.sliceXs, m.slice)
	if sep > 0 {
		s.WriteString(labelStyle.Render("Lobes") + valueStyle.Render(fmt.Sprintf("split, Δx = %.2f", sep)) + "\n")
	} else {
		s.WriteString(labelStyle.Render("Lobes") + valueStyle.Render("merged") + "\n")
	}
	mode := "squared amplitude"
	if m.normalized {
		mode = "α³/π(1+S) normalized"
	}
	s.WriteString(labelStyle.Render("2D scale") + valueStyle.Render(mode) + "\n")

	s.WriteString("\nPARAMETERS\n")
	values := []float64{m.r, m.alpha, m.halfWidth}
	for i, k := range paramKeys {
		line := fmt.Sprintf("%-10s %8.3f", k, values[i])
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	if len(m.slice) > 1 {
		chart := asciigraph.Plot(m.slice,
			asciigraph.Height(6),
			asciigraph.Width(34),
			asciigraph.Caption("density along bond axis"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nTab:Param ←→:Adjust N:Normalize\nR:Reset Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the interactive viewer.
func Run(alpha, r, halfWidth float64, normalized bool) error {
	p := tea.NewProgram(NewModel(alpha, r, halfWidth, normalized), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
