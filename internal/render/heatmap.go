// Package render draws boards and placement maps for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/battleship/internal/domain"
)

// Cold to hot. Index 0 is used for zero counts.
var heat = []lipgloss.Color{
	"#0D2F39", "#104855", "#157483", "#1D9EA3", "#2CD7C7",
	"#F4D03F", "#F39C12", "#E67E22", "#E74C3C", "#C0392B",
}

// Painter holds styles bound to one output. Colour is only emitted when
// that output is a terminal.
type Painter struct {
	cell  lipgloss.Style
	hit   lipgloss.Style
	miss  lipgloss.Style
	axis  lipgloss.Style
	title lipgloss.Style
	sunk  lipgloss.Style
}

// NewPainter detects the colour profile of w.
func NewPainter(w io.Writer) *Painter {
	r := lipgloss.NewRenderer(w)
	cell := r.NewStyle().Width(4).Align(lipgloss.Center)
	return &Painter{
		cell:  cell,
		hit:   cell.Background(lipgloss.Color("#E74C3C")).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		miss:  cell.Background(lipgloss.Color("#7F8C8D")).Foreground(lipgloss.Color("#2C3E50")),
		axis:  r.NewStyle().Foreground(lipgloss.Color("#2C4A54")).Width(4).Align(lipgloss.Right),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		sunk:  r.NewStyle().Foreground(lipgloss.Color("#7F8C8D")).Strikethrough(true),
	}
}

// Level maps v onto [0, len(heat)) relative to peak.
func Level(v, peak int) int {
	if v <= 0 || peak <= 0 {
		return 0
	}
	l := 1 + (v*(len(heat)-1)-1)/peak
	if l >= len(heat) {
		l = len(heat) - 1
	}
	return l
}

// Heatmap colours each cell by its count. Hit cells show X, Miss cells a dot.
// The board may be nil, in which case only counts are drawn.
func (p *Painter) Heatmap(b *domain.Board, g domain.Grid) string {
	peak := g.Max()
	var sb strings.Builder
	sb.WriteString(p.header(g.Cols()))
	for r := 0; r < g.Rows(); r++ {
		sb.WriteString(p.axis.Render(fmt.Sprint(r)))
		for c := 0; c < g.Cols(); c++ {
			obs := domain.Unknown
			if b != nil && b.InBounds(r, c) {
				obs = b.At(r, c)
			}
			switch obs {
			case domain.Hit:
				sb.WriteString(p.hit.Render("X"))
			case domain.Miss:
				sb.WriteString(p.miss.Render("·"))
			default:
				lvl := Level(g[r][c], peak)
				st := p.cell.Background(heat[lvl])
				if lvl >= len(heat)/2 {
					st = st.Foreground(lipgloss.Color("#0F1923"))
				} else {
					st = st.Foreground(lipgloss.Color("#FFFFFF"))
				}
				sb.WriteString(st.Render(fmt.Sprint(g[r][c])))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Numbers prints the grid as a plain right-aligned table.
func Numbers(g domain.Grid) string {
	width := len(fmt.Sprint(g.Max())) + 1
	if width < 3 {
		width = 3
	}
	var sb strings.Builder
	for _, row := range g {
		for _, v := range row {
			fmt.Fprintf(&sb, "%*d", width, v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FleetLine formats one ship as "Destroyer (2) active" or "... sunk".
func FleetLine(s domain.ShipType) string {
	status := "active"
	if s.Sunk {
		status = "sunk"
	}
	return fmt.Sprintf("%s (%d) %s", s.Name, s.Length, status)
}

// Fleet lists ships with their status; sunk ships are struck through.
func (p *Painter) Fleet(ships []domain.ShipType) string {
	var sb strings.Builder
	for _, s := range ships {
		line := FleetLine(s)
		if s.Sunk {
			line = p.sunk.Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Painter) Title(s string) string { return p.title.Render(s) }

func (p *Painter) header(cols int) string {
	var sb strings.Builder
	sb.WriteString(p.axis.Render(""))
	for c := 0; c < cols; c++ {
		sb.WriteString(p.cell.Render(fmt.Sprint(c)))
	}
	sb.WriteByte('\n')
	return sb.String()
}
