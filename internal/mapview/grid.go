package mapview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/shoresquad/internal/model"
)

// A terminal cell stands in for an 8x16 pixel block of a 256px slippy tile.
const (
	cellPxW = 8
	cellPxH = 16
	tilePx  = 256
)

var (
	waterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("24"))
	userStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#0B7FB8")).Bold(true)
	lowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#27AE60"))
	mediumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F39C12"))
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	openStyle    = lipgloss.NewStyle().Reverse(true).Bold(true)
	captionStyle = lipgloss.NewStyle().Faint(true)
)

// Grid renders markers onto a character canvas. It is not ready until it
// has been sized.
type Grid struct {
	width, height int
	center        model.Coordinate
	zoom          int
	markers       []*Marker
	open          *Marker
	nextID        int
}

// NewGrid creates an unsized grid at the given zoom.
func NewGrid(zoom int) *Grid {
	return &Grid{zoom: ClampZoom(zoom)}
}

// Resize sets the canvas size in cells.
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width, g.height = width, height
}

func (g *Grid) Ready() bool { return g.width > 0 && g.height > 0 }

func (g *Grid) CreateMarker(pos model.Coordinate, popup string, style Style) *Marker {
	g.nextID++
	m := &Marker{id: g.nextID, pos: pos, popup: popup, style: style}
	g.markers = append(g.markers, m)
	return m
}

func (g *Grid) RemoveMarker(m *Marker) {
	if m == nil {
		return
	}
	for i, x := range g.markers {
		if x == m {
			g.markers = append(g.markers[:i], g.markers[i+1:]...)
			break
		}
	}
	if g.open == m {
		g.open = nil
	}
}

func (g *Grid) SetView(center model.Coordinate, zoom int) {
	g.center = center
	g.zoom = ClampZoom(zoom)
}

// FlyTo has no animation on a terminal; it jumps.
func (g *Grid) FlyTo(center model.Coordinate, zoom int) { g.SetView(center, zoom) }

func (g *Grid) OpenPopup(m *Marker) {
	for _, x := range g.markers {
		if x == m {
			g.open = m
			return
		}
	}
}

func (g *Grid) Center() model.Coordinate { return g.center }
func (g *Grid) Zoom() int                { return g.zoom }

// Markers returns the markers currently on the map.
func (g *Grid) Markers() []*Marker {
	out := make([]*Marker, len(g.markers))
	copy(out, g.markers)
	return out
}

// OpenMarker is the marker whose popup is shown, or nil.
func (g *Grid) OpenMarker() *Marker { return g.open }

// cellSize returns degrees of longitude per column and latitude per row.
func (g *Grid) cellSize() (lngDeg, latDeg float64) {
	px := 360 / (tilePx * math.Pow(2, float64(g.zoom)))
	return px * cellPxW, px * cellPxH
}

// Cell projects pos onto the canvas. ok is false when pos is off screen.
func (g *Grid) Cell(pos model.Coordinate) (col, row int, ok bool) {
	if !g.Ready() {
		return 0, 0, false
	}
	lngDeg, latDeg := g.cellSize()
	col = g.width/2 + int(math.Round((pos.Lng-g.center.Lng)/lngDeg))
	row = g.height/2 - int(math.Round((pos.Lat-g.center.Lat)/latDeg))
	ok = col >= 0 && col < g.width && row >= 0 && row < g.height
	return col, row, ok
}

// View draws the canvas plus a header and the open popup caption.
func (g *Grid) View() string {
	if !g.Ready() {
		return captionStyle.Render("Loading map…")
	}
	cells := make([][]string, g.height)
	for r := range cells {
		cells[r] = make([]string, g.width)
		for c := range cells[r] {
			cells[r][c] = waterStyle.Render("·")
		}
	}
	// Beach markers first so the user marker wins a shared cell.
	for _, pass := range []bool{false, true} {
		for _, m := range g.markers {
			if (m.style == StyleUser) != pass {
				continue
			}
			col, row, ok := g.Cell(m.pos)
			if !ok {
				continue
			}
			cells[row][col] = g.glyph(m)
		}
	}

	var b strings.Builder
	b.WriteString(captionStyle.Render(fmt.Sprintf("📍 %s  zoom %d", g.center, g.zoom)))
	b.WriteByte('\n')
	for _, row := range cells {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
	}
	if g.open != nil {
		b.WriteString(strings.ReplaceAll(g.open.popup, "\n", " — "))
	} else {
		b.WriteString(captionStyle.Render("select a beach to open its popup"))
	}
	return b.String()
}

func (g *Grid) glyph(m *Marker) string {
	var s string
	switch m.style {
	case StyleUser:
		s = userStyle.Render("◉")
	case StyleHigh:
		s = highStyle.Render("●")
	case StyleMedium:
		s = mediumStyle.Render("●")
	default:
		s = lowStyle.Render("●")
	}
	if m == g.open && m.style != StyleUser {
		s = openStyle.Render("●")
	}
	return s
}
