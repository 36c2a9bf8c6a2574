// Package mapview is the boundary to the map widget: markers with popups and
// a movable view. The synchronizer only talks to Widget.
package mapview

import "github.com/Makepad-fr/shoresquad/internal/model"

const (
	MinZoom     = 3
	MaxZoom     = 18
	DefaultZoom = 10
)

// Style picks how a marker is drawn.
type Style int

const (
	StyleUser Style = iota
	StyleLow
	StyleMedium
	StyleHigh
)

// StyleFor maps a cleanup priority onto a marker style.
func StyleFor(p model.Priority) Style {
	switch p {
	case model.PriorityHigh:
		return StyleHigh
	case model.PriorityMedium:
		return StyleMedium
	default:
		return StyleLow
	}
}

// Marker is an opaque handle to a point rendered on the map.
type Marker struct {
	id    int
	pos   model.Coordinate
	popup string
	style Style
}

func (m *Marker) Position() model.Coordinate { return m.pos }
func (m *Marker) Popup() string              { return m.popup }
func (m *Marker) Style() Style               { return m.style }

// Widget is what the synchronizer needs from a map library.
type Widget interface {
	Ready() bool
	CreateMarker(pos model.Coordinate, popup string, style Style) *Marker
	RemoveMarker(m *Marker)
	SetView(center model.Coordinate, zoom int)
	FlyTo(center model.Coordinate, zoom int)
	OpenPopup(m *Marker)
	Center() model.Coordinate
	Zoom() int
}

// ClampZoom keeps z inside [MinZoom, MaxZoom].
func ClampZoom(z int) int {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
