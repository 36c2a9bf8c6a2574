package model

import (
	"fmt"
	"strings"
)

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}

// Location is a geolocation fix. Accuracy is in meters, 0 when unknown.
type Location struct {
	Coordinate
	Accuracy float64 `json:"accuracy"`
}

// DebrisLevel says how much cleanup a beach needs.
type DebrisLevel string

const (
	DebrisLow    DebrisLevel = "low"
	DebrisMedium DebrisLevel = "medium"
	DebrisHigh   DebrisLevel = "high"
)

// ParseDebrisLevel accepts low, medium or high in any case.
func ParseDebrisLevel(s string) (DebrisLevel, error) {
	switch DebrisLevel(strings.ToLower(strings.TrimSpace(s))) {
	case DebrisLow:
		return DebrisLow, nil
	case DebrisMedium:
		return DebrisMedium, nil
	case DebrisHigh:
		return DebrisHigh, nil
	}
	return "", fmt.Errorf("unknown debris level %q", s)
}

// Priority is derived from the debris level and drives the marker color.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Priority maps a debris level onto a cleanup priority.
func (d DebrisLevel) Priority() Priority {
	switch d {
	case DebrisHigh:
		return PriorityHigh
	case DebrisMedium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Beach is one entry of the beach catalog. Name is the unique key.
type Beach struct {
	Name        string      `json:"name"`
	Coordinate  Coordinate  `json:"coordinate"`
	Debris      DebrisLevel `json:"debris"`
	LastCleanup string      `json:"lastCleanup"`
}

// Priority of the beach.
func (b Beach) Priority() Priority { return b.Debris.Priority() }

// Popup is the marker caption shown on the map.
func (b Beach) Popup() string {
	return fmt.Sprintf("%s\nDebris: %s · Last cleanup: %s", b.Name, b.Debris, b.LastCleanup)
}
