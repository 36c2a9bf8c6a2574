// Package squad owns the application state and keeps the beach list, the
// map markers and the crew figures on screen in step with it.
package squad

import (
	"time"

	"github.com/Makepad-fr/shoresquad/internal/mapview"
	"github.com/Makepad-fr/shoresquad/internal/model"
	"github.com/Makepad-fr/shoresquad/internal/weather"
)

// BeachEntry is a beach shown on the map together with the marker it owns.
type BeachEntry struct {
	model.Beach
	Marker *mapview.Marker
}

// AppState is created once at startup and mutated only by a Synchronizer.
type AppState struct {
	UserLocation   *model.Location
	Beaches        []BeachEntry
	Markers        []*mapview.Marker // user marker first, then one per beach
	UpcomingEvents []model.CleanupEvent
	Crew           model.Crew
	Weather        *weather.Report
}

// NewAppState returns an empty state.
func NewAppState() *AppState {
	return &AppState{Crew: model.Crew{Beaches: []string{}}}
}

// Snapshot is a serializable copy of AppState.
type Snapshot struct {
	TakenAt        time.Time            `json:"takenAt"`
	UserLocation   *model.Location      `json:"userLocation"`
	Beaches        []model.Beach        `json:"beaches"`
	MarkerCount    int                  `json:"markerCount"`
	UpcomingEvents []model.CleanupEvent `json:"upcomingEvents"`
	Crew           model.Crew           `json:"crew"`
	Weather        *weather.Report      `json:"weatherData"`
}

func (s *AppState) snapshot(at time.Time) Snapshot {
	snap := Snapshot{
		TakenAt:        at,
		Beaches:        make([]model.Beach, 0, len(s.Beaches)),
		MarkerCount:    len(s.Markers),
		UpcomingEvents: append([]model.CleanupEvent{}, s.UpcomingEvents...),
		Crew:           s.Crew,
	}
	snap.Crew.Beaches = append([]string{}, s.Crew.Beaches...)
	if s.UserLocation != nil {
		loc := *s.UserLocation
		snap.UserLocation = &loc
	}
	if s.Weather != nil {
		w := *s.Weather
		snap.Weather = &w
	}
	for _, b := range s.Beaches {
		snap.Beaches = append(snap.Beaches, b.Beach)
	}
	return snap
}
