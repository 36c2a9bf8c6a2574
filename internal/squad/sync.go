package squad

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/Makepad-fr/shoresquad/internal/catalog"
	"github.com/Makepad-fr/shoresquad/internal/geo"
	"github.com/Makepad-fr/shoresquad/internal/mapview"
	"github.com/Makepad-fr/shoresquad/internal/model"
	"github.com/Makepad-fr/shoresquad/internal/weather"
)

// FocusZoom is the zoom used when jumping to a single beach.
const FocusZoom = 13

const (
	promptQuestion  = "Name your cleanup event:"
	userPopup       = "You are here"
	fallbackPopup   = "Default location"
	locationHintMsg = "Enable location for better beach recommendations"
)

// Prompter asks the user a question. ok is false when they cancel.
type Prompter func(question string) (answer string, ok bool)

// Answer is a Prompter that replies with s.
func Answer(s string) Prompter {
	return func(string) (string, bool) { return s, true }
}

// Cancel is a Prompter that always cancels.
func Cancel(string) (string, bool) { return "", false }

// Options tune a Synchronizer. Zero values pick defaults.
type Options struct {
	Clock  clockwork.Clock
	Logger *slog.Logger
	Zoom   int
}

// Synchronizer is the only mutator of AppState. After each mutation it
// re-renders the parts of the Surface that depend on what changed.
type Synchronizer struct {
	state   *AppState
	widget  mapview.Widget
	beaches *catalog.Catalog
	surface Surface
	clock   clockwork.Clock
	logger  *slog.Logger
	zoom    int

	mapReady   bool
	userMarker *mapview.Marker
	lastID     int64
}

// New wires a synchronizer. surface may be nil; a nil catalog means the
// embedded samples.
func New(state *AppState, widget mapview.Widget, beaches *catalog.Catalog, surface Surface, opt Options) *Synchronizer {
	if beaches == nil {
		beaches = catalog.Default()
	}
	if opt.Clock == nil {
		opt.Clock = clockwork.NewRealClock()
	}
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opt.Zoom == 0 {
		opt.Zoom = mapview.DefaultZoom
	}
	return &Synchronizer{
		state:   state,
		widget:  widget,
		beaches: beaches,
		surface: surface,
		clock:   opt.Clock,
		logger:  opt.Logger,
		zoom:    mapview.ClampZoom(opt.Zoom),
	}
}

// State exposes the owned state for reading.
func (s *Synchronizer) State() *AppState { return s.state }

// MapReady reports whether InitMap has succeeded.
func (s *Synchronizer) MapReady() bool { return s.mapReady }

// InitMap centers the map, places the user marker and the beach markers.
// It returns false while the widget is not ready yet. Repeated calls after
// success do nothing.
func (s *Synchronizer) InitMap() bool {
	if s.mapReady {
		return true
	}
	if s.widget == nil || !s.widget.Ready() {
		return false
	}
	center, popup := geo.Fallback, fallbackPopup
	if s.state.UserLocation != nil {
		center, popup = s.state.UserLocation.Coordinate, userPopup
	}
	s.widget.SetView(center, s.zoom)
	s.userMarker = s.widget.CreateMarker(center, popup, mapview.StyleUser)
	s.state.Markers = []*mapview.Marker{s.userMarker}
	s.mapReady = true
	s.logger.Info("map initialized", "lat", center.Lat, "lng", center.Lng, "zoom", s.zoom)

	s.AddBeachMarkers()
	return true
}

// AddBeachMarkers replaces the beaches on the map with the catalog.
func (s *Synchronizer) AddBeachMarkers() {
	if !s.mapReady {
		s.logger.Debug("add beach markers skipped: map not ready")
		return
	}
	s.removeBeaches()
	for _, b := range s.beaches.Beaches() {
		m := s.widget.CreateMarker(b.Coordinate, b.Popup(), mapview.StyleFor(b.Priority()))
		s.state.Beaches = append(s.state.Beaches, BeachEntry{Beach: b, Marker: m})
		s.state.Markers = append(s.state.Markers, m)
	}
	s.logger.Debug("beach markers added", "count", len(s.state.Beaches))
	s.UpdateBeachesList()
}

// ClearAllMarkers takes every beach off the map. The user marker stays.
func (s *Synchronizer) ClearAllMarkers() {
	s.removeBeaches()
	s.logger.Debug("beach markers cleared")
	s.UpdateBeachesList()
}

func (s *Synchronizer) removeBeaches() {
	for _, b := range s.state.Beaches {
		s.widget.RemoveMarker(b.Marker)
	}
	s.state.Beaches = nil
	if s.userMarker != nil {
		s.state.Markers = []*mapview.Marker{s.userMarker}
	} else {
		s.state.Markers = nil
	}
}

// UpdateBeachesList renders the beach list from state.
func (s *Synchronizer) UpdateBeachesList() []BeachRow {
	rows := make([]BeachRow, 0, len(s.state.Beaches))
	for _, b := range s.state.Beaches {
		rows = append(rows, BeachRow{
			Name:        b.Name,
			Debris:      b.Debris,
			LastCleanup: b.LastCleanup,
			Priority:    b.Priority(),
		})
	}
	if len(rows) == 0 {
		rows = append(rows, BeachRow{Name: NoBeachesMessage, Placeholder: true})
	}
	if s.surface != nil {
		s.surface.SetBeaches(rows)
	}
	return rows
}

// FocusBeach centers the map on a listed beach and opens its popup.
func (s *Synchronizer) FocusBeach(name string) bool {
	for _, b := range s.state.Beaches {
		if b.Name != name {
			continue
		}
		zoom := s.widget.Zoom()
		if zoom < FocusZoom {
			zoom = FocusZoom
		}
		s.widget.FlyTo(b.Coordinate, zoom)
		s.widget.OpenPopup(b.Marker)
		return true
	}
	return false
}

// Zoom moves the map zoom by delta around the current center.
func (s *Synchronizer) Zoom(delta int) {
	if !s.mapReady {
		return
	}
	s.widget.SetView(s.widget.Center(), s.widget.Zoom()+delta)
}

// HandleStartCleanup plans a cleanup event. Without a beach name the event
// name comes from prompt; a cancel or a blank answer changes nothing.
func (s *Synchronizer) HandleStartCleanup(beachName string, prompt Prompter) (model.CleanupEvent, bool) {
	beachName = strings.TrimSpace(beachName)
	var name string
	if beachName != "" {
		if !s.beaches.Contains(beachName) {
			s.logger.Warn("start cleanup: unknown beach", "beach", beachName)
			s.notify(KindWarning, fmt.Sprintf("Unknown beach %q", beachName))
			return model.CleanupEvent{}, false
		}
		name = beachName + " Cleanup"
	} else {
		if prompt == nil {
			return model.CleanupEvent{}, false
		}
		answer, ok := prompt(promptQuestion)
		name = strings.TrimSpace(answer)
		if !ok || name == "" {
			s.logger.Debug("start cleanup canceled")
			return model.CleanupEvent{}, false
		}
	}

	now := s.clock.Now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	ev := model.CleanupEvent{
		ID:        id,
		Name:      name,
		Beach:     beachName,
		CreatedAt: now.UTC(),
		Members:   1,
		Impact:    0,
		Status:    model.StatusPlanning,
	}
	s.state.UpcomingEvents = append(s.state.UpcomingEvents, ev)
	s.state.Crew.Cleanups++
	if beachName != "" && !s.state.Crew.HasBeach(beachName) {
		s.state.Crew.Beaches = append(s.state.Crew.Beaches, beachName)
	}

	s.UpdateCrewStats()
	s.notify(KindSuccess, fmt.Sprintf("🎉 \"%s\" created! Invite your crew!", name))
	s.logger.Info("new cleanup event", "id", ev.ID, "name", ev.Name, "beach", ev.Beach)
	return ev, true
}

// UpdateCrewStats renders cleanups, impact, members and distinct beaches.
func (s *Synchronizer) UpdateCrewStats() [4]string {
	c := s.state.Crew
	stats := [4]string{
		strconv.Itoa(c.Cleanups),
		fmt.Sprintf("%d lbs", c.Impact),
		strconv.Itoa(c.Members),
		strconv.Itoa(len(c.Beaches)),
	}
	if s.surface != nil {
		s.surface.SetStats(stats)
	}
	return stats
}

// ApplyLocation takes the geolocation outcome. A result arriving after the
// map is up moves the user marker there.
func (s *Synchronizer) ApplyLocation(r geo.Result) {
	if !r.OK() {
		s.logger.Warn("geolocation error", "reason", r.Reason)
		s.notify(KindInfo, locationHintMsg)
		return
	}
	loc := r.Location
	s.state.UserLocation = &loc
	s.logger.Info("user location acquired", "lat", loc.Lat, "lng", loc.Lng, "accuracy", loc.Accuracy)
	if !s.mapReady {
		return
	}
	s.widget.RemoveMarker(s.userMarker)
	s.userMarker = s.widget.CreateMarker(loc.Coordinate, userPopup, mapview.StyleUser)
	s.state.Markers[0] = s.userMarker
	s.widget.FlyTo(loc.Coordinate, s.widget.Zoom())
}

// LoadWeather fetches a report and renders it. On error the previous
// report stays.
func (s *Synchronizer) LoadWeather(ctx context.Context, p weather.Provider) error {
	r, err := p.Current(ctx)
	if err != nil {
		s.logger.Warn("weather unavailable", "error", err)
		return fmt.Errorf("load weather: %w", err)
	}
	s.state.Weather = &r
	s.logger.Debug("weather data loaded", "condition", r.Condition, "temperature", r.Temperature)
	if s.surface != nil {
		s.surface.SetWeather(r)
	}
	return nil
}

// Refresh re-renders everything the surface shows.
func (s *Synchronizer) Refresh() {
	s.UpdateBeachesList()
	s.UpdateCrewStats()
	if s.state.Weather != nil && s.surface != nil {
		s.surface.SetWeather(*s.state.Weather)
	}
}

// Notify shows a transient message.
func (s *Synchronizer) Notify(kind Kind, msg string) { s.notify(kind, msg) }

func (s *Synchronizer) notify(kind Kind, msg string) {
	if s.surface != nil {
		s.surface.Notify(Notification{Message: msg, Kind: kind})
	}
}

// Snapshot copies the current state.
func (s *Synchronizer) Snapshot() Snapshot {
	return s.state.snapshot(s.clock.Now().UTC())
}
