package squad

import (
	"github.com/Makepad-fr/shoresquad/internal/model"
	"github.com/Makepad-fr/shoresquad/internal/weather"
)

// NoBeachesMessage is the placeholder row shown when the map has no beaches.
const NoBeachesMessage = "No beaches on the map yet"

// BeachRow is one rendered line of the beach list.
type BeachRow struct {
	Name        string
	Debris      model.DebrisLevel
	LastCleanup string
	Priority    model.Priority
	Placeholder bool
}

// Kind is the flavor of a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Notification is a transient message for the user.
type Notification struct {
	Message string
	Kind    Kind
}

// Surface is where state is rendered. Every call replaces what the surface
// showed before.
type Surface interface {
	SetBeaches(rows []BeachRow)
	SetStats(stats [4]string)
	SetWeather(r weather.Report)
	Notify(n Notification)
}
