// Package geo resolves the user's position once at startup.
package geo

import (
	"context"
	"errors"

	"github.com/Makepad-fr/shoresquad/internal/model"
)

// Fallback is where the map centers when no fix is available.
var Fallback = model.Coordinate{Lat: 27.9506, Lng: -82.4572}

// ErrUnsupported is returned by Unavailable.
var ErrUnsupported = errors.New("geolocation not supported")

// Locator finds the user's position.
type Locator interface {
	Locate(ctx context.Context) (model.Location, error)
}

// Result is the single outcome of a lookup: a location or a failure reason.
type Result struct {
	Location model.Location
	Reason   string // empty on success
}

// OK reports whether the lookup succeeded.
func (r Result) OK() bool { return r.Reason == "" }

// Or returns the resolved coordinate, or fallback on failure.
func (r Result) Or(fallback model.Coordinate) model.Coordinate {
	if r.OK() {
		return r.Location.Coordinate
	}
	return fallback
}

// Request runs one lookup. It never retries.
func Request(ctx context.Context, l Locator) Result {
	if l == nil {
		return Result{Reason: ErrUnsupported.Error()}
	}
	loc, err := l.Locate(ctx)
	if err != nil {
		return Result{Reason: err.Error()}
	}
	return Result{Location: loc}
}

// Fixed always answers with the same location.
type Fixed model.Location

func (f Fixed) Locate(context.Context) (model.Location, error) { return model.Location(f), nil }

// Unavailable always fails.
type Unavailable struct{}

func (Unavailable) Locate(context.Context) (model.Location, error) {
	return model.Location{}, ErrUnsupported
}
