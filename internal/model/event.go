package model

import "time"

// EventStatus is the lifecycle state of a cleanup event.
// Only planning exists today; nothing moves an event out of it.
type EventStatus string

const StatusPlanning EventStatus = "planning"

// CleanupEvent is a planned cleanup.
type CleanupEvent struct {
	ID        int64       `json:"id"` // creation time in unix millis
	Name      string      `json:"name"`
	Beach     string      `json:"beach,omitempty"`
	CreatedAt time.Time   `json:"date"`
	Members   int         `json:"members"`
	Impact    int         `json:"impact"`
	Status    EventStatus `json:"status"`
}

// Crew aggregates the user's cleanup participation.
type Crew struct {
	Cleanups int      `json:"cleanups"`
	Impact   int      `json:"impact"` // lbs
	Members  int      `json:"members"`
	Beaches  []string `json:"beaches"`
}

// HasBeach reports whether name has already been counted.
func (c Crew) HasBeach(name string) bool {
	for _, b := range c.Beaches {
		if b == name {
			return true
		}
	}
	return false
}
