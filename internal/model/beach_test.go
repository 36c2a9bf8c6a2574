package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDebrisLevel(t *testing.T) {
	lvl, err := ParseDebrisLevel(" High ")
	require.NoError(t, err)
	assert.Equal(t, DebrisHigh, lvl)

	_, err = ParseDebrisLevel("extreme")
	assert.Error(t, err)
}

func TestDebrisLevel_Priority(t *testing.T) {
	assert.Equal(t, PriorityLow, DebrisLow.Priority())
	assert.Equal(t, PriorityMedium, DebrisMedium.Priority())
	assert.Equal(t, PriorityHigh, DebrisHigh.Priority())
	assert.Equal(t, "high", PriorityHigh.String())
}

func TestBeach_Popup(t *testing.T) {
	b := Beach{Name: "Coral Cove", Debris: DebrisMedium, LastCleanup: "2 weeks ago"}
	assert.Equal(t, "Coral Cove\nDebris: medium · Last cleanup: 2 weeks ago", b.Popup())
}

func TestCrew_HasBeach(t *testing.T) {
	c := Crew{Beaches: []string{"Coral Cove"}}
	assert.True(t, c.HasBeach("Coral Cove"))
	assert.False(t, c.HasBeach("Honeymoon Island"))
}
