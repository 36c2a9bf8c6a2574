package cli

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/shoresquad/internal/catalog"
	"github.com/Makepad-fr/shoresquad/internal/config"
	"github.com/Makepad-fr/shoresquad/internal/geo"
	"github.com/Makepad-fr/shoresquad/internal/model"
	"github.com/Makepad-fr/shoresquad/internal/squad"
	"github.com/Makepad-fr/shoresquad/internal/store/jsonstore"
)

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var buf bytes.Buffer
	code := Run(args, Options{Out: &buf})
	return code, buf.String()
}

func TestRun_Help(t *testing.T) {
	code, out := run(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Subcommands:")
}

func TestRun_Usage(t *testing.T) {
	code, _ := run(t, "sail")
	assert.Equal(t, 2, code)
	code, _ = run(t, "beaches", "extra")
	assert.Equal(t, 2, code)
}

func TestRun_ConfigError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GEO_PROVIDER", "gps")
	code, _ := run(t, "beaches")
	assert.Equal(t, 1, code)
}

func TestRun_Beaches(t *testing.T) {
	chdir(t, t.TempDir())
	code, out := run(t, "beaches")
	require.Equal(t, 0, code)
	for _, b := range catalog.Default().Beaches() {
		assert.Contains(t, out, b.Name)
	}
	assert.Contains(t, out, "high debris 2")
}

func TestRun_Weather(t *testing.T) {
	chdir(t, t.TempDir())
	code, out := run(t, "weather")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "72°F Partly Cloudy")
	assert.Contains(t, out, " 65%")
	assert.Contains(t, out, "Thursday")
}

func TestRun_StateMissing(t *testing.T) {
	chdir(t, t.TempDir())
	code, out := run(t, "state")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "no state exported yet")
}

func TestRun_StateExported(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	snap := squad.Snapshot{
		TakenAt:     time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
		MarkerCount: 1,
		UpcomingEvents: []model.CleanupEvent{
			{ID: 1, Name: "Coral Cove Cleanup", Beach: "Coral Cove", Status: model.StatusPlanning},
		},
		Crew: model.Crew{Cleanups: 1, Beaches: []string{"Coral Cove"}},
	}
	_, err := jsonstore.Save(filepath.Join(dir, "shoresquad-state.json"), snap)
	require.NoError(t, err)

	code, out := run(t, "state")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Coral Cove Cleanup @ Coral Cove [planning]")
	assert.Contains(t, out, "cleanups 1 · impact 0 lbs · members 0 · beaches 1")
	assert.Contains(t, out, "unknown (default map center)")
}

func TestNewLocator(t *testing.T) {
	c := model.Coordinate{Lat: 1, Lng: 2}
	assert.Equal(t, geo.Fixed(model.Location{Coordinate: c}),
		newLocator(&config.Config{GeoProvider: config.GeoFixed, Location: &c}))
	assert.Equal(t, geo.Unavailable{}, newLocator(&config.Config{GeoProvider: config.GeoNone}))
	assert.IsType(t, &geo.IPAPI{}, newLocator(&config.Config{GeoProvider: config.GeoIPAPI}))
}
