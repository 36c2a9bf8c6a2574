package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Makepad-fr/shoresquad/internal/model"
)

// Geolocation providers.
const (
	GeoIPAPI = "ipapi"
	GeoFixed = "fixed"
	GeoNone  = "none"
)

// Config holds all client settings, populated from environment variables.
type Config struct {
	LogFile  string
	LogLevel string

	BeachesFile  string // empty means the embedded sample beaches
	SnapshotFile string

	GeoProvider string
	GeoURL      string
	GeoTimeout  time.Duration
	Location    *model.Coordinate // required when GeoProvider is fixed

	MapZoom        int
	MapInitRetries int
	NotifyDuration time.Duration
}

// Load reads an optional .env file, then the environment, applying defaults
// where unset.
func Load() (*Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	geoTimeout, err := parseDuration("GEO_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	notify, err := parseDuration("NOTIFY_DURATION", "4s")
	if err != nil {
		return nil, err
	}
	zoom, err := parseInt("MAP_ZOOM", 10)
	if err != nil {
		return nil, err
	}
	retries, err := parseInt("MAP_INIT_RETRIES", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogFile:        envOrDefault("SHORESQUAD_LOG_FILE", "shoresquad.log"),
		LogLevel:       strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		BeachesFile:    os.Getenv("SHORESQUAD_BEACHES_FILE"),
		SnapshotFile:   envOrDefault("SHORESQUAD_SNAPSHOT_FILE", "shoresquad-state.json"),
		GeoProvider:    strings.ToLower(envOrDefault("GEO_PROVIDER", GeoIPAPI)),
		GeoURL:         envOrDefault("GEO_URL", "http://ip-api.com/json"),
		GeoTimeout:     geoTimeout,
		MapZoom:        zoom,
		MapInitRetries: retries,
		NotifyDuration: notify,
	}

	if s := os.Getenv("SHORESQUAD_LOCATION"); s != "" {
		c, err := ParseCoordinate(s)
		if err != nil {
			return nil, fmt.Errorf("SHORESQUAD_LOCATION: %w", err)
		}
		cfg.Location = &c
	}

	switch cfg.GeoProvider {
	case GeoIPAPI, GeoNone:
	case GeoFixed:
		if cfg.Location == nil {
			return nil, errors.New("GEO_PROVIDER is fixed but SHORESQUAD_LOCATION is not set")
		}
	default:
		return nil, fmt.Errorf("invalid GEO_PROVIDER %q", cfg.GeoProvider)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	if cfg.MapInitRetries < 1 {
		return nil, errors.New("MAP_INIT_RETRIES must be at least 1")
	}
	return cfg, nil
}

// ParseCoordinate reads "lat,lng".
func ParseCoordinate(s string) (model.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Coordinate{}, fmt.Errorf("want \"lat,lng\", got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return model.Coordinate{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lng < -180 || lng > 180 {
		return model.Coordinate{}, fmt.Errorf("invalid longitude %q", parts[1])
	}
	return model.Coordinate{Lat: lat, Lng: lng}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
