// Package catalog holds the fixed list of sample beaches shown on the map.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/shoresquad/internal/model"
)

//go:embed beaches.yaml
var embedded []byte

// Catalog is the ordered sample beach list.
type Catalog struct {
	beaches []model.Beach
}

type fileFormat struct {
	Beaches []entry `yaml:"beaches"`
}

type entry struct {
	Name        string  `yaml:"name"`
	Lat         float64 `yaml:"lat"`
	Lng         float64 `yaml:"lng"`
	Debris      string  `yaml:"debris"`
	LastCleanup string  `yaml:"lastCleanup"`
}

// Load reads a catalog from path. An empty path yields the embedded samples.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(embedded)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return c, nil
}

// Default returns the embedded sample catalog.
func Default() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic("embedded catalog: " + err.Error())
	}
	return c
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(f.Beaches) == 0 {
		return nil, errors.New("no beaches")
	}
	seen := make(map[string]bool, len(f.Beaches))
	out := make([]model.Beach, 0, len(f.Beaches))
	for i, e := range f.Beaches {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("beach %d: empty name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("beach %q: duplicate name", name)
		}
		seen[name] = true
		if !inRange(e.Lat, 90) || !inRange(e.Lng, 180) {
			return nil, fmt.Errorf("beach %q: coordinate out of range (%v, %v)", name, e.Lat, e.Lng)
		}
		lvl, err := model.ParseDebrisLevel(e.Debris)
		if err != nil {
			return nil, fmt.Errorf("beach %q: %w", name, err)
		}
		out = append(out, model.Beach{
			Name:        name,
			Coordinate:  model.Coordinate{Lat: e.Lat, Lng: e.Lng},
			Debris:      lvl,
			LastCleanup: strings.TrimSpace(e.LastCleanup),
		})
	}
	return &Catalog{beaches: out}, nil
}

// inRange rejects NaN as well as values outside [-limit, limit].
func inRange(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}

// Beaches returns a copy of the catalog entries in order.
func (c *Catalog) Beaches() []model.Beach {
	out := make([]model.Beach, len(c.beaches))
	copy(out, c.beaches)
	return out
}

// Len is the number of beaches.
func (c *Catalog) Len() int { return len(c.beaches) }

// Contains reports whether name is a catalog beach.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.Find(name)
	return ok
}

// Find looks a beach up by name.
func (c *Catalog) Find(name string) (model.Beach, bool) {
	for _, b := range c.beaches {
		if b.Name == name {
			return b, true
		}
	}
	return model.Beach{}, false
}
