package mapdef

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"riskmap/typedef"
)

//go:embed data/*.json
var mapFiles embed.FS

// DefaultMapName is the embedded map used when no -map flag is given.
const DefaultMapName = "classic.json"

// Default loads the embedded default map.
func Default() (*Map, error) {
	data, err := mapFiles.ReadFile("data/" + DefaultMapName)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded map: %w", err)
	}
	return Parse(data)
}

// Load reads and parses a map file from disk. Any malformed record aborts
// the load; a partially valid collection never reaches the runtime.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid map file %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates raw map JSON.
func Parse(data []byte) (*Map, error) {
	var raw RawMap
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse map JSON: %w", err)
	}
	return process(&raw)
}

func process(raw *RawMap) (*Map, error) {
	if len(raw.Territories) == 0 {
		return nil, fmt.Errorf("map has no territories")
	}

	m := &Map{
		Name:             raw.Name,
		Territories:      make([]*typedef.Territory, 0, len(raw.Territories)),
		InitialSelection: -1,
	}

	seen := make(map[string]bool, len(raw.Territories))
	for i, rt := range raw.Territories {
		terr, err := convert(&rt)
		if err != nil {
			return nil, fmt.Errorf("territory %d (%q): %w", i, rt.Name, err)
		}
		if seen[terr.Name] {
			return nil, fmt.Errorf("territory %d: %w: %s", i, typedef.ErrDuplicateTerritory, terr.Name)
		}
		seen[terr.Name] = true
		m.Territories = append(m.Territories, terr)
		if rt.Selected {
			m.InitialSelection = i
		}
	}

	return m, nil
}

func convert(rt *RawTerritory) (*typedef.Territory, error) {
	verts := make([]typedef.Point, len(rt.Vertices))
	for i, pair := range rt.Vertices {
		if len(pair) != 2 {
			return nil, fmt.Errorf("vertex %d has %d coordinates, want 2", i, len(pair))
		}
		verts[i] = typedef.Point{X: pair[0], Y: pair[1]}
	}

	terr := &typedef.Territory{
		Name:     rt.Name,
		Vertices: verts,
		Owner:    rt.Owner,
		Armies:   rt.Armies,
	}
	if err := terr.Validate(); err != nil {
		return nil, err
	}
	return terr, nil
}
