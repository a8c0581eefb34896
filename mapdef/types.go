// Package mapdef loads territory map definitions from JSON.
package mapdef

import "riskmap/typedef"

// RawMap is the on-disk map format.
type RawMap struct {
	Name        string         `json:"name"`
	Territories []RawTerritory `json:"territories"`
}

// RawTerritory is a single territory record as stored in the file.
// Vertices are [x,y] pairs. Armies may be negative in source data and is
// deliberately not validated. A true Selected seeds the initial selection.
type RawTerritory struct {
	Name     string      `json:"name"`
	Vertices [][]float64 `json:"vertices"`
	Owner    int         `json:"owner"`
	Armies   int         `json:"armies"`
	Selected bool        `json:"selected"`
}

// Map is the processed, validated runtime map.
type Map struct {
	Name        string
	Territories []*typedef.Territory

	// InitialSelection is the index seeded by a selected:true record, or -1.
	// When several records are marked, the last one wins, the same rule the
	// runtime applies to overlapping clicks.
	InitialSelection int
}
