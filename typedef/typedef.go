package typedef

import "errors"

var (
	ErrTerritoryNameEmpty = errors.New("territory name cannot be empty")
	ErrTooFewVertices     = errors.New("territory needs at least 3 vertices")
	ErrNegativeOwner      = errors.New("territory owner cannot be negative")
	ErrTerritoryNotFound  = errors.New("territory not found")
	ErrDuplicateTerritory = errors.New("duplicate territory name")
)

// Point is a position in map space. Screen and map coordinates share the
// same space; no transform is applied before hit testing.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Territory is a named polygonal region. Name and Vertices never change
// after load; Owner and Armies are editable through the runtime. Selection
// lives on the runtime state, not here, so there is nothing to keep in sync.
type Territory struct {
	Name     string  `json:"name"`
	Vertices []Point `json:"vertices"`
	Owner    int     `json:"owner"`
	Armies   int     `json:"armies"`
}

// Contains reports whether p falls inside the territory polygon using the
// even-odd rule. Edge i runs from vertex i to the previous vertex, wrapping
// to the last vertex at the start. An edge counts when exactly one of its
// endpoints sits strictly above p.Y and the rightward ray from p crosses it.
// Points exactly on an edge or vertex classify either way, but repeated
// calls always agree.
func (t *Territory) Contains(p Point) bool {
	inside := false
	j := len(t.Vertices) - 1
	for i := 0; i < len(t.Vertices); i++ {
		vi := t.Vertices[i]
		vj := t.Vertices[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			cross := vj.X + (p.Y-vj.Y)/(vi.Y-vj.Y)*(vi.X-vj.X)
			if cross > p.X {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Validate checks the load-time invariants. Hit testing assumes a polygon
// with at least 3 vertices and does not re-check at runtime.
func (t *Territory) Validate() error {
	if t.Name == "" {
		return ErrTerritoryNameEmpty
	}
	if len(t.Vertices) < 3 {
		return ErrTooFewVertices
	}
	if t.Owner < 0 {
		return ErrNegativeOwner
	}
	return nil
}

// Centroid returns the vertex average, useful for labelling.
func (t *Territory) Centroid() Point {
	var c Point
	if len(t.Vertices) == 0 {
		return c
	}
	for _, v := range t.Vertices {
		c.X += v.X
		c.Y += v.Y
	}
	c.X /= float64(len(t.Vertices))
	c.Y /= float64(len(t.Vertices))
	return c
}
