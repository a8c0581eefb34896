package typedef

import "testing"

func unitSquare() *Territory {
	return &Territory{
		Name: "Square",
		Vertices: []Point{
			{0, 0}, {10, 0}, {10, 10}, {0, 10},
		},
		Owner:  0,
		Armies: 5,
	}
}

func concaveChevron() *Territory {
	// 10x10 square with a triangular notch cut into the top edge, dipping
	// down to (5,6). Simple and non-convex.
	return &Territory{
		Name: "Chevron",
		Vertices: []Point{
			{0, 0}, {10, 0}, {10, 10}, {5, 6}, {0, 10},
		},
	}
}

func TestContains_SquareInterior(t *testing.T) {
	sq := unitSquare()
	if !sq.Contains(Point{5, 5}) {
		t.Error("Expected (5,5) inside the 10x10 square")
	}
}

func TestContains_SquareOutside(t *testing.T) {
	sq := unitSquare()
	if sq.Contains(Point{15, 5}) {
		t.Error("Expected (15,5) outside the 10x10 square")
	}
}

func TestContains_FarOutsideBoundingBox(t *testing.T) {
	for _, terr := range []*Territory{unitSquare(), concaveChevron()} {
		if terr.Contains(Point{-1000, -1000}) {
			t.Errorf("Expected far point outside %s", terr.Name)
		}
		if terr.Contains(Point{1e6, 1e6}) {
			t.Errorf("Expected far point outside %s", terr.Name)
		}
	}
}

func TestContains_ConcaveCentroidAndNotch(t *testing.T) {
	ch := concaveChevron()
	// The vertex centroid (5, 5.2) sits below the notch, inside the shape.
	if !ch.Contains(ch.Centroid()) {
		t.Errorf("Expected centroid %+v inside the chevron", ch.Centroid())
	}
	// The notch region is outside even though the bounding box covers it.
	if ch.Contains(Point{5, 9}) {
		t.Error("Expected (5,9) outside the chevron notch")
	}
	if !ch.Contains(Point{2, 8}) {
		t.Error("Expected (2,8) inside the left arm of the chevron")
	}
}

func TestContains_BoundaryIsStable(t *testing.T) {
	// Points on an edge may classify either way, but repeated calls must
	// agree and the call must not mutate anything.
	sq := unitSquare()
	edge := Point{0, 5}
	first := sq.Contains(edge)
	for i := 0; i < 100; i++ {
		if sq.Contains(edge) != first {
			t.Fatal("Boundary classification changed between calls")
		}
	}
}

func TestContains_Deterministic(t *testing.T) {
	ch := concaveChevron()
	probes := []Point{{1, 1}, {9, 1}, {9, 9}, {1, 9}, {5, 5}, {7.5, 2.5}}
	for _, p := range probes {
		first := ch.Contains(p)
		for i := 0; i < 10; i++ {
			if ch.Contains(p) != first {
				t.Fatalf("Contains(%+v) not deterministic", p)
			}
		}
	}
}

func TestContains_WindingDirectionIrrelevant(t *testing.T) {
	cw := unitSquare()
	ccw := &Territory{
		Name:     "SquareReversed",
		Vertices: []Point{{0, 10}, {10, 10}, {10, 0}, {0, 0}},
	}
	probes := []Point{{5, 5}, {15, 5}, {-3, 4}, {9.9, 9.9}}
	for _, p := range probes {
		if cw.Contains(p) != ccw.Contains(p) {
			t.Errorf("Winding direction changed result for %+v", p)
		}
	}
}

func TestValidate(t *testing.T) {
	good := unitSquare()
	if err := good.Validate(); err != nil {
		t.Errorf("Expected valid territory, got %v", err)
	}

	noName := unitSquare()
	noName.Name = ""
	if err := noName.Validate(); err != ErrTerritoryNameEmpty {
		t.Errorf("Expected ErrTerritoryNameEmpty, got %v", err)
	}

	degenerate := &Territory{Name: "Line", Vertices: []Point{{0, 0}, {1, 1}}}
	if err := degenerate.Validate(); err != ErrTooFewVertices {
		t.Errorf("Expected ErrTooFewVertices, got %v", err)
	}

	badOwner := unitSquare()
	badOwner.Owner = -1
	if err := badOwner.Validate(); err != ErrNegativeOwner {
		t.Errorf("Expected ErrNegativeOwner, got %v", err)
	}
}
