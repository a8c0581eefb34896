package truntime

import (
	"os"
	"path/filepath"
	"testing"

	"riskmap/typedef"
)

func TestSnapshot_RoundTripRestoresState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.lz4")

	st := newTestState()
	st.HandleClick(typedef.Point{X: 105, Y: 105})
	if err := st.SetOwner("T0", 7); err != nil {
		t.Fatal(err)
	}

	if err := st.SaveSnapshot(path); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	restored := newTestState()
	if err := restored.LoadSnapshot(path); err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if restored.MapName() != "test" {
		t.Errorf("Expected map name 'test', got %q", restored.MapName())
	}
	idx, terr := restored.Selection()
	if idx != 1 || terr == nil || terr.Name != "T1" {
		t.Errorf("Expected selection T1 (index 1) after restore, got %d", idx)
	}
	if got := restored.Territories()[0].Owner; got != 7 {
		t.Errorf("Expected restored owner 7, got %d", got)
	}
	checkInvariant(t, restored)
}

func TestSnapshot_CorruptFileLeavesStateUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.lz4")
	if err := os.WriteFile(path, []byte("not a snapshot"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := newTestState()
	st.HandleClick(typedef.Point{X: 5, Y: 5})

	if err := st.LoadSnapshot(path); err == nil {
		t.Fatal("Expected error loading corrupt snapshot")
	}

	// The failed load must not have disturbed anything.
	if idx, _ := st.Selection(); idx != 0 {
		t.Errorf("Expected selection 0 preserved, got %d", idx)
	}
	if st.Count() != 2 {
		t.Errorf("Expected 2 territories preserved, got %d", st.Count())
	}
}

func TestSnapshot_MissingFile(t *testing.T) {
	st := newTestState()
	if err := st.LoadSnapshot(filepath.Join(t.TempDir(), "absent.lz4")); err == nil {
		t.Error("Expected error for missing snapshot file")
	}
}
