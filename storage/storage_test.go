package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDir_EnvOverride(t *testing.T) {
	// DataDir resolves once per process, so a single test covers the
	// override path.
	dir := t.TempDir()
	t.Setenv("RISKMAP_DATA_DIR", dir)

	if got := DataDir(); got != dir {
		t.Fatalf("Expected data dir %s, got %s", dir, got)
	}
	if got := DataFile("snapshot.lz4"); got != filepath.Join(dir, "snapshot.lz4") {
		t.Errorf("Unexpected DataFile path %s", got)
	}

	if err := WriteDataFile("sub/test.bin", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteDataFile failed: %v", err)
	}
	data, err := ReadDataFile("sub/test.bin")
	if err != nil || string(data) != "x" {
		t.Errorf("ReadDataFile returned %q, %v", data, err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Data dir missing: %v", err)
	}
}
