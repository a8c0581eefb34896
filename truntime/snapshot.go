package truntime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"riskmap/typedef"

	"github.com/pierrec/lz4"
)

// snapshotVersion guards against decoding snapshots from incompatible
// builds.
const snapshotVersion = 1

type snapshotJSON struct {
	Version     int                  `json:"version"`
	MapName     string               `json:"map_name"`
	Territories []*typedef.Territory `json:"territories"`
	Selected    int                  `json:"selected"`
}

// SaveSnapshot writes the full state as LZ4-compressed JSON.
func (st *State) SaveSnapshot(path string) error {
	st.mu.RLock()
	snap := snapshotJSON{
		Version:     snapshotVersion,
		MapName:     st.mapName,
		Territories: st.territories,
		Selected:    st.selected,
	}
	data, err := json.Marshal(&snap)
	st.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	compressed, err := compressLZ4(data)
	if err != nil {
		return fmt.Errorf("failed to compress state: %w", err)
	}

	if err := os.WriteFile(path, compressed, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Printf("[STATE] Saved snapshot to %s (%d -> %d bytes)\n", path, len(data), len(compressed))
	return nil
}

// LoadSnapshot restores state from a snapshot file. The snapshot is fully
// validated before anything is swapped in, so a corrupt file leaves the
// current state untouched.
func (st *State) LoadSnapshot(path string) error {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	data, err := decompressLZ4(compressed)
	if err != nil {
		return fmt.Errorf("failed to decompress snapshot: %w", err)
	}

	var snap snapshotJSON
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if len(snap.Territories) == 0 {
		return fmt.Errorf("snapshot has no territories")
	}
	for i, terr := range snap.Territories {
		if err := terr.Validate(); err != nil {
			return fmt.Errorf("snapshot territory %d (%q): %w", i, terr.Name, err)
		}
	}
	if snap.Selected != NoSelection && (snap.Selected < 0 || snap.Selected >= len(snap.Territories)) {
		return fmt.Errorf("snapshot selection %d out of range", snap.Selected)
	}

	st.mu.Lock()
	st.mapName = snap.MapName
	st.territories = snap.Territories
	st.selected = snap.Selected
	st.mu.Unlock()

	fmt.Printf("[STATE] Loaded snapshot %s with %d territories\n", path, len(snap.Territories))
	st.notify(Event{Type: EventStateLoaded})
	return nil
}

func compressLZ4(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompressLZ4(data []byte) ([]byte, error) {
	reader := lz4.NewReader(bytes.NewReader(data))

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
