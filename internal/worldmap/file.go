package worldmap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agewalk/internal/tile"
)

// entry is one persisted cell. Coordinates are decoded as signed integers so
// that a negative value drops that entry instead of failing the whole file.
type entry struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	BlockType string `json:"block_type"`
}

// Load reads the map at path. A missing or unparsable file is not an error
// for the caller: it is logged and an empty map is returned.
func Load(path string, width, height int, logger *log.Logger) *Map {
	if logger == nil {
		logger = log.Default()
	}

	m, err := Read(path, width, height)
	if err != nil {
		logger.Warn("starting with an empty map", "path", path, "error", err)
		return New(width, height)
	}

	logger.Info("map loaded", "path", path, "tiles", m.Len())
	return m
}

// Read reads the map at path and reports I/O and syntax errors. Entries with
// out-of-bounds coordinates or unknown kinds are skipped.
func Read(path string, width, height int) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("worldmap: failed to read %s: %w", path, err)
	}
	m, err := Decode(data, width, height)
	if err != nil {
		return nil, fmt.Errorf("worldmap: failed to parse %s: %w", path, err)
	}
	return m, nil
}

// Decode parses the JSON entry list.
func Decode(data []byte, width, height int) (*Map, error) {
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	m := New(width, height)
	for _, e := range entries {
		k, ok := tile.Parse(e.BlockType)
		if !ok {
			continue
		}
		// Out-of-bounds entries are dropped one by one
		_ = m.Set(C(e.X, e.Y), k)
	}
	return m, nil
}

// Encode renders the map as an indented JSON entry list, one entry per
// occupied cell, sorted by row then column.
func Encode(m *Map) ([]byte, error) {
	coords := make([]Coord, 0, m.Len())
	for c := range m.All() {
		coords = append(coords, c)
	}
	sortCoords(coords)

	entries := make([]entry, 0, len(coords))
	for _, c := range coords {
		k, _ := m.Get(c)
		entries = append(entries, entry{X: c.X, Y: c.Y, BlockType: k.String()})
	}
	return json.MarshalIndent(entries, "", "  ")
}

// Save overwrites the file at path with the current map contents.
func Save(m *Map, path string) error {
	data, err := Encode(m)
	if err != nil {
		return fmt.Errorf("worldmap: cannot encode map: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("worldmap: cannot create directory %s: %w", dir, err)
	}

	// Write next to the target and rename so a failed write keeps the old file
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("worldmap: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("worldmap: cannot set permissions on %s: %w", tmp.Name(), err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("worldmap: cannot write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("worldmap: cannot write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("worldmap: cannot replace %s: %w", path, err)
	}
	return nil
}
