package jsonstore

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Makepad-fr/packing/internal/model"
	"github.com/Makepad-fr/packing/internal/store"
)

// JSON codec for list snapshots. Files are only ever read as seed input;
// snapshots are written to a stream on exit and never read back, so
// nothing survives between sessions.

// Load reads a seed file. Entries without an id get one from ids.
func Load(path string, ids model.IDGenerator) (store.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return store.Collection{}, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return Read(f, ids)
}

// Read decodes a JSON array of items. Invalid entries (blank names,
// duplicate ids) are dropped and quantities are coerced to at least 1.
func Read(r io.Reader, ids model.IDGenerator) (store.Collection, error) {
	var items []model.Item
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return store.Collection{}, fmt.Errorf("json decode: %w", err)
	}
	taken := make(map[string]bool, len(items))
	for _, it := range items {
		taken[it.ID] = true
	}
	for i := range items {
		if items[i].ID != "" {
			continue
		}
		id := ids.NextID()
		for taken[id] {
			id = ids.NextID()
		}
		taken[id] = true
		items[i].ID = id
	}
	return store.NewCollection(items...), nil
}

// Write encodes c as an indented JSON array.
func Write(w io.Writer, c store.Collection) error {
	b, err := json.MarshalIndent(c.Items(), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
