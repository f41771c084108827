package sync

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"livecontent/internal/common"
)

// Override is an optional preview document kept in a local file and merged
// over the fetched document for this client only. It is never transmitted
// to the server.
type Override struct {
	path string
}

func NewOverride(path string) *Override {
	return &Override{path: path}
}

// Load returns the stored override object, or nil if none is set. A file
// that does not parse as a JSON object is treated as no override.
func (o *Override) Load() Document {
	if o == nil || o.path == "" {
		return nil
	}

	raw, err := os.ReadFile(o.path)
	if err != nil {
		return nil
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return doc
}

// Save persists the override object.
func (o *Override) Save(doc Document) error {
	if o == nil || o.path == "" {
		return errors.New("override path not configured")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	return os.WriteFile(o.path, raw, 0o600)
}

// Clear removes the stored override. Clearing an absent override is not an
// error.
func (o *Override) Clear() error {
	if o == nil || o.path == "" {
		return nil
	}
	if err := os.Remove(o.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MergeOverride layers override over base by shallow merge at the top level
// of the tree: an overridden top-level key fully replaces the base subtree.
// Neither input is mutated.
func MergeOverride(base, override Document) Document {
	if len(override) == 0 {
		return base
	}

	merged := make(Document, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
