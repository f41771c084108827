// Package content implements the versioned content store: a single JSON
// document persisted under a fixed key, fingerprinted with a weak ETag at
// read time. Writes replace the whole document (last writer wins); there is
// deliberately no compare-and-swap on the write path.
package content

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	_ "embed"

	"livecontent/internal/common"
	"livecontent/internal/server/blobstore"
)

// ContentKey is the fixed blobstore key holding the content document.
const ContentKey = "content.json"

// DefaultMaxBytes bounds the canonical serialized document size.
const DefaultMaxBytes = 120000

//go:embed default.json
var defaultDocument []byte

// Service owns reads and writes of the content document.
type Service struct {
	store    blobstore.Store
	maxBytes int64
}

func NewService(store blobstore.Store, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Service{store: store, maxBytes: maxBytes}
}

// Get returns the serialized content document. If no document has ever been
// written it seeds the embedded default and returns it. Seeding is idempotent
// under concurrent first reads: the default bytes are deterministic, so two
// racing seeds write identical content.
func (s *Service) Get(ctx context.Context) ([]byte, error) {
	raw, err := s.store.Get(ctx, ContentKey)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	if err := s.store.Set(ctx, ContentKey, defaultDocument); err != nil {
		// Seeding is best effort: serving the default without persisting it
		// still gives every reader the same bytes.
		return defaultDocument, nil
	}
	return defaultDocument, nil
}

// Set validates and persists a full replacement document. The body must be a
// JSON object at the root and its canonical serialization must not exceed the
// configured ceiling.
func (s *Service) Set(ctx context.Context, body []byte) error {
	raw, err := Canonicalize(body)
	if err != nil {
		return err
	}
	if int64(len(raw)) > s.maxBytes {
		return fmt.Errorf("%w: %d bytes over %d limit", common.ErrPayloadTooLarge, len(raw), s.maxBytes)
	}
	return s.store.Set(ctx, ContentKey, raw)
}

// Canonicalize parses body and re-serializes it deterministically (object
// keys sorted). Non-object roots are rejected with ErrInvalidPayload.
func Canonicalize(body []byte) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document root must be an object", common.ErrInvalidPayload)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	return raw, nil
}

// ETag computes the weak fingerprint of the serialized document. Identical
// bytes always produce the identical tag.
func ETag(raw []byte) string {
	sum := sha1.Sum(raw)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}
