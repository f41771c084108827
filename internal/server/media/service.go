// Package media implements binary media persistence: each uploaded object is
// stored as a blob plus a sibling metadata record, both under a generated
// key in the media/ namespace. Keys are never reused or mutated, so fetches
// can be cached as immutable.
package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"livecontent/internal/common"
	"livecontent/internal/server/blobstore"

	"github.com/google/uuid"
)

// KeyPrefix is the namespace all media objects live under. Fetches outside
// it are rejected to keep the blobstore's other keys unreadable.
const KeyPrefix = "media/"

// DefaultMaxBytes bounds a single upload (~2.5MB).
const DefaultMaxBytes = 2500000

// Metadata is the record stored next to each blob as <key>.meta.json.
// A blob without readable metadata is treated as absent.
type Metadata struct {
	ContentType string `json:"contentType"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
}

// Object is a fetched media object.
type Object struct {
	Data []byte
	Meta Metadata
}

// Service owns media uploads and fetches.
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

// Upload stores data and its metadata under a freshly generated key and
// returns the key plus the dereference URL.
func (s *Service) Upload(ctx context.Context, data []byte, contentType, filename string) (string, string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", "", fmt.Errorf("%w: %d bytes over %d limit", common.ErrPayloadTooLarge, len(data), s.maxBytes)
	}

	ext := extFromContentType(contentType)
	if ext == "" {
		ext = extFromFilename(filename)
	}
	if ext == "" {
		ext = "bin"
	}

	key := fmt.Sprintf("%s%d_%s.%s", KeyPrefix, time.Now().UnixMilli(), uuid.New(), ext)

	if err := s.store.Set(ctx, key, data); err != nil {
		return "", "", err
	}

	meta := Metadata{ContentType: contentType, Filename: filename, Size: int64(len(data))}
	rawMeta, err := json.Marshal(meta)
	if err != nil {
		return "", "", err
	}
	if err := s.store.Set(ctx, metaKey(key), rawMeta); err != nil {
		return "", "", err
	}

	return key, "/api/media?key=" + url.QueryEscape(key), nil
}

// Fetch returns the blob and its metadata. The key must be inside the media
// namespace; a missing blob or missing metadata both surface as ErrNotFound,
// treating partial records as absent.
func (s *Service) Fetch(ctx context.Context, key string) (*Object, error) {
	if !strings.HasPrefix(key, KeyPrefix) {
		return nil, fmt.Errorf("%w: key outside media namespace", common.ErrInvalidPayload)
	}

	rawMeta, err := s.store.Get(ctx, metaKey(key))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(rawMeta, &meta); err != nil {
		return nil, common.ErrNotFound
	}
	if meta.ContentType == "" {
		meta.ContentType = "application/octet-stream"
	}

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	return &Object{Data: data, Meta: meta}, nil
}

func metaKey(key string) string { return key + ".meta.json" }

func extFromContentType(ct string) string {
	switch strings.ToLower(strings.TrimSpace(ct)) {
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/svg+xml":
		return "svg"
	case "image/gif":
		return "gif"
	}
	return ""
}

func extFromFilename(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	if len(ext) < 2 || len(ext) > 5 {
		return ""
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
