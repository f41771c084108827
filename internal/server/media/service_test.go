package media

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livecontent/internal/common"
	"livecontent/internal/server/blobstore"
)

func TestUploadThenFetch_Roundtrip(t *testing.T) {
	svc := NewService(blobstore.NewMemoryStore(), 0)

	data := bytes.Repeat([]byte{0x89, 0x50, 0x4e, 0x47}, 1024)
	key, refURL, err := svc.Upload(context.Background(), data, "image/png", "logo.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, KeyPrefix))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Contains(t, refURL, "/api/media?key=")

	obj, err := svc.Fetch(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, data, obj.Data)
	assert.Equal(t, "image/png", obj.Meta.ContentType)
	assert.Equal(t, "logo.png", obj.Meta.Filename)
	assert.Equal(t, int64(len(data)), obj.Meta.Size)
}

func TestUpload_GeneratesUniqueKeys(t *testing.T) {
	svc := NewService(blobstore.NewMemoryStore(), 0)

	k1, _, err := svc.Upload(context.Background(), []byte("a"), "image/png", "")
	require.NoError(t, err)
	k2, _, err := svc.Upload(context.Background(), []byte("a"), "image/png", "")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestUpload_SizeCeiling(t *testing.T) {
	svc := NewService(blobstore.NewMemoryStore(), 16)

	_, _, err := svc.Upload(context.Background(), make([]byte, 17), "image/png", "")
	assert.ErrorIs(t, err, common.ErrPayloadTooLarge)

	_, _, err = svc.Upload(context.Background(), make([]byte, 16), "image/png", "")
	assert.NoError(t, err)
}

func TestUpload_ExtensionFallbacks(t *testing.T) {
	svc := NewService(blobstore.NewMemoryStore(), 0)

	tests := []struct {
		name        string
		contentType string
		filename    string
		wantSuffix  string
	}{
		{"from content type", "image/webp", "photo.jpg", ".webp"},
		{"from filename", "application/x-thing", "photo.jpg", ".jpg"},
		{"no usable hint", "application/x-thing", "noext", ".bin"},
		{"filename ext too long", "", "file.abcdef", ".bin"},
		{"filename ext not alphanumeric", "", "file.p_g", ".bin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _, err := svc.Upload(context.Background(), []byte("x"), tt.contentType, tt.filename)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(key, tt.wantSuffix), "key %s", key)
		})
	}
}

func TestFetch_KeyOutsideNamespace(t *testing.T) {
	svc := NewService(blobstore.NewMemoryStore(), 0)

	_, err := svc.Fetch(context.Background(), "content.json")
	assert.ErrorIs(t, err, common.ErrInvalidPayload)
}

func TestFetch_Missing(t *testing.T) {
	svc := NewService(blobstore.NewMemoryStore(), 0)

	_, err := svc.Fetch(context.Background(), KeyPrefix+"nope.png")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFetch_BlobWithoutMetadata(t *testing.T) {
	store := blobstore.NewMemoryStore()
	svc := NewService(store, 0)

	key := KeyPrefix + "orphan.png"
	require.NoError(t, store.Set(context.Background(), key, []byte("data")))

	_, err := svc.Fetch(context.Background(), key)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
