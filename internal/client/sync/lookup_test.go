package sync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc(t *testing.T) Document {
	t.Helper()
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{
		"site": {"title": "shop", "visible": true, "empty": "", "zero": 0},
		"pages": {"track": {"cta": "تتبع"}},
		"plain": "value"
	}`), &doc))
	return doc
}

func TestLookup(t *testing.T) {
	doc := testDoc(t)

	tests := []struct {
		path   string
		want   any
		wantOk bool
	}{
		{"plain", "value", true},
		{"site.title", "shop", true},
		{"pages.track.cta", "تتبع", true},
		{"site.empty", "", true},
		{"site.zero", float64(0), true},
		{"site.visible", true, true},
		{"missing", nil, false},
		{"site.missing", nil, false},
		{"plain.deeper", nil, false}, // scalar in the middle of the path
		{"", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Lookup(doc, tt.path)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_NilDocument(t *testing.T) {
	_, ok := Lookup(nil, "a.b")
	assert.False(t, ok)
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(float64(0)))

	assert.True(t, Truthy(true))
	assert.True(t, Truthy("x"))
	assert.True(t, Truthy(float64(1)))
	assert.True(t, Truthy(map[string]any{}))
	assert.True(t, Truthy([]any{}))
}
