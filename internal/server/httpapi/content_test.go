package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livecontent/internal/server/auth"
	"livecontent/internal/server/config"
)

func TestGetContent_ServesDefaultWithETag(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("ETag"), `W/"`))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.NotEmpty(t, doc)
}

func TestGetContent_IfNoneMatch(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	// Matching tag short-circuits with no body.
	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	assert.Equal(t, etag, rec.Header().Get("ETag"))

	// Stale tag gets the full document.
	req = httptest.NewRequest(http.MethodGet, "/api/content", nil)
	req.Header.Set("If-None-Match", `W/"deadbeef"`)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestPutContent_RequiresValidToken(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	expired, err := auth.GenerateToken("editor", []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	foreign, err := auth.GenerateToken("editor", []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"garbage token", "not.a.jwt", http.StatusUnauthorized},
		{"expired token", expired, http.StatusUnauthorized},
		{"wrong secret", foreign, http.StatusUnauthorized},
		{"valid token", validToken(t), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/content", strings.NewReader(`{"a":1}`))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPutContent_MisconfiguredSecretIs500(t *testing.T) {
	srv, _ := newTestServer(t, func(c *config.Config) { c.JWTSecret = "" })

	req := httptest.NewRequest(http.MethodPut, "/api/content", strings.NewReader(`{"a":1}`))
	req.Header.Set("Authorization", "Bearer some.token.here")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPutContent_WriteThenReadBack(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodPut, "/api/content", strings.NewReader(`{"site":{"title":"updated"}}`))
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"site":{"title":"updated"}}`, rec.Body.String())
}

func TestPutContent_ChangesETag(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	before := rec.Header().Get("ETag")

	req := httptest.NewRequest(http.MethodPut, "/api/content", strings.NewReader(`{"changed":true}`))
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))
	assert.NotEqual(t, before, rec.Header().Get("ETag"))
}

func TestPutContent_InvalidBodies(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	handler := srv.Handler()

	for _, body := range []string{`[1,2]`, `"str"`, `not json`} {
		req := httptest.NewRequest(http.MethodPut, "/api/content", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+validToken(t))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestPutContent_OversizedDocumentIs413(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	big := `{"v":"` + strings.Repeat("a", 130000) + `"}`
	req := httptest.NewRequest(http.MethodPut, "/api/content", strings.NewReader(big))
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
