package httpapi

import (
	"errors"
	"io"
	"net/http"

	"livecontent/internal/server/content"
)

// getContent serves the content document with a conditional-fetch fast path:
// a matching If-None-Match returns 304 with no body. Intermediate caches are
// told not to cache; the ETag is the only freshness signal clients trust.
func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	raw, err := s.content.Get(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "content read failed", "error", err)
		respondMapped(w, err)
		return
	}

	etag := content.ETag(raw)
	w.Header().Set("ETag", etag)

	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(raw)
}

// putContent replaces the whole stored document. Callers are expected to
// have merged their edits into a complete document first; there is no
// partial merge and no optimistic-concurrency check (last writer wins).
func (s *Server) putContent(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		respondMapped(w, err)
		return
	}

	// Generous raw-body cap; the exact ceiling applies to the canonical
	// serialization inside the service.
	r.Body = http.MaxBytesReader(w, r.Body, 4<<20)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "payload too large")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := s.content.Set(r.Context(), body); err != nil {
		s.logger.Error(r.Context(), "content write failed", "error", err)
		respondMapped(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
