package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var dataURLPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

type uploadRequest struct {
	DataURL  string `json:"dataUrl"`
	Filename string `json:"filename"`
}

func (r uploadRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DataURL, validation.Required, validation.Match(dataURLPattern)),
	)
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
	URL     string `json:"url"`
}

// postMedia accepts a base64 data URL upload from an authenticated editor.
func (s *Server) postMedia(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		respondMapped(w, err)
		return
	}

	var req uploadRequest
	r.Body = http.MaxBytesReader(w, r.Body, 8<<20)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid dataUrl")
		return
	}

	m := dataURLPattern.FindStringSubmatch(req.DataURL)
	contentType := m[1]
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid dataUrl")
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = "upload"
	}

	key, url, err := s.media.Upload(r.Context(), data, contentType, filename)
	if err != nil {
		s.logger.Error(r.Context(), "media upload failed", "error", err)
		respondMapped(w, err)
		return
	}

	respondJSON(w, http.StatusOK, uploadResponse{Success: true, Key: key, URL: url})
}

// getMedia serves a stored media object. Keys never change once written, so
// successful responses are marked immutable for a year.
func (s *Server) getMedia(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")

	obj, err := s.media.Fetch(r.Context(), key)
	if err != nil {
		respondMapped(w, err)
		return
	}

	w.Header().Set("Content-Type", obj.Meta.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(obj.Data)
}
