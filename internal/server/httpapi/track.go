package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var orderPattern = regexp.MustCompile(`^\d{4,12}$`)

type trackRequest struct {
	Order string `json:"order"`
}

func (r trackRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Order, validation.Required, validation.Match(orderPattern)),
	)
}

type trackResponse struct {
	Response string `json:"response"`
}

// track proxies an order-tracking question to the upstream chat API so the
// API key never reaches the pages. Order numbers are digits only, 4 to 12
// characters.
func (s *Server) track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	r.Body = http.MaxBytesReader(w, r.Body, 4<<10)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid order number")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid order number")
		return
	}

	if s.config.TrackAPIKey == "" {
		respondError(w, http.StatusInternalServerError, "server not configured")
		return
	}

	payload, _ := json.Marshal(map[string]string{
		"userId":  "order_" + req.Order,
		"message": fmt.Sprintf("رقم طلبي: %s. أعطني حالة الطلب + شركة الشحن + رقم التتبع + رابط التتبع إن وجد.", req.Order),
	})

	upstream, err := http.NewRequestWithContext(r.Context(), http.MethodPost, s.config.TrackAPIURL, bytes.NewReader(payload))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	upstream.Header.Set("Content-Type", "application/json")
	upstream.Header.Set("POPCORN-API-KEY", s.config.TrackAPIKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(upstream)
	if err != nil {
		s.logger.Warn(r.Context(), "tracking upstream unreachable", "error", err)
		respondJSON(w, http.StatusOK, trackResponse{Response: trackFallbackMessage})
		return
	}
	defer resp.Body.Close()

	var data struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Response == "" {
		respondJSON(w, http.StatusOK, trackResponse{Response: trackFallbackMessage})
		return
	}

	respondJSON(w, http.StatusOK, trackResponse{Response: data.Response})
}

const trackFallbackMessage = "تعذر جلب البيانات حالياً"
