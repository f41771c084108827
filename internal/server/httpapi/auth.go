package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"livecontent/internal/server/auth"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// cookieName is the session cookie used by the cookie-based auth variant.
const cookieName = "lc_admin_token"

type loginRequest struct {
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required),
	)
}

type sessionResponse struct {
	Authorized bool   `json:"authorized"`
	Exp        int64  `json:"exp,omitempty"`
	Token      string `json:"token,omitempty"`
}

// login exchanges the editor password for a bearer token. The token is
// returned in the body and also set as an HttpOnly cookie for the
// cookie-based dashboard variant.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if s.config.AdminPasswordHash == "" || s.config.JWTSecret == "" {
		respondJSON(w, http.StatusInternalServerError, sessionResponse{Authorized: false})
		return
	}

	var req loginRequest
	r.Body = http.MaxBytesReader(w, r.Body, 4<<10)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, sessionResponse{Authorized: false})
		return
	}
	if err := req.Validate(); err != nil {
		respondJSON(w, http.StatusBadRequest, sessionResponse{Authorized: false})
		return
	}

	if err := auth.CheckPassword(s.config.AdminPasswordHash, req.Password); err != nil {
		respondJSON(w, http.StatusUnauthorized, sessionResponse{Authorized: false})
		return
	}

	token, err := auth.GenerateToken("editor", []byte(s.config.JWTSecret), s.config.TokenTTL)
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, sessionResponse{Authorized: false})
		return
	}

	exp := time.Now().Add(s.config.TokenTTL).Unix()

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.config.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !strings.Contains(r.Host, "localhost"),
	})

	respondJSON(w, http.StatusOK, sessionResponse{Authorized: true, Exp: exp, Token: token})
}

// session reports whether the request carries a still-valid session cookie.
func (s *Server) session(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	if s.config.JWTSecret == "" {
		respondJSON(w, http.StatusInternalServerError, sessionResponse{Authorized: false})
		return
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil {
		respondJSON(w, http.StatusOK, sessionResponse{Authorized: false})
		return
	}

	claims, err := auth.VerifyToken(cookie.Value, []byte(s.config.JWTSecret))
	if err != nil {
		respondJSON(w, http.StatusOK, sessionResponse{Authorized: false})
		return
	}

	respondJSON(w, http.StatusOK, sessionResponse{Authorized: true, Exp: claims.ExpiresAt.Unix()})
}
