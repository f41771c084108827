// Package httpapi exposes the content, media, auth and tracking endpoints
// over HTTP. Every request is stateless; the blobstore behind the services
// is the only shared mutable resource.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"livecontent/internal/logging"
	"livecontent/internal/server/config"
	"livecontent/internal/server/content"
	"livecontent/internal/server/media"

	"github.com/rs/cors"
)

type Server struct {
	config  *config.Config
	logger  logging.Logger
	content *content.Service
	media   *media.Service
	httpSrv *http.Server
}

func NewServer(cfg *config.Config, logger logging.Logger, contentSvc *content.Service, mediaSvc *media.Service) *Server {
	return &Server{
		config:  cfg,
		logger:  logger,
		content: contentSvc,
		media:   mediaSvc,
	}
}

// Handler builds the routing table and wraps it with CORS and panic
// recovery. CORS echoes only exact matches when an allow list is configured;
// with no allow list any requesting origin is echoed back.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/content", s.getContent)
	mux.HandleFunc("PUT /api/content", s.putContent)

	mux.HandleFunc("POST /api/auth", s.login)
	mux.HandleFunc("GET /api/auth", s.session)

	mux.HandleFunc("GET /api/media", s.getMedia)
	mux.HandleFunc("POST /api/media", s.postMedia)

	mux.HandleFunc("POST /api/track", s.track)

	var handler http.Handler = mux
	handler = recovery(s.logger)(handler)

	corsOptions := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization", "If-None-Match"},
		ExposedHeaders:   []string{"ETag"},
		AllowCredentials: true,
	}
	if len(s.config.AllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = s.config.AllowedOrigins
	} else {
		corsOptions.AllowOriginFunc = func(origin string) bool { return true }
	}
	handler = cors.New(corsOptions).Handler(handler)

	return handler
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:         s.config.EndpointAddr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server started", "addr", s.config.EndpointAddr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}
