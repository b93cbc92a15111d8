package server

import (
	"fmt"
	"net/http"
	"time"

	"wanderlust-travel/internal/config"
	"wanderlust-travel/internal/storage"
	"wanderlust-travel/internal/validation"
)

// Server wires the storage backend and the shared form validator into the
// HTTP handlers. The store is injected at startup; the server owns no state
// of its own beyond the per-IP rate limiter.
type Server struct {
	store     storage.Service
	validator *validation.Validator
	limiter   *visitorLimiter
}

// NewServer builds the HTTP server around the given store.
func NewServer(cfg *config.Config, store storage.Service) *http.Server {
	s := &Server{
		store:     store,
		validator: validation.New(),
		limiter:   newVisitorLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
