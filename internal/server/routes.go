package server

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// RegisterRoutes sets up the router with all endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(s.limiter.middleware)

	r.Get("/health", s.healthHandler)

	// Catalogue endpoints (read-only)
	r.Get("/tours", s.ListToursHandler)
	r.Get("/tours/{id}", s.GetTourHandler)
	r.Get("/hotels", s.ListHotelsHandler)
	r.Get("/hotels/{id}", s.GetHotelHandler)

	// Submission endpoints
	r.Post("/bookings/tours", s.CreateTourBookingHandler)
	r.Post("/bookings/hotels", s.CreateHotelBookingHandler)
	r.Post("/contact", s.CreateContactMessageHandler)

	// Admin listings (unauthenticated, mirrors the reference behavior)
	r.Get("/bookings/tours", s.ListTourBookingsHandler)
	r.Get("/bookings/hotels", s.ListHotelBookingsHandler)
	r.Get("/contact", s.ListContactMessagesHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

// visitorLimiter hands out a token-bucket limiter per client IP.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newVisitorLimiter(rps float64, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *visitorLimiter) getVisitor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.visitors[ip] = limiter
	}
	return limiter
}

func (l *visitorLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.getVisitor(r.RemoteAddr).Allow() {
			writeError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
