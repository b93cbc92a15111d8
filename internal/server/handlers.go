package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wanderlust-travel/internal/models"
	"wanderlust-travel/internal/validation"
)

// healthHandler provides health information from the storage backend.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Health())
}

// ListToursHandler returns all tours, or a single tour when the legacy
// ?id= query form is used.
func (s *Server) ListToursHandler(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		s.getTour(w, raw)
		return
	}

	tours, err := s.store.ListTours()
	if err != nil {
		log.Printf("Error retrieving tours: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch tours")
		return
	}
	writeJSON(w, http.StatusOK, tours)
}

// GetTourHandler returns a single tour by path id.
func (s *Server) GetTourHandler(w http.ResponseWriter, r *http.Request) {
	s.getTour(w, chi.URLParam(r, "id"))
}

func (s *Server) getTour(w http.ResponseWriter, raw string) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, "Tour not found")
		return
	}

	tour, err := s.store.GetTour(id)
	if err != nil {
		log.Printf("Error retrieving tour %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch tour")
		return
	}
	if tour == nil {
		writeError(w, http.StatusNotFound, "Tour not found")
		return
	}
	writeJSON(w, http.StatusOK, tour)
}

// ListHotelsHandler returns all hotels, or a single hotel when the legacy
// ?id= query form is used.
func (s *Server) ListHotelsHandler(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		s.getHotel(w, raw)
		return
	}

	hotels, err := s.store.ListHotels()
	if err != nil {
		log.Printf("Error retrieving hotels: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch hotels")
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

// GetHotelHandler returns a single hotel by path id.
func (s *Server) GetHotelHandler(w http.ResponseWriter, r *http.Request) {
	s.getHotel(w, chi.URLParam(r, "id"))
}

func (s *Server) getHotel(w http.ResponseWriter, raw string) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, "Hotel not found")
		return
	}

	hotel, err := s.store.GetHotel(id)
	if err != nil {
		log.Printf("Error retrieving hotel %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch hotel")
		return
	}
	if hotel == nil {
		writeError(w, http.StatusNotFound, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

// CreateTourBookingHandler validates and stores a tour booking request.
func (s *Server) CreateTourBookingHandler(w http.ResponseWriter, r *http.Request) {
	var form models.TourBookingForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Printf("Invalid tour booking payload: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := s.validator.ValidateTourBooking(&form); len(errs) > 0 {
		writeValidationErrors(w, "Invalid booking data", errs)
		return
	}

	booking, err := s.store.CreateTourBooking(&form)
	if err != nil {
		log.Printf("Error creating tour booking: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create tour booking")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Tour booking created successfully",
		"booking": booking,
	})
}

// CreateHotelBookingHandler validates and stores a hotel booking request.
func (s *Server) CreateHotelBookingHandler(w http.ResponseWriter, r *http.Request) {
	var form models.HotelBookingForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Printf("Invalid hotel booking payload: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := s.validator.ValidateHotelBooking(&form); len(errs) > 0 {
		writeValidationErrors(w, "Invalid booking data", errs)
		return
	}

	booking, err := s.store.CreateHotelBooking(&form)
	if err != nil {
		log.Printf("Error creating hotel booking: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create hotel booking")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Hotel booking created successfully",
		"booking": booking,
	})
}

// CreateContactMessageHandler validates and stores a contact message.
func (s *Server) CreateContactMessageHandler(w http.ResponseWriter, r *http.Request) {
	var form models.ContactMessageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Printf("Invalid contact message payload: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if errs := s.validator.ValidateContactMessage(&form); len(errs) > 0 {
		writeValidationErrors(w, "Invalid message data", errs)
		return
	}

	message, err := s.store.CreateContactMessage(&form)
	if err != nil {
		log.Printf("Error creating contact message: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":        "Message sent successfully",
		"contactMessage": message,
	})
}

// ListTourBookingsHandler retrieves all tour bookings.
func (s *Server) ListTourBookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.store.ListTourBookings()
	if err != nil {
		log.Printf("Error retrieving tour bookings: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch tour bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// ListHotelBookingsHandler retrieves all hotel bookings.
func (s *Server) ListHotelBookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.store.ListHotelBookings()
	if err != nil {
		log.Printf("Error retrieving hotel bookings: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch hotel bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// ListContactMessagesHandler retrieves all contact messages.
func (s *Server) ListContactMessagesHandler(w http.ResponseWriter, r *http.Request) {
	messages, err := s.store.ListContactMessages()
	if err != nil {
		log.Printf("Error retrieving contact messages: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch contact messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeValidationErrors(w http.ResponseWriter, message string, errs []validation.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"message": message,
		"errors":  errs,
	})
}
