// Package storage holds the entity collections behind the API: tours and
// hotels seeded at startup, plus bookings and contact messages created
// through the submission endpoints. Two interchangeable backends implement
// the same contract, an in-memory store and a PostgreSQL store.
package storage

import "wanderlust-travel/internal/models"

// Service is the storage contract the server is built against.
//
// Lookups return (nil, nil) for an unknown id; absence is a valid result,
// not an error. Create methods assign the id and createdAt themselves —
// callers never supply either. Ids are positive, unique per entity kind,
// and assigned in creation order starting at 1. Listings are returned in
// insertion order.
type Service interface {
	ListTours() ([]models.Tour, error)
	GetTour(id int) (*models.Tour, error)

	ListHotels() ([]models.Hotel, error)
	GetHotel(id int) (*models.Hotel, error)

	CreateTourBooking(form *models.TourBookingForm) (*models.TourBooking, error)
	CreateHotelBooking(form *models.HotelBookingForm) (*models.HotelBooking, error)
	CreateContactMessage(form *models.ContactMessageForm) (*models.ContactMessage, error)

	ListTourBookings() ([]models.TourBooking, error)
	ListHotelBookings() ([]models.HotelBooking, error)
	ListContactMessages() ([]models.ContactMessage, error)

	// Health returns a map of health status information.
	// The keys and values in the map are backend-specific.
	Health() map[string]string

	// Close releases the backend's resources.
	Close() error
}
