package models

import (
	"time"

	"github.com/lib/pq"
)

// Tour is a packaged trip offered by the agency. Tours are seeded at startup
// and read-only afterwards.
type Tour struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Duration    string `json:"duration" db:"duration"`
	Price       string `json:"price" db:"price"`
	Rating      string `json:"rating" db:"rating"`
	Image       string `json:"image" db:"image"`
	Destination string `json:"destination" db:"destination"`
}

// Hotel is a partner property. Seeded at startup, read-only afterwards.
type Hotel struct {
	ID            int            `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Description   string         `json:"description" db:"description"`
	PricePerNight string         `json:"pricePerNight" db:"price_per_night"`
	Rating        string         `json:"rating" db:"rating"`
	Image         string         `json:"image" db:"image"`
	Location      string         `json:"location" db:"location"`
	Amenities     pq.StringArray `json:"amenities" db:"amenities"`
}

// TourBooking is a submitted tour booking request. PreferredTour is free text,
// not a reference into the tour collection.
type TourBooking struct {
	ID                  int       `json:"id" db:"id"`
	FullName            string    `json:"fullName" db:"full_name"`
	Email               string    `json:"email" db:"email"`
	Phone               string    `json:"phone" db:"phone"`
	NumberOfTravelers   int       `json:"numberOfTravelers" db:"number_of_travelers"`
	PreferredTour       string    `json:"preferredTour" db:"preferred_tour"`
	PreferredDate       string    `json:"preferredDate" db:"preferred_date"`
	SpecialRequirements string    `json:"specialRequirements" db:"special_requirements"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
}

// HotelBooking is a submitted hotel booking request. HotelSelection is free
// text, not a reference into the hotel collection.
type HotelBooking struct {
	ID              int       `json:"id" db:"id"`
	GuestName       string    `json:"guestName" db:"guest_name"`
	Email           string    `json:"email" db:"email"`
	Phone           string    `json:"phone" db:"phone"`
	HotelSelection  string    `json:"hotelSelection" db:"hotel_selection"`
	CheckInDate     string    `json:"checkInDate" db:"check_in_date"`
	CheckOutDate    string    `json:"checkOutDate" db:"check_out_date"`
	SpecialRequests string    `json:"specialRequests" db:"special_requests"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// ContactMessage is a message sent through the contact form.
type ContactMessage struct {
	ID             int       `json:"id" db:"id"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	TravelInterest string    `json:"travelInterest" db:"travel_interest"`
	Message        string    `json:"message" db:"message"`
	Newsletter     bool      `json:"newsletter" db:"newsletter"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
