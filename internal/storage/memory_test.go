package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust-travel/internal/models"
)

func tourBookingForm() *models.TourBookingForm {
	return &models.TourBookingForm{
		FullName:          "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "+15551234567",
		NumberOfTravelers: 2,
		PreferredTour:     "Zanzibar Spice & Culture Tour",
		PreferredDate:     "2025-03-01",
	}
}

func TestMemoryStoreSeedData(t *testing.T) {
	s := NewMemoryStore()

	tours, err := s.ListTours()
	require.NoError(t, err)
	assert.Len(t, tours, 4)
	assert.Equal(t, "Zanzibar Spice & Culture Tour", tours[0].Name)

	hotels, err := s.ListHotels()
	require.NoError(t, err)
	assert.Len(t, hotels, 6)
	assert.Equal(t, "Zanzibar Serena Hotel", hotels[0].Name)

	// Seeded ids run 1..n in insertion order.
	for i, tour := range tours {
		assert.Equal(t, i+1, tour.ID)
	}
}

func TestMemoryStoreGetTour(t *testing.T) {
	s := NewMemoryStore()

	tour, err := s.GetTour(1)
	require.NoError(t, err)
	require.NotNil(t, tour)
	assert.Equal(t, "Zanzibar Spice & Culture Tour", tour.Name)

	// Unknown id is an absent result, not an error.
	tour, err = s.GetTour(999)
	require.NoError(t, err)
	assert.Nil(t, tour)
}

func TestMemoryStoreCreateTourBookingRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	booking, err := s.CreateTourBooking(tourBookingForm())
	require.NoError(t, err)

	assert.Equal(t, 1, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Equal(t, "Jane Doe", booking.FullName)
	assert.Equal(t, 2, booking.NumberOfTravelers)

	bookings, err := s.ListTourBookings()
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, *booking, bookings[0])
}

func TestMemoryStoreIDsAreMonotonic(t *testing.T) {
	s := NewMemoryStore()

	for i := 1; i <= 5; i++ {
		booking, err := s.CreateTourBooking(tourBookingForm())
		require.NoError(t, err)
		assert.Equal(t, i, booking.ID)
	}
}

func TestMemoryStoreCountersArePerKind(t *testing.T) {
	s := NewMemoryStore()

	tourBooking, err := s.CreateTourBooking(tourBookingForm())
	require.NoError(t, err)

	hotelBooking, err := s.CreateHotelBooking(&models.HotelBookingForm{
		GuestName:      "John Smith",
		Email:          "john@example.com",
		Phone:          "+441632960961",
		HotelSelection: "Zanzibar Serena Hotel",
		CheckInDate:    "2024-06-10",
		CheckOutDate:   "2024-06-11",
	})
	require.NoError(t, err)

	message, err := s.CreateContactMessage(&models.ContactMessageForm{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Message:   "Hello",
	})
	require.NoError(t, err)

	// Each kind has its own counter starting at 1.
	assert.Equal(t, 1, tourBooking.ID)
	assert.Equal(t, 1, hotelBooking.ID)
	assert.Equal(t, 1, message.ID)
}

func TestMemoryStoreConcurrentCreates(t *testing.T) {
	s := NewMemoryStore()

	const n = 100
	var wg sync.WaitGroup
	ids := make(chan int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			booking, err := s.CreateTourBooking(tourBookingForm())
			assert.NoError(t, err)
			ids <- booking.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	bookings, err := s.ListTourBookings()
	require.NoError(t, err)
	assert.Len(t, bookings, n)
}

func TestMemoryStoreListOrder(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < 3; i++ {
		_, err := s.CreateContactMessage(&models.ContactMessageForm{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@x.com",
			Message:   "Hello",
		})
		require.NoError(t, err)
	}

	messages, err := s.ListContactMessages()
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i, message := range messages {
		assert.Equal(t, i+1, message.ID)
	}
}

func TestMemoryStoreHealth(t *testing.T) {
	s := NewMemoryStore()

	stats := s.Health()
	assert.Equal(t, "up", stats["status"])
	assert.Equal(t, "memory", stats["backend"])
	assert.Equal(t, "4", stats["tours"])
	assert.Equal(t, "6", stats["hotels"])
}
