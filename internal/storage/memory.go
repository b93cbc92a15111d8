package storage

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"wanderlust-travel/internal/models"
)

// MemoryStore keeps every collection in process memory. Tours and hotels are
// seeded at construction; bookings and messages accumulate per-kind counters
// guarded by the mutex, so concurrent creates never collide on an id.
type MemoryStore struct {
	mu sync.RWMutex

	tours  map[int]models.Tour
	hotels map[int]models.Hotel

	tourBookings    map[int]models.TourBooking
	hotelBookings   map[int]models.HotelBooking
	contactMessages map[int]models.ContactMessage

	nextTourBookingID    int
	nextHotelBookingID   int
	nextContactMessageID int
}

// NewMemoryStore builds a store pre-populated with the sample tours and
// hotels.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		tours:                make(map[int]models.Tour),
		hotels:               make(map[int]models.Hotel),
		tourBookings:         make(map[int]models.TourBooking),
		hotelBookings:        make(map[int]models.HotelBooking),
		contactMessages:      make(map[int]models.ContactMessage),
		nextTourBookingID:    1,
		nextHotelBookingID:   1,
		nextContactMessageID: 1,
	}
	for _, tour := range seedTours {
		s.tours[tour.ID] = tour
	}
	for _, hotel := range seedHotels {
		s.hotels[hotel.ID] = hotel
	}
	return s
}

func (s *MemoryStore) ListTours() ([]models.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tours := make([]models.Tour, 0, len(s.tours))
	for _, tour := range s.tours {
		tours = append(tours, tour)
	}
	sort.Slice(tours, func(i, j int) bool { return tours[i].ID < tours[j].ID })
	return tours, nil
}

func (s *MemoryStore) GetTour(id int) (*models.Tour, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tour, ok := s.tours[id]
	if !ok {
		return nil, nil
	}
	return &tour, nil
}

func (s *MemoryStore) ListHotels() ([]models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hotels := make([]models.Hotel, 0, len(s.hotels))
	for _, hotel := range s.hotels {
		hotels = append(hotels, hotel)
	}
	sort.Slice(hotels, func(i, j int) bool { return hotels[i].ID < hotels[j].ID })
	return hotels, nil
}

func (s *MemoryStore) GetHotel(id int) (*models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hotel, ok := s.hotels[id]
	if !ok {
		return nil, nil
	}
	return &hotel, nil
}

func (s *MemoryStore) CreateTourBooking(form *models.TourBookingForm) (*models.TourBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := models.TourBooking{
		ID:                  s.nextTourBookingID,
		FullName:            form.FullName,
		Email:               form.Email,
		Phone:               form.Phone,
		NumberOfTravelers:   int(form.NumberOfTravelers),
		PreferredTour:       form.PreferredTour,
		PreferredDate:       form.PreferredDate,
		SpecialRequirements: form.SpecialRequirements,
		CreatedAt:           time.Now().UTC(),
	}
	s.nextTourBookingID++
	s.tourBookings[booking.ID] = booking
	return &booking, nil
}

func (s *MemoryStore) CreateHotelBooking(form *models.HotelBookingForm) (*models.HotelBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := models.HotelBooking{
		ID:              s.nextHotelBookingID,
		GuestName:       form.GuestName,
		Email:           form.Email,
		Phone:           form.Phone,
		HotelSelection:  form.HotelSelection,
		CheckInDate:     form.CheckInDate,
		CheckOutDate:    form.CheckOutDate,
		SpecialRequests: form.SpecialRequests,
		CreatedAt:       time.Now().UTC(),
	}
	s.nextHotelBookingID++
	s.hotelBookings[booking.ID] = booking
	return &booking, nil
}

func (s *MemoryStore) CreateContactMessage(form *models.ContactMessageForm) (*models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := models.ContactMessage{
		ID:             s.nextContactMessageID,
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		Phone:          form.Phone,
		TravelInterest: form.TravelInterest,
		Message:        form.Message,
		Newsletter:     form.Newsletter,
		CreatedAt:      time.Now().UTC(),
	}
	s.nextContactMessageID++
	s.contactMessages[message.ID] = message
	return &message, nil
}

func (s *MemoryStore) ListTourBookings() ([]models.TourBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.TourBooking, 0, len(s.tourBookings))
	for _, booking := range s.tourBookings {
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (s *MemoryStore) ListHotelBookings() ([]models.HotelBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.HotelBooking, 0, len(s.hotelBookings))
	for _, booking := range s.hotelBookings {
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings, nil
}

func (s *MemoryStore) ListContactMessages() ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.ContactMessage, 0, len(s.contactMessages))
	for _, message := range s.contactMessages {
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (s *MemoryStore) Health() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]string{
		"status":           "up",
		"backend":          "memory",
		"tours":            strconv.Itoa(len(s.tours)),
		"hotels":           strconv.Itoa(len(s.hotels)),
		"tour_bookings":    strconv.Itoa(len(s.tourBookings)),
		"hotel_bookings":   strconv.Itoa(len(s.hotelBookings)),
		"contact_messages": strconv.Itoa(len(s.contactMessages)),
	}
}

func (s *MemoryStore) Close() error {
	return nil
}
