package storage

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust-travel/internal/models"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &PostgresStore{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestPostgresListTours(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM tours ORDER BY id`).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "duration", "price", "rating", "image", "destination"}).
				AddRow(1, "Zanzibar Spice & Culture Tour", "Explore Stone Town", "7 Days", "1899", "4.8", "https://example.com/1.jpg", "Zanzibar").
				AddRow(2, "Kenyan Coast Beach Safari", "Diani Beach relaxation", "10 Days", "2299", "4.9", "https://example.com/2.jpg", "Kenya"),
		)

	tours, err := s.ListTours()
	require.NoError(t, err)
	require.Len(t, tours, 2)
	assert.Equal(t, 1, tours[0].ID)
	assert.Equal(t, "Zanzibar Spice & Culture Tour", tours[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetTourNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM tours WHERE id=\$1`).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	tour, err := s.GetTour(999)
	require.NoError(t, err)
	assert.Nil(t, tour)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetHotelScansAmenities(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM hotels WHERE id=\$1`).
		WithArgs(1).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "name", "description", "price_per_night", "rating", "image", "location", "amenities"}).
				AddRow(1, "Zanzibar Serena Hotel", "Luxury beachfront resort", "289", "4.9", "https://example.com/h1.jpg", "Stone Town, Zanzibar", `{"Ocean View","Spa","Pool"}`),
		)

	hotel, err := s.GetHotel(1)
	require.NoError(t, err)
	require.NotNil(t, hotel)
	assert.Equal(t, []string{"Ocean View", "Spa", "Pool"}, []string(hotel.Amenities))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateTourBooking(t *testing.T) {
	s, mock := newMockStore(t)

	createdAt := time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO tour_bookings`).
		WithArgs("Jane Doe", "jane@x.com", "+15551234567", 2, "Zanzibar Spice & Culture Tour", "2025-03-01", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))

	booking, err := s.CreateTourBooking(&models.TourBookingForm{
		FullName:          "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "+15551234567",
		NumberOfTravelers: 2,
		PreferredTour:     "Zanzibar Spice & Culture Tour",
		PreferredDate:     "2025-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, booking.ID)
	assert.Equal(t, createdAt, booking.CreatedAt)
	assert.Equal(t, "Jane Doe", booking.FullName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateHotelBooking(t *testing.T) {
	s, mock := newMockStore(t)

	createdAt := time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO hotel_bookings`).
		WithArgs("John Smith", "john@example.com", "+441632960961", "Zanzibar Serena Hotel", "2024-06-10", "2024-06-11", "late arrival").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, createdAt))

	booking, err := s.CreateHotelBooking(&models.HotelBookingForm{
		GuestName:       "John Smith",
		Email:           "john@example.com",
		Phone:           "+441632960961",
		HotelSelection:  "Zanzibar Serena Hotel",
		CheckInDate:     "2024-06-10",
		CheckOutDate:    "2024-06-11",
		SpecialRequests: "late arrival",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, booking.ID)
	assert.Equal(t, "2024-06-11", booking.CheckOutDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateContactMessage(t *testing.T) {
	s, mock := newMockStore(t)

	createdAt := time.Date(2025, time.March, 2, 14, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO contact_messages`).
		WithArgs("Jane", "Doe", "jane@x.com", "", "", "Hello", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))

	message, err := s.CreateContactMessage(&models.ContactMessageForm{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@x.com",
		Message:    "Hello",
		Newsletter: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, message.ID)
	assert.True(t, message.Newsletter)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListTourBookingsFault(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM tour_bookings ORDER BY id`).
		WillReturnError(sql.ErrConnDone)

	bookings, err := s.ListTourBookings()
	assert.Error(t, err)
	assert.Nil(t, bookings)

	assert.NoError(t, mock.ExpectationsWereMet())
}
