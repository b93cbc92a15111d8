package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"wanderlust-travel/internal/config"
	"wanderlust-travel/internal/models"
)

// PostgresStore persists the collections in PostgreSQL. Id assignment and
// createdAt stamping are delegated to serial columns and column defaults,
// so the monotonic-id guarantee holds across processes.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore connects, runs pending migrations, and returns the store.
func NewPostgresStore(cfg *config.Config) (*PostgresStore, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		cfg.DBUsername, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBSchema,
	)

	db, err := sqlx.Connect("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	m, err := migrate.New("file://"+cfg.MigrationsPath, connStr)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) ListTours() ([]models.Tour, error) {
	tours := []models.Tour{}
	err := s.db.Select(&tours, `SELECT * FROM tours ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return tours, nil
}

func (s *PostgresStore) GetTour(id int) (*models.Tour, error) {
	var tour models.Tour
	err := s.db.Get(&tour, `SELECT * FROM tours WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tour %d: %w", id, err)
	}
	return &tour, nil
}

func (s *PostgresStore) ListHotels() ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	err := s.db.Select(&hotels, `SELECT * FROM hotels ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

func (s *PostgresStore) GetHotel(id int) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.db.Get(&hotel, `SELECT * FROM hotels WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get hotel %d: %w", id, err)
	}
	return &hotel, nil
}

func (s *PostgresStore) CreateTourBooking(form *models.TourBookingForm) (*models.TourBooking, error) {
	booking := models.TourBooking{
		FullName:            form.FullName,
		Email:               form.Email,
		Phone:               form.Phone,
		NumberOfTravelers:   int(form.NumberOfTravelers),
		PreferredTour:       form.PreferredTour,
		PreferredDate:       form.PreferredDate,
		SpecialRequirements: form.SpecialRequirements,
	}
	query := `
		INSERT INTO tour_bookings (full_name, email, phone, number_of_travelers, preferred_tour, preferred_date, special_requirements)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := s.db.QueryRow(
		query,
		booking.FullName,
		booking.Email,
		booking.Phone,
		booking.NumberOfTravelers,
		booking.PreferredTour,
		booking.PreferredDate,
		booking.SpecialRequirements,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create tour booking: %w", err)
	}
	return &booking, nil
}

func (s *PostgresStore) CreateHotelBooking(form *models.HotelBookingForm) (*models.HotelBooking, error) {
	booking := models.HotelBooking{
		GuestName:       form.GuestName,
		Email:           form.Email,
		Phone:           form.Phone,
		HotelSelection:  form.HotelSelection,
		CheckInDate:     form.CheckInDate,
		CheckOutDate:    form.CheckOutDate,
		SpecialRequests: form.SpecialRequests,
	}
	query := `
		INSERT INTO hotel_bookings (guest_name, email, phone, hotel_selection, check_in_date, check_out_date, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := s.db.QueryRow(
		query,
		booking.GuestName,
		booking.Email,
		booking.Phone,
		booking.HotelSelection,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.SpecialRequests,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create hotel booking: %w", err)
	}
	return &booking, nil
}

func (s *PostgresStore) CreateContactMessage(form *models.ContactMessageForm) (*models.ContactMessage, error) {
	message := models.ContactMessage{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		Phone:          form.Phone,
		TravelInterest: form.TravelInterest,
		Message:        form.Message,
		Newsletter:     form.Newsletter,
	}
	query := `
		INSERT INTO contact_messages (first_name, last_name, email, phone, travel_interest, message, newsletter)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := s.db.QueryRow(
		query,
		message.FirstName,
		message.LastName,
		message.Email,
		message.Phone,
		message.TravelInterest,
		message.Message,
		message.Newsletter,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return &message, nil
}

func (s *PostgresStore) ListTourBookings() ([]models.TourBooking, error) {
	bookings := []models.TourBooking{}
	err := s.db.Select(&bookings, `SELECT * FROM tour_bookings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tour bookings: %w", err)
	}
	return bookings, nil
}

func (s *PostgresStore) ListHotelBookings() ([]models.HotelBooking, error) {
	bookings := []models.HotelBooking{}
	err := s.db.Select(&bookings, `SELECT * FROM hotel_bookings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list hotel bookings: %w", err)
	}
	return bookings, nil
}

func (s *PostgresStore) ListContactMessages() ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	err := s.db.Select(&messages, `SELECT * FROM contact_messages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// Health pings the database and reports connection pool statistics.
func (s *PostgresStore) Health() map[string]string {
	stats := make(map[string]string)

	if err := s.db.Ping(); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["backend"] = "postgres"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	return stats
}

func (s *PostgresStore) Close() error {
	log.Println("Disconnected from database")
	return s.db.Close()
}
