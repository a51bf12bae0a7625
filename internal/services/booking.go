package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vracar/tripfolio/internal/database"
	"github.com/vracar/tripfolio/internal/models"
)

type BookingService struct {
	db *database.DB
}

func NewBookingService(db *database.DB) *BookingService {
	return &BookingService{db: db}
}

func (s *BookingService) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	var created models.Booking
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO bookings (trip_id, title, kind, booked_for, reference_code, url, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, trip_id, title, kind, booked_for, reference_code, url, notes, created_at
	`, booking.TripID, booking.Title, booking.Kind, booking.BookedFor,
		booking.ReferenceCode, booking.URL, booking.Notes).Scan(
		&created.ID, &created.TripID, &created.Title, &created.Kind, &created.BookedFor,
		&created.ReferenceCode, &created.URL, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *BookingService) List(ctx context.Context, tripID uuid.UUID) ([]models.Booking, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, trip_id, title, kind, booked_for, reference_code, url, notes, created_at
		FROM bookings WHERE trip_id = $1
		ORDER BY booked_for NULLS LAST, created_at
	`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(
			&booking.ID, &booking.TripID, &booking.Title, &booking.Kind, &booking.BookedFor,
			&booking.ReferenceCode, &booking.URL, &booking.Notes, &booking.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (s *BookingService) Update(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	var updated models.Booking
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE bookings
		SET title = $1, kind = $2, booked_for = $3, reference_code = $4, url = $5, notes = $6
		WHERE id = $7 AND trip_id = $8
		RETURNING id, trip_id, title, kind, booked_for, reference_code, url, notes, created_at
	`, booking.Title, booking.Kind, booking.BookedFor, booking.ReferenceCode,
		booking.URL, booking.Notes, booking.ID, booking.TripID).Scan(
		&updated.ID, &updated.TripID, &updated.Title, &updated.Kind, &updated.BookedFor,
		&updated.ReferenceCode, &updated.URL, &updated.Notes, &updated.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *BookingService) Delete(ctx context.Context, tripID, bookingID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM bookings WHERE id = $1 AND trip_id = $2
	`, bookingID, tripID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}
