package repository

import (
	"context"
	"fmt"
	"time"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourBookingRepository interface {
	// Create books seats on a tour. The remaining-capacity check and the
	// insert run in one transaction under a per-tour advisory lock; the
	// capacity parameter is the tour's seat limit for a single date.
	Create(ctx context.Context, booking *entity.TourBooking, capacity int) error
	FindByID(ctx context.Context, id int64) (*entity.TourBooking, error)
	GuestsForDate(ctx context.Context, tourID int64, date time.Time) (int, error)
}

type tourBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourBookingRepository(db database.PgxIface, log *zap.Logger) TourBookingRepository {
	return &tourBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour_booking")),
	}
}

const tourBookingColumns = `id, reference, tour_id, tour_date, guest_name, email, phone,
		number_of_guests, total_price, status, created_at`

func (r *tourBookingRepository) Create(ctx context.Context, booking *entity.TourBooking, capacity int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tour booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(2, $1::int)`, booking.TourID); err != nil {
		return fmt.Errorf("acquire tour lock %d: %w", booking.TourID, err)
	}

	var taken int
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(number_of_guests), 0)
		FROM tour_bookings
		WHERE tour_id = $1 AND tour_date = $2
	`, booking.TourID, booking.TourDate).Scan(&taken)
	if err != nil {
		return fmt.Errorf("count guests for tour %d: %w", booking.TourID, err)
	}

	if taken+booking.NumberOfGuests > capacity {
		return &entity.CapacityExceededError{Capacity: capacity}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO tour_bookings (reference, tour_id, tour_date, guest_name, email, phone,
			number_of_guests, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`,
		booking.Reference,
		booking.TourID,
		booking.TourDate,
		booking.GuestName,
		booking.Email,
		booking.Phone,
		booking.NumberOfGuests,
		booking.TotalPrice,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create tour booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.Int64("tour_id", booking.TourID),
		)
		return fmt.Errorf("create tour booking %s: %w", booking.Reference, err)
	}

	return tx.Commit(ctx)
}

func (r *tourBookingRepository) FindByID(ctx context.Context, id int64) (*entity.TourBooking, error) {
	query := `SELECT ` + tourBookingColumns + ` FROM tour_bookings WHERE id = $1`

	var booking entity.TourBooking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.TourID,
		&booking.TourDate,
		&booking.GuestName,
		&booking.Email,
		&booking.Phone,
		&booking.NumberOfGuests,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour booking by ID",
			zap.Error(err),
			zap.Int64("tour_booking_id", id),
		)
		return nil, fmt.Errorf("find tour booking by ID %d: %w", id, err)
	}

	return &booking, nil
}

func (r *tourBookingRepository) GuestsForDate(ctx context.Context, tourID int64, date time.Time) (int, error) {
	var taken int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(number_of_guests), 0)
		FROM tour_bookings
		WHERE tour_id = $1 AND tour_date = $2
	`, tourID, date).Scan(&taken)
	if err != nil {
		r.log.Error("Failed to count guests for tour date",
			zap.Error(err),
			zap.Int64("tour_id", tourID),
			zap.Time("tour_date", date),
		)
		return 0, fmt.Errorf("count guests for tour %d on %s: %w", tourID, date.Format(entity.DateFormat), err)
	}

	return taken, nil
}
