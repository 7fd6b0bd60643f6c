package repository

import (
	"context"
	"fmt"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create appends a booking and assigns its id. The overlap check and
	// the insert run in one transaction under a per-room advisory lock,
	// so concurrent writers cannot double-book: the loser gets
	// entity.ErrDateConflict.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, room_id, check_in, check_out, guest_name, email, phone,
		number_of_guests, number_of_children, special_requests, meal_included, total_price, status, created_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize writers per room for the duration of the transaction.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(1, $1::int)`, booking.RoomID); err != nil {
		return fmt.Errorf("acquire room lock %d: %w", booking.RoomID, err)
	}

	// Inclusive-boundary overlap: a checkout on day N conflicts with a
	// check-in on day N.
	var conflicts int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1 AND check_in <= $3 AND check_out >= $2
	`, booking.RoomID, booking.CheckIn, booking.CheckOut).Scan(&conflicts)
	if err != nil {
		return fmt.Errorf("check booking conflicts for room %d: %w", booking.RoomID, err)
	}

	if conflicts > 0 {
		return entity.ErrDateConflict
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (reference, room_id, check_in, check_out, guest_name, email, phone,
			number_of_guests, number_of_children, special_requests, meal_included, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`,
		booking.Reference,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.GuestName,
		booking.Email,
		booking.Phone,
		booking.NumberOfGuests,
		booking.NumberOfChildren,
		booking.SpecialRequests,
		booking.MealIncluded,
		booking.TotalPrice,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.Int64("room_id", booking.RoomID),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return tx.Commit(ctx)
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE room_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find bookings by room ID",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("find bookings by room ID %d: %w", roomID, err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) scanOne(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.GuestName,
		&booking.Email,
		&booking.Phone,
		&booking.NumberOfGuests,
		&booking.NumberOfChildren,
		&booking.SpecialRequests,
		&booking.MealIncluded,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) scanAll(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanOne(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
