package entity

import "time"

// Tour is a curated day-tour offered by the property.
type Tour struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Price        float64   `db:"price"`
	Capacity     int       `db:"capacity"`
	DurationDays int       `db:"duration_days"`
	CreatedAt    time.Time `db:"created_at"`
}

// TourBooking reserves seats on a tour for a given departure date.
// Admission is capacity based: the sum of confirmed guests for the
// (tour, date) pair must stay within the tour's capacity.
type TourBooking struct {
	ID             int64         `db:"id"`
	Reference      string        `db:"reference"`
	TourID         int64         `db:"tour_id"`
	TourDate       time.Time     `db:"tour_date"`
	GuestName      string        `db:"guest_name"`
	Email          string        `db:"email"`
	Phone          string        `db:"phone"`
	NumberOfGuests int           `db:"number_of_guests"`
	TotalPrice     float64       `db:"total_price"`
	Status         BookingStatus `db:"status"`
	CreatedAt      time.Time     `db:"created_at"`
}
