package entity

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Booking is a confirmed ledger entry. Bookings are append-only: there
// is no edit or cancellation flow.
type Booking struct {
	ID               int64         `db:"id"`
	Reference        string        `db:"reference"`
	RoomID           int64         `db:"room_id"`
	CheckIn          time.Time     `db:"check_in"`
	CheckOut         time.Time     `db:"check_out"`
	GuestName        string        `db:"guest_name"`
	Email            string        `db:"email"`
	Phone            string        `db:"phone"`
	NumberOfGuests   int           `db:"number_of_guests"`
	NumberOfChildren int           `db:"number_of_children"`
	SpecialRequests  string        `db:"special_requests"`
	MealIncluded     bool          `db:"meal_included"`
	TotalPrice       float64       `db:"total_price"`
	Status           BookingStatus `db:"status"`
	CreatedAt        time.Time     `db:"created_at"`
}

// Range returns the booking's stay interval.
func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}
