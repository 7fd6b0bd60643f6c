package request

// CreateBookingRequest is the POST /api/rooms/book body. Required fields
// mirror the admission rules: roomId, dates, guest contact details and
// guest count; the rest is optional metadata with no admission impact.
type CreateBookingRequest struct {
	RoomID           int64  `json:"roomId" validate:"required"`
	CheckIn          string `json:"checkIn" validate:"required"`
	CheckOut         string `json:"checkOut" validate:"required"`
	GuestName        string `json:"guestName" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"required"`
	NumberOfGuests   int    `json:"numberOfGuests" validate:"required,min=1"`
	NumberOfChildren int    `json:"numberOfChildren,omitempty" validate:"omitempty,min=0"`
	SpecialRequests  string `json:"specialRequests,omitempty"`
	MealIncluded     bool   `json:"mealIncluded,omitempty"`
}
