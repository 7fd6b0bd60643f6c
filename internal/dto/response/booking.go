package response

import (
	"time"

	"uncle-nomad/internal/data/entity"
)

type BookingResponse struct {
	ID               int64                `json:"id"`
	Reference        string               `json:"reference"`
	RoomID           int64                `json:"roomId"`
	CheckIn          string               `json:"checkIn"`
	CheckOut         string               `json:"checkOut"`
	Nights           int                  `json:"nights"`
	GuestName        string               `json:"guestName"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	NumberOfGuests   int                  `json:"numberOfGuests"`
	NumberOfChildren int                  `json:"numberOfChildren,omitempty"`
	SpecialRequests  string               `json:"specialRequests,omitempty"`
	MealIncluded     bool                 `json:"mealIncluded"`
	TotalPrice       float64              `json:"totalPrice"`
	Status           entity.BookingStatus `json:"status"`
	CreatedAt        time.Time            `json:"createdAt"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:               booking.ID,
		Reference:        booking.Reference,
		RoomID:           booking.RoomID,
		CheckIn:          booking.CheckIn.Format(entity.DateFormat),
		CheckOut:         booking.CheckOut.Format(entity.DateFormat),
		Nights:           booking.Range().Nights(),
		GuestName:        booking.GuestName,
		Email:            booking.Email,
		Phone:            booking.Phone,
		NumberOfGuests:   booking.NumberOfGuests,
		NumberOfChildren: booking.NumberOfChildren,
		SpecialRequests:  booking.SpecialRequests,
		MealIncluded:     booking.MealIncluded,
		TotalPrice:       booking.TotalPrice,
		Status:           booking.Status,
		CreatedAt:        booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = BookingToResponse(booking)
	}
	return responses
}
