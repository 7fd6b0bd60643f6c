package response

import (
	"time"

	"uncle-nomad/internal/data/entity"
)

type TourResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	Capacity     int     `json:"capacity"`
	DurationDays int     `json:"durationDays"`
}

type TourBookingResponse struct {
	ID             int64                `json:"id"`
	Reference      string               `json:"reference"`
	TourID         int64                `json:"tourId"`
	TourDate       string               `json:"tourDate"`
	GuestName      string               `json:"guestName"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	NumberOfGuests int                  `json:"numberOfGuests"`
	TotalPrice     float64              `json:"totalPrice"`
	Status         entity.BookingStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func TourToResponse(tour *entity.Tour) TourResponse {
	return TourResponse{
		ID:           tour.ID,
		Name:         tour.Name,
		Description:  tour.Description,
		Price:        tour.Price,
		Capacity:     tour.Capacity,
		DurationDays: tour.DurationDays,
	}
}

func ToursToResponse(tours []*entity.Tour) []TourResponse {
	responses := make([]TourResponse, len(tours))
	for i, tour := range tours {
		responses[i] = TourToResponse(tour)
	}
	return responses
}

func TourBookingToResponse(booking *entity.TourBooking) TourBookingResponse {
	return TourBookingResponse{
		ID:             booking.ID,
		Reference:      booking.Reference,
		TourID:         booking.TourID,
		TourDate:       booking.TourDate.Format(entity.DateFormat),
		GuestName:      booking.GuestName,
		Email:          booking.Email,
		Phone:          booking.Phone,
		NumberOfGuests: booking.NumberOfGuests,
		TotalPrice:     booking.TotalPrice,
		Status:         booking.Status,
		CreatedAt:      booking.CreatedAt,
	}
}
