package request

type CreateTourBookingRequest struct {
	TourID         int64  `json:"tourId" validate:"required"`
	TourDate       string `json:"tourDate" validate:"required"`
	GuestName      string `json:"guestName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	NumberOfGuests int    `json:"numberOfGuests" validate:"required,min=1"`
}
