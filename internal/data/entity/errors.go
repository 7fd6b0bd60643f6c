package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Admission errors. All of these mean "booking rejected", not a crash;
// handlers map them to 400/404 responses.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrTourNotFound    = errors.New("tour not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidRange    = errors.New("check-out date must be after check-in date")
	ErrDateConflict    = errors.New("room is already booked for the selected dates")
)

// MissingFieldsError reports an incomplete booking request, naming the
// offending fields.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// CapacityExceededError carries the room's (or tour's) capacity so the
// client knows the limit it ran into.
type CapacityExceededError struct {
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("number of guests exceeds capacity of %d", e.Capacity)
}
