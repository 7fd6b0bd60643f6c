package usecase

import (
	"context"
	"sync"
	"time"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/internal/data/repository"

	"go.uber.org/zap"
)

// In-memory repositories for service tests.

type memRoomRepo struct {
	rooms []*entity.Room
}

func (m *memRoomRepo) FindAll(ctx context.Context) ([]*entity.Room, error) {
	return m.rooms, nil
}

func (m *memRoomRepo) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	for _, room := range m.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, nil
}

// memBookingRepo appends blindly, without re-checking overlaps: it
// relies entirely on the service's per-room serialization, which is
// exactly what the concurrency tests need to demonstrate.
type memBookingRepo struct {
	mu        sync.Mutex
	bookings  []*entity.Booking
	nextID    int64
	findDelay time.Duration
}

func (m *memBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	booking.ID = m.nextID
	copied := *booking
	m.bookings = append(m.bookings, &copied)
	return nil
}

func (m *memBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memBookingRepo) FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Booking, error) {
	if m.findDelay > 0 {
		// widen the check-then-act window
		time.Sleep(m.findDelay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Booking
	for _, b := range m.bookings {
		if b.RoomID == roomID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if offset >= len(m.bookings) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.bookings) {
		end = len(m.bookings)
	}
	var out []*entity.Booking
	for _, b := range m.bookings[offset:end] {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memBookingRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.bookings)), nil
}

type memTourRepo struct {
	tours []*entity.Tour
}

func (m *memTourRepo) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	return m.tours, nil
}

func (m *memTourRepo) FindByID(ctx context.Context, id int64) (*entity.Tour, error) {
	for _, tour := range m.tours {
		if tour.ID == id {
			return tour, nil
		}
	}
	return nil, nil
}

type memTourBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.TourBooking
	nextID   int64
}

func (m *memTourBookingRepo) Create(ctx context.Context, booking *entity.TourBooking, capacity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	taken := 0
	for _, b := range m.bookings {
		if b.TourID == booking.TourID && b.TourDate.Equal(booking.TourDate) {
			taken += b.NumberOfGuests
		}
	}
	if taken+booking.NumberOfGuests > capacity {
		return &entity.CapacityExceededError{Capacity: capacity}
	}

	m.nextID++
	booking.ID = m.nextID
	copied := *booking
	m.bookings = append(m.bookings, &copied)
	return nil
}

func (m *memTourBookingRepo) FindByID(ctx context.Context, id int64) (*entity.TourBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memTourBookingRepo) GuestsForDate(ctx context.Context, tourID int64, date time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	taken := 0
	for _, b := range m.bookings {
		if b.TourID == tourID && b.TourDate.Equal(date) {
			taken += b.NumberOfGuests
		}
	}
	return taken, nil
}

func newTestRepo(rooms []*entity.Room, tours []*entity.Tour) (*repository.Repository, *memBookingRepo) {
	bookings := &memBookingRepo{}
	return &repository.Repository{
		Room:        &memRoomRepo{rooms: rooms},
		Booking:     bookings,
		Tour:        &memTourRepo{tours: tours},
		TourBooking: &memTourBookingRepo{},
	}, bookings
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
