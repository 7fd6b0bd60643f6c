package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type mockRoomService struct {
	listRoomsFunc      func(ctx context.Context) ([]response.RoomResponse, error)
	availableRoomsFunc func(ctx context.Context, checkIn, checkOut string) ([]response.RoomResponse, error)
}

func (m *mockRoomService) ListRooms(ctx context.Context) ([]response.RoomResponse, error) {
	if m.listRoomsFunc != nil {
		return m.listRoomsFunc(ctx)
	}
	return []response.RoomResponse{}, nil
}

func (m *mockRoomService) AvailableRooms(ctx context.Context, checkIn, checkOut string) ([]response.RoomResponse, error) {
	if m.availableRoomsFunc != nil {
		return m.availableRoomsFunc(ctx, checkIn, checkOut)
	}
	return []response.RoomResponse{}, nil
}

func newRoomRouter(svc *mockRoomService) *chi.Mux {
	h := NewRoomHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/rooms", h.ListRooms)
	r.Get("/api/rooms/availability", h.Availability)
	return r
}

func TestAvailability_OK(t *testing.T) {
	svc := &mockRoomService{
		availableRoomsFunc: func(ctx context.Context, checkIn, checkOut string) ([]response.RoomResponse, error) {
			if checkIn != "2024-06-01" || checkOut != "2024-06-03" {
				t.Errorf("params = %s..%s", checkIn, checkOut)
			}
			return []response.RoomResponse{{ID: 1, Type: "Deluxe Room", Price: 2999, Capacity: 2}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/availability?checkIn=2024-06-01&checkOut=2024-06-03", nil)
	rec := httptest.NewRecorder()

	newRoomRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAvailability_MissingParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no params", "/api/rooms/availability"},
		{"missing checkOut", "/api/rooms/availability?checkIn=2024-06-01"},
		{"missing checkIn", "/api/rooms/availability?checkOut=2024-06-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			newRoomRouter(&mockRoomService{}).ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAvailability_InvalidRange(t *testing.T) {
	svc := &mockRoomService{
		availableRoomsFunc: func(ctx context.Context, checkIn, checkOut string) ([]response.RoomResponse, error) {
			return nil, entity.ErrInvalidRange
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/rooms/availability?checkIn=2024-06-03&checkOut=2024-06-01", nil)
	rec := httptest.NewRecorder()

	newRoomRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListRooms_OK(t *testing.T) {
	svc := &mockRoomService{
		listRoomsFunc: func(ctx context.Context) ([]response.RoomResponse, error) {
			return []response.RoomResponse{
				{ID: 1, Type: "Deluxe Room", Price: 2999, Capacity: 2},
				{ID: 2, Type: "Family Suite", Price: 4999, Capacity: 4},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	rec := httptest.NewRecorder()

	newRoomRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
