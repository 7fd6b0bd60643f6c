package response

import "uncle-nomad/internal/data/entity"

type RoomResponse struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:       room.ID,
		Type:     room.Type,
		Price:    room.Price,
		Capacity: room.Capacity,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	responses := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = RoomToResponse(room)
	}
	return responses
}
