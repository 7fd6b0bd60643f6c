package entity

import "time"

// Room is a catalog row. Rooms are seeded into the database and never
// change for the lifetime of the process.
type Room struct {
	ID        int64     `db:"id"`
	Type      string    `db:"type"`
	Price     float64   `db:"price"`
	Capacity  int       `db:"capacity"`
	CreatedAt time.Time `db:"created_at"`
}
