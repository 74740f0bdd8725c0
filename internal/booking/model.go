package booking

import "time"

// Booking status values. The only modeled transition is active -> cancelled.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Booking links a student to a room for a date range. StudentID and RoomID are
// opaque references; neither is checked against the other services.
type Booking struct {
	ID        int       `json:"id"`
	StudentID int       `json:"studentId"`
	RoomID    int       `json:"roomId"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Booking) GetID() int   { return b.ID }
func (b *Booking) SetID(id int) { b.ID = id }

func (b *Booking) Clone() *Booking {
	c := *b
	return &c
}

// CreateRequest carries the fields accepted on POST /bookings. Status and
// CreatedAt are deliberately absent: the service stamps both.
type CreateRequest struct {
	StudentID int    `json:"studentId" validate:"required"`
	RoomID    int    `json:"roomId" validate:"required"`
	CheckIn   string `json:"checkIn" validate:"required"`
	CheckOut  string `json:"checkOut" validate:"required"`
}

// Patch is the PUT payload. Only supplied fields are applied; the id and
// creation timestamp never are. Status is validated against the enum.
type Patch struct {
	StudentID *int    `json:"studentId"`
	RoomID    *int    `json:"roomId"`
	CheckIn   *string `json:"checkIn"`
	CheckOut  *string `json:"checkOut"`
	Status    *string `json:"status"`
}
