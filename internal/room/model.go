package room

// Room is one dormitory room. Available is not maintained by the booking
// service; the two collections are not cross-linked.
type Room struct {
	ID        int    `json:"id"`
	Number    string `json:"number"`
	Type      string `json:"type"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

func (r *Room) GetID() int   { return r.ID }
func (r *Room) SetID(id int) { r.ID = id }

func (r *Room) Clone() *Room {
	c := *r
	return &c
}

// CreateRequest carries the fields accepted on POST /rooms. Available is
// deliberately absent: a new room always starts available.
type CreateRequest struct {
	Number   string `json:"number" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

// Patch is the PUT payload. Only supplied fields are applied; the id never is.
type Patch struct {
	Number    *string `json:"number"`
	Type      *string `json:"type"`
	Capacity  *int    `json:"capacity"`
	Available *bool   `json:"available"`
}

// SeedData returns the rooms loaded at service start.
func SeedData() []*Room {
	return []*Room{
		{ID: 1, Number: "101", Type: "single", Capacity: 1, Available: true},
		{ID: 2, Number: "102", Type: "double", Capacity: 2, Available: true},
		{ID: 3, Number: "201", Type: "double", Capacity: 2, Available: true},
	}
}
