package student

import "encoding/json"

// Student is a dormitory resident. RoomID is an informational reference and is
// never checked against the room collection.
type Student struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	RoomID *int   `json:"roomId"`
}

func (s *Student) GetID() int   { return s.ID }
func (s *Student) SetID(id int) { s.ID = id }

func (s *Student) Clone() *Student {
	c := *s
	if s.RoomID != nil {
		id := *s.RoomID
		c.RoomID = &id
	}
	return &c
}

// CreateRequest carries the fields accepted on POST /students. RoomID is
// deliberately absent: a new student always starts unassigned.
type CreateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone"`
}

// OptionalInt distinguishes a JSON null from an absent field, so a patch can
// clear a value and not just replace it.
type OptionalInt struct {
	Set   bool
	Value *int
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Patch is the PUT payload. Only supplied fields are applied; the id never is.
// A null roomId clears the room assignment.
type Patch struct {
	Name   *string     `json:"name"`
	Email  *string     `json:"email"`
	Phone  *string     `json:"phone"`
	RoomID OptionalInt `json:"roomId"`
}

// SeedData returns the residents loaded at service start.
func SeedData() []*Student {
	return []*Student{
		{ID: 1, Name: "Alice Smith", Email: "alice@example.com", Phone: "555-0101"},
		{ID: 2, Name: "Bob Jones", Email: "bob@example.com", Phone: "555-0102"},
	}
}
