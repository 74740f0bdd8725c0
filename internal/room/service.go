package room

import (
	"context"
	"errors"

	"github.com/OlDeuS1/Dormitory-Management-System/internal/store"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrMissingFields = errors.New("number, type and capacity are required")
)

type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Room, error)
	// List returns every room, or only those matching the availability
	// selector when one is supplied.
	List(ctx context.Context, available *bool) ([]*Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
	Update(ctx context.Context, id int, patch *Patch) (*Room, error)
	Delete(ctx context.Context, id int) (*Room, error)
}

type service struct {
	store *store.Store[*Room]
}

func NewService(st *store.Store[*Room]) Service {
	return &service{store: st}
}

func (s *service) Create(_ context.Context, req *CreateRequest) (*Room, error) {
	if req.Number == "" || req.Type == "" || req.Capacity < 1 {
		return nil, ErrMissingFields
	}
	return s.store.Insert(&Room{
		Number:    req.Number,
		Type:      req.Type,
		Capacity:  req.Capacity,
		Available: true,
	}), nil
}

func (s *service) List(_ context.Context, available *bool) ([]*Room, error) {
	rooms := s.store.List()
	if available == nil {
		return rooms, nil
	}
	filtered := make([]*Room, 0, len(rooms))
	for _, r := range rooms {
		if r.Available == *available {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *service) GetByID(_ context.Context, id int) (*Room, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func (s *service) Update(_ context.Context, id int, patch *Patch) (*Room, error) {
	r, ok := s.store.Update(id, func(cur *Room) {
		if patch.Number != nil {
			cur.Number = *patch.Number
		}
		if patch.Type != nil {
			cur.Type = *patch.Type
		}
		if patch.Capacity != nil {
			cur.Capacity = *patch.Capacity
		}
		if patch.Available != nil {
			cur.Available = *patch.Available
		}
	})
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func (s *service) Delete(_ context.Context, id int) (*Room, error) {
	r, ok := s.store.Remove(id)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}
