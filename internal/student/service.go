package student

import (
	"context"
	"errors"

	"github.com/OlDeuS1/Dormitory-Management-System/internal/store"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrMissingFields   = errors.New("name and email are required")
)

type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
	GetByID(ctx context.Context, id int) (*Student, error)
	Update(ctx context.Context, id int, patch *Patch) (*Student, error)
	Delete(ctx context.Context, id int) (*Student, error)
}

type service struct {
	store *store.Store[*Student]
}

func NewService(st *store.Store[*Student]) Service {
	return &service{store: st}
}

func (s *service) Create(_ context.Context, req *CreateRequest) (*Student, error) {
	if req.Name == "" || req.Email == "" {
		return nil, ErrMissingFields
	}
	return s.store.Insert(&Student{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}), nil
}

func (s *service) List(context.Context) ([]*Student, error) {
	return s.store.List(), nil
}

func (s *service) GetByID(_ context.Context, id int) (*Student, error) {
	st, ok := s.store.Get(id)
	if !ok {
		return nil, ErrStudentNotFound
	}
	return st, nil
}

func (s *service) Update(_ context.Context, id int, patch *Patch) (*Student, error) {
	st, ok := s.store.Update(id, func(cur *Student) {
		if patch.Name != nil {
			cur.Name = *patch.Name
		}
		if patch.Email != nil {
			cur.Email = *patch.Email
		}
		if patch.Phone != nil {
			cur.Phone = *patch.Phone
		}
		if patch.RoomID.Set {
			cur.RoomID = patch.RoomID.Value
		}
	})
	if !ok {
		return nil, ErrStudentNotFound
	}
	return st, nil
}

func (s *service) Delete(_ context.Context, id int) (*Student, error) {
	st, ok := s.store.Remove(id)
	if !ok {
		return nil, ErrStudentNotFound
	}
	return st, nil
}
