package booking

import (
	"context"
	"errors"
	"time"

	"github.com/OlDeuS1/Dormitory-Management-System/internal/store"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrMissingFields   = errors.New("studentId, roomId, checkIn and checkOut are required")
	ErrInvalidStatus   = errors.New("invalid status")
)

type Service interface {
	Create(ctx context.Context, req *CreateRequest) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	Update(ctx context.Context, id int, patch *Patch) (*Booking, error)
	// Cancel flips the booking to cancelled in place. The record stays in the
	// collection; cancelling an already-cancelled booking is a no-op success.
	Cancel(ctx context.Context, id int) (*Booking, error)
}

type service struct {
	store *store.Store[*Booking]
}

func NewService(st *store.Store[*Booking]) Service {
	return &service{store: st}
}

func (s *service) Create(_ context.Context, req *CreateRequest) (*Booking, error) {
	if req.StudentID == 0 || req.RoomID == 0 || req.CheckIn == "" || req.CheckOut == "" {
		return nil, ErrMissingFields
	}
	return s.store.Insert(&Booking{
		StudentID: req.StudentID,
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Status:    StatusActive,
		CreatedAt: time.Now().UTC(),
	}), nil
}

func (s *service) List(context.Context) ([]*Booking, error) {
	return s.store.List(), nil
}

func (s *service) GetByID(_ context.Context, id int) (*Booking, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *service) Update(_ context.Context, id int, patch *Patch) (*Booking, error) {
	if patch.Status != nil && *patch.Status != StatusActive && *patch.Status != StatusCancelled {
		return nil, ErrInvalidStatus
	}
	b, ok := s.store.Update(id, func(cur *Booking) {
		if patch.StudentID != nil {
			cur.StudentID = *patch.StudentID
		}
		if patch.RoomID != nil {
			cur.RoomID = *patch.RoomID
		}
		if patch.CheckIn != nil {
			cur.CheckIn = *patch.CheckIn
		}
		if patch.CheckOut != nil {
			cur.CheckOut = *patch.CheckOut
		}
		if patch.Status != nil {
			cur.Status = *patch.Status
		}
	})
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

func (s *service) Cancel(_ context.Context, id int) (*Booking, error) {
	b, ok := s.store.Update(id, func(cur *Booking) {
		cur.Status = StatusCancelled
	})
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
