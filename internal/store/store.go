// Package store holds the in-memory record collections backing the domain
// services. Persistence is deliberately deferred: each service owns one store
// for the lifetime of the process and loses it on exit.
package store

import "sync"

// Entity is implemented by every record type kept in a Store. Clone must
// return an independent copy; the store only ever hands out snapshots, so a
// record obtained from any operation can be read or serialized without
// racing a later update to the stored one.
type Entity[T any] interface {
	GetID() int
	SetID(id int)
	Clone() T
}

// Store is an ordered collection of one entity type with a monotonically
// increasing id allocator. Ids are never reused, not even after removal.
// All operations are atomic with respect to each other, and no pointer into
// the collection escapes the store's lock.
type Store[T Entity[T]] struct {
	mu      sync.RWMutex
	records []T
	nextID  int
}

// New builds a store preloaded with the given seed records. The allocator
// starts above the highest seed id so seeds and created records never collide.
func New[T Entity[T]](seed ...T) *Store[T] {
	s := &Store[T]{nextID: 1}
	for _, rec := range seed {
		if rec.GetID() >= s.nextID {
			s.nextID = rec.GetID() + 1
		}
		s.records = append(s.records, rec.Clone())
	}
	return s
}

// List returns snapshots of all records in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

// Get returns a snapshot of the record with the given id.
func (s *Store[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.GetID() == id {
			return rec.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Insert assigns the next id to rec and appends a copy of it. The store keeps
// no reference to rec itself, so the caller's record stays private.
func (s *Store[T]) Insert(rec T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.SetID(s.nextID)
	s.nextID++
	s.records = append(s.records, rec.Clone())
	return rec
}

// Update runs apply against the stored record, then restores the record's id
// so no patch can reassign it. Returns a snapshot of the updated record.
func (s *Store[T]) Update(id int, apply func(T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.GetID() == id {
			apply(rec)
			rec.SetID(id)
			return rec.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the record with the given id and returns it.
func (s *Store[T]) Remove(id int) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.GetID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Len reports the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
