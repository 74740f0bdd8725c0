package store_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlDeuS1/Dormitory-Management-System/internal/store"
)

type record struct {
	ID   int
	Name string
}

func (r *record) GetID() int   { return r.ID }
func (r *record) SetID(id int) { r.ID = id }

func (r *record) Clone() *record {
	c := *r
	return &c
}

func TestInsertAssignsDistinctIncreasingIDs(t *testing.T) {
	s := store.New[*record]()

	var ids []int
	for i := 0; i < 10; i++ {
		rec := s.Insert(&record{Name: "r"})
		ids = append(ids, rec.ID)
	}

	seen := make(map[int]bool)
	for i, id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
		if i > 0 {
			assert.Greater(t, id, ids[i-1])
		}
	}
}

func TestAllocatorStartsAboveSeeds(t *testing.T) {
	s := store.New(&record{ID: 1, Name: "a"}, &record{ID: 7, Name: "b"})

	rec := s.Insert(&record{Name: "c"})
	assert.Equal(t, 8, rec.ID)
	assert.Equal(t, 3, s.Len())
}

func TestIDsNeverReusedAfterRemove(t *testing.T) {
	s := store.New[*record]()
	first := s.Insert(&record{})

	_, ok := s.Remove(first.ID)
	require.True(t, ok)

	next := s.Insert(&record{})
	assert.Greater(t, next.ID, first.ID)
}

func TestUpdatePreservesID(t *testing.T) {
	s := store.New[*record]()
	rec := s.Insert(&record{Name: "before"})

	updated, ok := s.Update(rec.ID, func(r *record) {
		r.Name = "after"
		r.ID = 999
	})
	require.True(t, ok)
	assert.Equal(t, rec.ID, updated.ID)
	assert.Equal(t, "after", updated.Name)

	got, ok := s.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, "after", got.Name)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := store.New[*record]()
	s.Insert(&record{Name: "first"})
	s.Insert(&record{Name: "second"})
	s.Insert(&record{Name: "third"})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "second", list[1].Name)
	assert.Equal(t, "third", list[2].Name)
}

func TestUnknownIDs(t *testing.T) {
	s := store.New[*record]()
	s.Insert(&record{})

	_, ok := s.Get(42)
	assert.False(t, ok)

	_, ok = s.Update(42, func(r *record) {})
	assert.False(t, ok)

	_, ok = s.Remove(42)
	assert.False(t, ok)
}

func TestGetReturnsSnapshot(t *testing.T) {
	s := store.New[*record]()
	rec := s.Insert(&record{Name: "original"})

	got, ok := s.Get(rec.ID)
	require.True(t, ok)
	got.Name = "scribbled"

	again, ok := s.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, "original", again.Name)
}

func TestListReturnsSnapshots(t *testing.T) {
	s := store.New[*record]()
	rec := s.Insert(&record{Name: "original"})

	list := s.List()
	require.Len(t, list, 1)
	list[0].Name = "scribbled"

	got, ok := s.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, "original", got.Name)
}

func TestConcurrentReadsAndUpdates(t *testing.T) {
	s := store.New[*record]()
	rec := s.Insert(&record{Name: "start"})

	// A reader serializing a record must never observe a write in flight;
	// run under -race.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Update(rec.ID, func(r *record) {
				r.Name = fmt.Sprintf("name-%d", i)
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if got, ok := s.Get(rec.ID); ok {
				_, err := json.Marshal(got)
				assert.NoError(t, err)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			for _, got := range s.List() {
				_, err := json.Marshal(got)
				assert.NoError(t, err)
			}
		}
	}()
	wg.Wait()
}

func TestRemoveReturnsRecord(t *testing.T) {
	s := store.New[*record]()
	rec := s.Insert(&record{Name: "gone"})

	removed, ok := s.Remove(rec.ID)
	require.True(t, ok)
	assert.Equal(t, "gone", removed.Name)
	assert.Equal(t, 0, s.Len())
}
