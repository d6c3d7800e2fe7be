package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wall-duel/internal/room"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.GetRoom("ABC"); ok {
		t.Fatal("empty store returned a room")
	}

	r := &room.Room{Code: "ABC"}
	s.SaveRoom(r)
	got, ok := s.GetRoom("ABC")
	if !ok || got != r {
		t.Fatalf("GetRoom = %p %v, want %p", got, ok, r)
	}

	s.DeleteRoom("ABC")
	if _, ok := s.GetRoom("ABC"); ok {
		t.Fatal("room survived delete")
	}
}

func TestMemoryStoreConcurrentSaves(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.SaveRoom(&room.Room{Code: fmt.Sprintf("R%02d", i)})
		}(i)
	}
	wg.Wait()

	codes := s.Codes()
	if len(codes) != 20 {
		t.Fatalf("expected 20 rooms, got %d", len(codes))
	}
	if diff := cmp.Diff("R00", codes[0]); diff != "" {
		t.Fatalf("codes not sorted:\n%s", diff)
	}
}
