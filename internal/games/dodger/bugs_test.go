package dodger

import (
	"testing"

	"github.com/vovakirdan/ferris-dodger/internal/core"
)

func testBug(x, y float64) Bug {
	return Bug{Pos: core.Vec2{X: x, Y: y}, Width: 48, Height: 32, Speed: 40}
}

func TestBugStoreSpawnGet(t *testing.T) {
	s := NewBugStore(4)

	a := s.Spawn(testBug(1, 0))
	b := s.Spawn(testBug(2, 0))

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}
	if got, ok := s.Get(a); !ok || got.Pos.X != 1 {
		t.Errorf("Get(a) = %+v, %v", got, ok)
	}
	if got, ok := s.Get(b); !ok || got.Pos.X != 2 {
		t.Errorf("Get(b) = %+v, %v", got, ok)
	}
	if _, ok := s.Get(BugID{}); ok {
		t.Error("zero BugID must not resolve")
	}
}

func TestBugStoreStaleHandles(t *testing.T) {
	s := NewBugStore(4)

	old := s.Spawn(testBug(1, 0))
	if !s.Despawn(old) {
		t.Fatal("first despawn should succeed")
	}
	if s.Despawn(old) {
		t.Error("second despawn of the same handle should fail")
	}
	if _, ok := s.Get(old); ok {
		t.Error("despawned handle must not resolve")
	}

	reused := s.Spawn(testBug(5, 0))
	if reused.index != old.index {
		t.Errorf("slot should be reused: index %d, expected %d", reused.index, old.index)
	}
	if reused.gen == old.gen {
		t.Error("reused slot must carry a new generation")
	}
	if _, ok := s.Get(old); ok {
		t.Error("stale handle must not resolve to the new bug")
	}
	if got, ok := s.Get(reused); !ok || got.Pos.X != 5 {
		t.Errorf("Get(reused) = %+v, %v", got, ok)
	}
}

func TestBugStoreClear(t *testing.T) {
	s := NewBugStore(4)

	ids := []BugID{s.Spawn(testBug(1, 0)), s.Spawn(testBug(2, 0)), s.Spawn(testBug(3, 0))}
	s.Despawn(ids[1])
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", s.Len())
	}
	for i, id := range ids {
		if _, ok := s.Get(id); ok {
			t.Errorf("handle %d should be stale after Clear", i)
		}
	}
	if len(s.Snapshot()) != 0 {
		t.Error("Snapshot after Clear should be empty")
	}

	first := s.Spawn(testBug(9, 0))
	if first.index != 0 {
		t.Errorf("first spawn after Clear should reuse slot 0, got %d", first.index)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestBugStoreEachAllowsDespawn(t *testing.T) {
	s := NewBugStore(4)
	for i := 0; i < 5; i++ {
		s.Spawn(testBug(float64(i), 0))
	}

	visited := 0
	s.Each(func(id BugID, b *Bug) {
		visited++
		if int(b.Pos.X)%2 == 0 {
			s.Despawn(id)
		}
	})

	if visited != 5 {
		t.Errorf("visited %d bugs, expected 5", visited)
	}
	snap := s.Snapshot()
	if len(snap) != 2 || snap[0].Pos.X != 1 || snap[1].Pos.X != 3 {
		t.Errorf("unexpected survivors: %+v", snap)
	}
}

func TestBugStoreEachMutates(t *testing.T) {
	s := NewBugStore(1)
	id := s.Spawn(testBug(0, 100))

	s.Each(func(_ BugID, b *Bug) {
		b.Pos.Y -= 10
	})

	if got, _ := s.Get(id); got.Pos.Y != 90 {
		t.Errorf("Each should mutate in place, y = %v", got.Pos.Y)
	}
}
