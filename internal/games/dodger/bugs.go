package dodger

import "github.com/vovakirdan/ferris-dodger/internal/core"

// Bug is a falling enemy. X is fixed at spawn; Y decreases at Speed.
type Bug struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Speed  float64 // Fall speed in units per second, fixed at spawn
}

// Box returns the bug's collision rectangle.
func (b Bug) Box() core.Box {
	return core.NewBox(b.Pos.X, b.Pos.Y, b.Width, b.Height)
}

// BugID is a generation-checked handle into a BugStore.
// The zero value never refers to a live bug.
type BugID struct {
	index uint32
	gen   uint32
}

type bugSlot struct {
	bug   Bug
	gen   uint32
	alive bool
}

// BugStore is a dense arena of bugs. Slots are reused after despawn and
// each reuse bumps the slot generation, so stale handles stop resolving.
type BugStore struct {
	slots []bugSlot
	free  []uint32
	live  int
}

// NewBugStore creates a store with room for capacity bugs before growing.
func NewBugStore(capacity int) *BugStore {
	return &BugStore{
		slots: make([]bugSlot, 0, capacity),
	}
}

// Spawn stores a bug and returns its handle.
func (s *BugStore) Spawn(b Bug) BugID {
	s.live++
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		slot := &s.slots[idx]
		slot.bug = b
		slot.alive = true
		return BugID{index: idx, gen: slot.gen}
	}

	s.slots = append(s.slots, bugSlot{bug: b, gen: 1, alive: true})
	return BugID{index: uint32(len(s.slots) - 1), gen: 1}
}

// Despawn removes the bug behind id. Returns false for stale or unknown handles.
func (s *BugStore) Despawn(id BugID) bool {
	slot := s.slot(id)
	if slot == nil {
		return false
	}
	slot.alive = false
	slot.gen++
	s.free = append(s.free, id.index)
	s.live--
	return true
}

// Get returns a copy of the bug behind id.
func (s *BugStore) Get(id BugID) (Bug, bool) {
	slot := s.slot(id)
	if slot == nil {
		return Bug{}, false
	}
	return slot.bug, true
}

// Each calls fn for every live bug in slot order. fn may despawn the bug it
// is given; it must not spawn.
func (s *BugStore) Each(fn func(id BugID, b *Bug)) {
	for i := range s.slots {
		slot := &s.slots[i]
		if !slot.alive {
			continue
		}
		fn(BugID{index: uint32(i), gen: slot.gen}, &slot.bug)
	}
}

// Len returns the number of live bugs.
func (s *BugStore) Len() int {
	return s.live
}

// Clear despawns every bug. Handles issued before Clear become stale.
func (s *BugStore) Clear() {
	s.free = s.free[:0]
	for i := len(s.slots) - 1; i >= 0; i-- {
		slot := &s.slots[i]
		if slot.alive {
			slot.alive = false
			slot.gen++
		}
		s.free = append(s.free, uint32(i))
	}
	s.live = 0
}

// Snapshot returns copies of all live bugs in slot order.
func (s *BugStore) Snapshot() []Bug {
	out := make([]Bug, 0, s.live)
	s.Each(func(_ BugID, b *Bug) {
		out = append(out, *b)
	})
	return out
}

func (s *BugStore) slot(id BugID) *bugSlot {
	if int(id.index) >= len(s.slots) {
		return nil
	}
	slot := &s.slots[id.index]
	if !slot.alive || slot.gen != id.gen {
		return nil
	}
	return slot
}
