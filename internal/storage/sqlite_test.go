package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRound(Round{Session: "a", Score: 5}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	rounds, err := b.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("stores should not share rounds, got %d", len(rounds))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(Round{
		Session: "local",
		Player:  "ferris",
		Score:   7,
		Elapsed: 42500 * time.Millisecond,
		Spawned: 12,
		Scored:  7,
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRound() should return an ID")
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(rounds))
	}

	r := rounds[0]
	if r.ID != id || r.Session != "local" || r.Player != "ferris" {
		t.Errorf("unexpected identity fields: %+v", r)
	}
	if r.Score != 7 || r.Spawned != 12 || r.Scored != 7 {
		t.Errorf("unexpected counters: %+v", r)
	}
	if r.Elapsed != 42500*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 42.5s", r.Elapsed)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreUniqueIDs(t *testing.T) {
	store := openTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := store.SaveRound(Round{Session: "s", Score: i})
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate ID %s", id)
		}
		seen[id] = true
	}
}

func TestStoreTopRoundsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 300, 500, 200} {
		store.SaveRound(Round{Session: "s", Score: score, Spawned: score})
	}

	rounds, err := store.TopRounds(3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(rounds))
	}
	if rounds[0].Score != 500 || rounds[1].Score != 500 || rounds[2].Score != 300 {
		t.Errorf("Rounds not in expected order: %+v", rounds)
	}
	if rounds[0].ID == rounds[1].ID {
		t.Error("tied rounds should be distinct records")
	}

	all, _ := store.TopRounds(0)
	if len(all) != 5 {
		t.Errorf("default limit should return all 5 rounds, got %d", len(all))
	}
}

func TestStoreSessionRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(Round{Session: "alice", Score: 1})
	store.SaveRound(Round{Session: "bob", Score: 9})
	store.SaveRound(Round{Session: "alice", Score: 4})

	rounds, err := store.SessionRounds("alice", 10)
	if err != nil {
		t.Fatalf("SessionRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds for alice, got %d", len(rounds))
	}
	// Most recent first
	if rounds[0].Score != 4 || rounds[1].Score != 1 {
		t.Errorf("unexpected order: %+v", rounds)
	}
}

func TestStoreSessionTopRounds(t *testing.T) {
	store := openTestStore(t)

	// Other sessions outrank every round of "mine".
	store.SaveRound(Round{Session: "other", Score: 50})
	store.SaveRound(Round{Session: "mine", Score: 2})
	store.SaveRound(Round{Session: "other", Score: 40})
	store.SaveRound(Round{Session: "mine", Score: 7})
	store.SaveRound(Round{Session: "mine", Score: 2})

	rounds, err := store.SessionTopRounds("mine", 5)
	if err != nil {
		t.Fatalf("SessionTopRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds for mine, got %d", len(rounds))
	}
	for i, want := range []int{7, 2, 2} {
		if rounds[i].Session != "mine" || rounds[i].Score != want {
			t.Errorf("rounds[%d] = %+v, expected score %d in session mine", i, rounds[i], want)
		}
	}

	limited, _ := store.SessionTopRounds("mine", 1)
	if len(limited) != 1 || limited[0].Score != 7 {
		t.Errorf("limit 1 = %+v, expected the 7-point round", limited)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty store, got %d", best)
	}

	store.SaveRound(Round{Session: "s", Score: 100})
	store.SaveRound(Round{Session: "s", Score: 300})
	store.SaveRound(Round{Session: "t", Score: 200})

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("empty store stats = %+v", st)
	}

	store.SaveRound(Round{Session: "a", Score: 2})
	store.SaveRound(Round{Session: "a", Score: 4})
	store.SaveRound(Round{Session: "b", Score: 6})

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Rounds != 3 || st.HighScore != 6 || st.AvgScore != 4 || st.Sessions != 2 {
		t.Errorf("unexpected stats: %+v", st)
	}
}
