package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Player: "ann", Score: 100, Elapsed: 20.4, Hits: 3, Seed: 1},
		{Player: "bob", Score: 50, Elapsed: 10.1, Hits: 3, Seed: 2, Difficulty: "hard"},
		{Player: "ann", Score: 200, Elapsed: 40.0, Hits: 3, Seed: 3, Difficulty: "easy"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, r := range top {
		if r.Score != want[i] {
			t.Errorf("run %d score = %d, expected %d", i, r.Score, want[i])
		}
	}

	best := top[0]
	if best.Player != "ann" || best.Elapsed != 40.0 || best.Hits != 3 || best.Seed != 3 || best.Difficulty != "easy" {
		t.Errorf("fields not round-tripped: %+v", best)
	}
	if top[1].Difficulty != "normal" {
		t.Errorf("empty difficulty should be stored as normal, got %q", top[1].Difficulty)
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100, Elapsed: float64(i)})
	}
	// Same score as the best, but survived longer
	store.SaveRun(Run{Player: "long", Score: 500, Elapsed: 99})

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Player != "long" {
		t.Errorf("tie should go to the longer run, got %+v", top[0])
	}
	if top[1].Score != 500 || top[2].Score != 400 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreRecentAndPlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "ann", Score: 10})
	store.SaveRun(Run{Player: "bob", Score: 30})
	store.SaveRun(Run{Player: "ann", Score: 20})

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 20 || recent[1].Score != 30 {
		t.Errorf("RecentRuns() = %+v, expected newest first", recent)
	}

	ann, err := store.PlayerRuns("ann", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(ann) != 2 || ann[0].Score != 20 {
		t.Errorf("PlayerRuns() = %+v", ann)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 300})
	store.SaveRun(Run{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed on empty store: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(Run{Score: 100, Elapsed: 20, Hits: 3})
	store.SaveRun(Run{Score: 300, Elapsed: 60, Hits: 2})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.TotalSeconds != 80 || stats.TotalHits != 5 {
		t.Errorf("totals = %f s, %d hits", stats.TotalSeconds, stats.TotalHits)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 200})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
