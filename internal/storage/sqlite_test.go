package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Preset: "beginner", Width: 9, Height: 9, Mines: 10, Won: true, Duration: 42 * time.Second},
		{Preset: "beginner", Width: 9, Height: 9, Mines: 10, Won: false, Duration: 3 * time.Second},
		{Preset: "beginner", Width: 9, Height: 9, Mines: 10, Won: true, Duration: 17500 * time.Millisecond},
		{Preset: "expert", Width: 30, Height: 16, Mines: 99, Won: true, Duration: 5 * time.Minute},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.BestTimes("beginner", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 wins, got %d", len(best))
	}
	if best[0].Duration != 17500*time.Millisecond {
		t.Errorf("Expected fastest 17.5s, got %v", best[0].Duration)
	}
	if best[1].Duration != 42*time.Second {
		t.Errorf("Expected second 42s, got %v", best[1].Duration)
	}
	if !best[0].Won || best[0].Width != 9 || best[0].Mines != 10 {
		t.Errorf("Unexpected row %+v", best[0])
	}

	limited, err := store.BestTimes("beginner", 1)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 result with limit, got %d", len(limited))
	}

	none, err := store.BestTimes("intermediate", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no results, got %d", len(none))
	}
}

func TestStorePresetStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.PresetStats("beginner")
	if err != nil {
		t.Fatalf("PresetStats() failed: %v", err)
	}
	if st.Played != 0 || st.BestTime != 0 || st.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", st)
	}

	for _, won := range []bool{true, false, false, true} {
		d := 30 * time.Second
		if won {
			d = 20 * time.Second
		}
		if _, err := store.SaveResult(Result{Preset: "beginner", Width: 9, Height: 9, Mines: 10, Won: won, Duration: d}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	st, err = store.PresetStats("beginner")
	if err != nil {
		t.Fatalf("PresetStats() failed: %v", err)
	}
	if st.Played != 4 || st.Won != 2 {
		t.Errorf("Expected 4 played / 2 won, got %d / %d", st.Played, st.Won)
	}
	if st.BestTime != 20*time.Second {
		t.Errorf("Expected best 20s, got %v", st.BestTime)
	}
	if st.WinRate() != 0.5 {
		t.Errorf("Expected win rate 0.5, got %v", st.WinRate())
	}
}

func TestStoreAllStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Preset: "beginner", Width: 9, Height: 9, Mines: 10, Won: false, Duration: time.Second})
	store.SaveResult(Result{Preset: "expert", Width: 30, Height: 16, Mines: 99, Won: true, Duration: time.Minute})

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 presets, got %d", len(all))
	}
	if all["beginner"].BestTime != 0 {
		t.Errorf("Expected no best time for a preset never won, got %v", all["beginner"].BestTime)
	}
	if all["expert"].BestTime != time.Minute {
		t.Errorf("Expected expert best 1m, got %v", all["expert"].BestTime)
	}

	if err := store.ClearResults("beginner"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	st, err := store.PresetStats("beginner")
	if err != nil {
		t.Fatalf("PresetStats() failed: %v", err)
	}
	if st.Played != 0 {
		t.Errorf("Expected 0 played after clear, got %d", st.Played)
	}
}
