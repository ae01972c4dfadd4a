package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieveEpisodes(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	episodes := []Episode{
		{LevelName: "level1", Preset: "classic", Steps: 40, GemsCollected: 3, Solved: true, AgentAlive: true, FinalHash: 111},
		{LevelName: "level1", Preset: "classic", Steps: 12, GemsCollected: 0, Solved: false, AgentAlive: false, FinalHash: 222},
		{LevelName: "level2", Preset: "chaos", Steps: 8, GemsCollected: 1, Solved: false, AgentAlive: true, FinalHash: 333},
	}
	for _, ep := range episodes {
		if _, err := store.SaveEpisode(ep); err != nil {
			t.Fatalf("SaveEpisode() failed: %v", err)
		}
	}

	got, err := store.RecentEpisodes("level1", 10)
	if err != nil {
		t.Fatalf("RecentEpisodes() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 episodes for level1, got %d", len(got))
	}

	got2, err := store.RecentEpisodes("level2", 10)
	if err != nil {
		t.Fatalf("RecentEpisodes() failed: %v", err)
	}
	if len(got2) != 1 {
		t.Errorf("Expected 1 episode for level2, got %d", len(got2))
	}
	if got2[0].FinalHash != 333 {
		t.Errorf("Expected final hash 333, got %d", got2[0].FinalHash)
	}
}

func TestStoreRecentEpisodesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveEpisode(Episode{LevelName: "test", Preset: "classic", Steps: i, FinalHash: uint64(i)})
	}

	got, err := store.RecentEpisodes("test", 3)
	if err != nil {
		t.Fatalf("RecentEpisodes() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 episodes with limit, got %d", len(got))
	}
}

func TestStoreGetLevelStatsSolvedCount(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	stats, err := store.GetLevelStats("level1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.SolvedCount != 0 {
		t.Errorf("Expected 0 solved episodes for empty level, got %d", stats.SolvedCount)
	}

	store.SaveEpisode(Episode{LevelName: "level1", Preset: "classic", Solved: true})
	store.SaveEpisode(Episode{LevelName: "level1", Preset: "classic", Solved: false})
	store.SaveEpisode(Episode{LevelName: "level1", Preset: "classic", Solved: true})

	stats, err = store.GetLevelStats("level1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.SolvedCount != 2 {
		t.Errorf("Expected 2 solved episodes, got %d", stats.SolvedCount)
	}
}

func TestStoreGetLevelStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveEpisode(Episode{LevelName: "level1", Preset: "classic", Steps: 10, Solved: true})
	store.SaveEpisode(Episode{LevelName: "level1", Preset: "classic", Steps: 20, Solved: false})

	stats, err := store.GetLevelStats("level1")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.EpisodeCount != 2 {
		t.Errorf("Expected 2 episodes, got %d", stats.EpisodeCount)
	}
	if stats.SolvedCount != 1 {
		t.Errorf("Expected 1 solved episode, got %d", stats.SolvedCount)
	}
	if stats.BestSteps != 10 {
		t.Errorf("Expected best steps 10, got %d", stats.BestSteps)
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
