// Package storage provides SQLite-based persistence for simulation
// episode telemetry. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for episode persistence.
type Store struct {
	db *sql.DB
}

// Episode is a single completed run of the simulation core: the level it
// was played on, the action trajectory's final outcome, and enough
// bookkeeping to reconstruct a leaderboard or a replay index.
type Episode struct {
	ID            int64
	LevelName     string
	Preset        string
	Steps         int
	GemsCollected int
	Solved        bool
	AgentAlive    bool
	FinalHash     uint64
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS episodes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_name TEXT NOT NULL,
			preset TEXT NOT NULL,
			steps INTEGER NOT NULL,
			gems_collected INTEGER NOT NULL,
			solved INTEGER NOT NULL,
			agent_alive INTEGER NOT NULL,
			final_hash INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_episodes_level ON episodes(level_name);
		CREATE INDEX IF NOT EXISTS idx_episodes_solved ON episodes(level_name, solved);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveEpisode records a completed episode. Returns the ID of the inserted row.
func (s *Store) SaveEpisode(ep Episode) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO episodes
		 (level_name, preset, steps, gems_collected, solved, agent_alive, final_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ep.LevelName, ep.Preset, ep.Steps, ep.GemsCollected, ep.Solved, ep.AgentAlive, int64(ep.FinalHash),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save episode: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentEpisodes retrieves the most recently recorded episodes for a level,
// most recent first.
func (s *Store) RecentEpisodes(levelName string, limit int) ([]Episode, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_name, preset, steps, gems_collected, solved, agent_alive, final_hash, created_at
		 FROM episodes
		 WHERE level_name = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		levelName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query episodes: %w", err)
	}
	defer rows.Close()

	var out []Episode
	for rows.Next() {
		ep, err := scanEpisode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// scanEpisode is shared by every query that reads a full episode row.
func scanEpisode(rows *sql.Rows) (Episode, error) {
	var ep Episode
	var createdAt any
	var finalHash int64
	if err := rows.Scan(
		&ep.ID, &ep.LevelName, &ep.Preset, &ep.Steps, &ep.GemsCollected,
		&ep.Solved, &ep.AgentAlive, &finalHash, &createdAt,
	); err != nil {
		return ep, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	ep.FinalHash = uint64(finalHash)

	switch v := createdAt.(type) {
	case time.Time:
		ep.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			ep.CreatedAt = parsed
		}
	}
	return ep, nil
}

// LevelStats aggregates outcomes across every recorded episode for a level.
type LevelStats struct {
	LevelName    string
	EpisodeCount int
	SolvedCount  int
	AvgSteps     float64
	BestSteps    int
	LastPlayed   time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelName string) (*LevelStats, error) {
	stats := &LevelStats{LevelName: levelName}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(solved), 0), COALESCE(AVG(steps), 0), COALESCE(MIN(steps), 0)
		 FROM episodes WHERE level_name = ?`,
		levelName,
	).Scan(&stats.EpisodeCount, &stats.SolvedCount, &stats.AvgSteps, &stats.BestSteps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM episodes WHERE level_name = ? ORDER BY created_at DESC LIMIT 1`,
		levelName,
	).Scan(&lastPlayed)
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	} else if err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}

	return stats, nil
}
