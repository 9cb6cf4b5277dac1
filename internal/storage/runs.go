package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// RunRecord is one finished run in the run log.
type RunRecord struct {
	ID        int64
	GameID    string
	Outcome   string // won, lost or quit
	Score     int
	Lives     int
	Duration  time.Duration // simulated run time
	Seed      int64
	Jumps     int
	Stomps    int
	Breaks    int
	Smashes   int
	Pickups   int
	Hits      int
	CreatedAt time.Time
}

// RunStats aggregates the run log for one game.
type RunStats struct {
	GameID      string
	Runs        int
	Wins        int
	Losses      int
	Quits       int
	BestScore   int
	AvgDuration time.Duration
}

const runColumns = `id, game_id, outcome, score, lives, duration_ms, seed,
	jumps, stomps, breaks, smashes, pickups, hits, created_at`

// SaveRun appends a run to the log and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs
		 (game_id, outcome, score, lives, duration_ms, seed, jumps, stomps, breaks, smashes, pickups, hits)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Outcome, r.Score, r.Lives, r.Duration.Milliseconds(), r.Seed,
		r.Jumps, r.Stomps, r.Breaks, r.Smashes, r.Pickups, r.Hits,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the newest runs first. An empty gameID lists every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows *sql.Rows
		err  error
	)
	if gameID == "" {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
			limit,
		)
	} else {
		rows, err = s.db.Query(
			`SELECT `+runColumns+` FROM runs WHERE game_id = ? ORDER BY id DESC LIMIT ?`,
			gameID, limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Outcome, &r.Score, &r.Lives, &durationMs, &r.Seed,
			&r.Jumps, &r.Stomps, &r.Breaks, &r.Smashes, &r.Pickups, &r.Hits, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// GetRunStats aggregates the run log for a game.
func (s *Store) GetRunStats(gameID string) (*RunStats, error) {
	stats := &RunStats{GameID: gameID}
	var avgMs float64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        COALESCE(SUM(outcome = 'quit'), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(duration_ms), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.Wins, &stats.Losses, &stats.Quits, &stats.BestScore, &avgMs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	stats.AvgDuration = time.Duration(avgMs) * time.Millisecond
	return stats, nil
}

// ClearRuns deletes the run log for a game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
