package storage

import (
	"fmt"
	"time"
)

// Run is the record of one finished play-through.
type Run struct {
	ID         int64
	GameID     string
	Player     string // SSH or local user name, "sim" for headless runs
	Score      int
	Ticks      uint64
	Elapsed    float64 // Simulated seconds
	Difficulty float64 // Factor at the end of the run
	Obstacles  int     // Live obstacles at the end of the run
	Seed       int64
	CreatedAt  time.Time
}

func insertRun(db execer, run Run) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO runs (game_id, player, score, ticks, elapsed, difficulty, obstacles, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.GameID, run.Player, run.Score, int64(run.Ticks),
		run.Elapsed, run.Difficulty, run.Obstacles, run.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return lastID(res)
}

// RecordResult saves a finished run and, when it scored, its high score
// entry. Both rows are written or neither is. It returns the run's ID.
func (s *Store) RecordResult(run Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin result: %w", err)
	}
	defer tx.Rollback()

	if run.Score > 0 {
		if _, err := insertScore(tx, run.GameID, run.Score); err != nil {
			return 0, err
		}
	}
	id, err := insertRun(tx, run)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit result: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first. An empty gameID
// lists every game. A limit of zero or less means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, ticks, elapsed, difficulty, obstacles, seed, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			ticks   int64
			created any
		)
		err := rows.Scan(&r.ID, &r.GameID, &r.Player, &r.Score, &ticks,
			&r.Elapsed, &r.Difficulty, &r.Obstacles, &r.Seed, &created)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(created)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read runs: %w", err)
	}
	return runs, nil
}
