package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Round outcomes
const (
	OutcomeWin  = "win"
	OutcomeLose = "lose"
)

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        int64
	RoundID   string // UUID assigned on save when empty
	GameID    string
	Outcome   string
	Score     int
	Lives     int
	TimeLeft  int // Whole seconds left on the countdown
	Objects   int // Objects placed in the arena during the round
	CreatedAt time.Time
}

// SaveRound records a finished round and returns its round ID.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.Outcome != OutcomeWin && r.Outcome != OutcomeLose {
		return "", fmt.Errorf("storage: invalid outcome %q", r.Outcome)
	}
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (round_id, game_id, outcome, score, lives, time_left, objects)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.GameID, r.Outcome, r.Score, r.Lives, r.TimeLeft, r.Objects,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.RoundID, nil
}

const roundColumns = `id, round_id, game_id, outcome, score, lives, time_left, objects, created_at`

func scanRound(row interface{ Scan(...any) error }) (RoundRecord, error) {
	var r RoundRecord
	var createdAt any
	err := row.Scan(&r.ID, &r.RoundID, &r.GameID, &r.Outcome, &r.Score, &r.Lives, &r.TimeLeft, &r.Objects, &createdAt)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// RoundByID retrieves a round by its round ID. Returns nil if not found.
func (s *Store) RoundByID(roundID string) (*RoundRecord, error) {
	row := s.db.QueryRow(`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`, roundID)
	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return &r, nil
}

// RecentRounds retrieves the most recent rounds for a game, newest first.
// An empty gameID returns rounds of every game.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var results []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Rounds     int
	Wins       int
	Losses     int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// WinRate returns the fraction of rounds won, or 0 with no rounds.
func (g *GameStats) WinRate() float64 {
	if g.Rounds == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.Rounds)
}

// Stats retrieves aggregated round statistics for a game.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lose' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        MAX(created_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.Wins, &stats.Losses, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
