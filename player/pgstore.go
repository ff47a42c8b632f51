package player

import (
	"context"
	"database/sql"
)

// PGStore keeps player records in the luck_players table. Save relies on the
// version column for compare-and-set, so concurrent writers across processes
// cannot both commit against the same read.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) (*PGStore, error) {
	s := &PGStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PGStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS luck_players (
			player_id      TEXT PRIMARY KEY,
			last_free_roll TIMESTAMPTZ,
			tickets        BIGINT NOT NULL DEFAULT 0,
			pending        TEXT,
			version        BIGINT NOT NULL DEFAULT 0
		)
	`)
	return err
}

func (s *PGStore) Get(ctx context.Context, playerID string) (*State, error) {
	var (
		lastFree sql.NullTime
		tickets  int64
		pending  sql.NullString
		version  int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT last_free_roll, tickets, pending, version
		FROM luck_players WHERE player_id = $1
	`, playerID).Scan(&lastFree, &tickets, &pending, &version)
	if err == sql.ErrNoRows {
		return &State{PlayerID: playerID}, nil
	}
	if err != nil {
		return nil, err
	}
	st := &State{
		PlayerID: playerID,
		Tickets:  tickets,
		Version:  version,
	}
	if lastFree.Valid {
		st.LastFreeRoll = lastFree.Time
	}
	if pending.Valid && pending.String != "" {
		st.Pending = []byte(pending.String)
	}
	return st, nil
}

func (s *PGStore) Save(ctx context.Context, st *State) error {
	var lastFree any
	if !st.LastFreeRoll.IsZero() {
		lastFree = st.LastFreeRoll.UTC()
	}
	var pending any
	if st.HasPending() {
		pending = string(st.Pending)
	}
	// Insert covers version 0 (unknown player); the conflict branch is the
	// CAS: it only fires while the stored version matches the read version.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO luck_players (player_id, last_free_roll, tickets, pending, version)
		VALUES ($1, $2, $3, $4, $5 + 1)
		ON CONFLICT (player_id) DO UPDATE
		SET last_free_roll = EXCLUDED.last_free_roll,
		    tickets        = EXCLUDED.tickets,
		    pending        = EXCLUDED.pending,
		    version        = EXCLUDED.version
		WHERE luck_players.version = $5
	`, st.PlayerID, lastFree, st.Tickets, pending, st.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVersionConflict
	}
	st.Version++
	return nil
}
