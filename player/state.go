package player

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/duskforge/ladyluck-server/catalog"
)

// BatchSize is the number of rewards generated per roll.
const BatchSize = 9

var (
	// ErrVersionConflict is returned by Save when the stored record changed
	// since it was read (optimistic concurrency).
	ErrVersionConflict = errors.New("player: version conflict")
	// ErrCorruptPending is returned when a stored pending payload cannot be
	// decoded into a valid batch.
	ErrCorruptPending = errors.New("player: corrupt pending data")
)

// State is the durable per-player record. LastFreeRoll is zero when the
// player has never taken a free roll (eligible now); it only moves forward.
// Pending holds the serialized in-flight batch, kept raw so a corrupt payload
// survives load/save and is reported at claim time instead of being dropped.
type State struct {
	PlayerID     string          `json:"playerId"`
	LastFreeRoll time.Time       `json:"lastFreeRoll"`
	Tickets      int64           `json:"tickets"`
	Pending      json.RawMessage `json:"pending,omitempty"`
	Version      int64           `json:"version"`
}

// HasPending reports whether an unclaimed roll occupies the slot.
func (s *State) HasPending() bool {
	return len(s.Pending) > 0
}

// PendingRoll is an in-flight batch: exactly BatchSize reward snapshots in
// generation order, addressed later only by index.
type PendingRoll struct {
	RollID    string             `json:"rollId"`
	Rewards   []catalog.Snapshot `json:"rewards"`
	CreatedAt time.Time          `json:"createdAt"`
}

// SetPending serializes a batch into the slot.
func (s *State) SetPending(p *PendingRoll) error {
	if len(p.Rewards) != BatchSize {
		return ErrCorruptPending
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	s.Pending = data
	return nil
}

// PendingBatch decodes the occupied slot. An undecodable or wrong-length
// payload yields ErrCorruptPending, never a panic.
func (s *State) PendingBatch() (*PendingRoll, error) {
	if !s.HasPending() {
		return nil, nil
	}
	var p PendingRoll
	if err := json.Unmarshal(s.Pending, &p); err != nil {
		return nil, ErrCorruptPending
	}
	if len(p.Rewards) != BatchSize {
		return nil, ErrCorruptPending
	}
	return &p, nil
}

// ClearPending empties the slot.
func (s *State) ClearPending() {
	s.Pending = nil
}

// Store is the durable per-player record store. Get returns a zero-valued
// State (version 0) for unknown players. Save succeeds only if the stored
// version still matches the read version, then increments it.
type Store interface {
	Get(ctx context.Context, playerID string) (*State, error)
	Save(ctx context.Context, st *State) error
}
