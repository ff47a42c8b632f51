package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Record is one settled claim, kept for audit and reconciliation of the
// point-rail payment window.
type Record struct {
	RollID        string    `json:"rollId"`
	PlayerID      string    `json:"playerId"`
	ChosenIndex   int       `json:"chosenIndex"`
	RewardID      string    `json:"rewardId"`
	SecondaryDrop string    `json:"secondaryDrop,omitempty"`
	ClaimedAt     time.Time `json:"claimedAt"`
}

// Store appends settled claims to data/claim_history.json.
type Store struct {
	mu      sync.Mutex
	dataDir string
}

func NewStore(dataDir string) *Store {
	if dataDir == "" {
		dataDir = "data"
	}
	return &Store{dataDir: dataDir}
}

func (s *Store) path() string {
	return filepath.Join(s.dataDir, "claim_history.json")
}

func (s *Store) ensureDir() error {
	return os.MkdirAll(s.dataDir, 0755)
}

// Append adds a settled claim to the JSON file (append to array).
func (s *Store) Append(r *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureDir(); err != nil {
		return err
	}
	path := s.path()
	var list []*Record
	data, err := os.ReadFile(path)
	if err == nil {
		_ = json.Unmarshal(data, &list)
	}
	if list == nil {
		list = []*Record{}
	}
	list = append(list, r)
	data, err = json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ByPlayer returns the player's claims, most recent first, up to limit
// (limit <= 0 means all).
func (s *Store) ByPlayer(playerID string, limit int) ([]*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return []*Record{}, nil
		}
		return nil, err
	}
	var list []*Record
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	out := []*Record{}
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].PlayerID != playerID {
			continue
		}
		out = append(out, list[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
