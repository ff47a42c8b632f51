package player

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists player records to players.json under the data dir
// (same style as the round/results files). Default store when no
// DATABASE_URL is configured.
type FileStore struct {
	mu      sync.Mutex
	players map[string]*State
	dataDir string
}

func NewFileStore(dataDir string) *FileStore {
	if dataDir == "" {
		dataDir = "data"
	}
	s := &FileStore{
		players: make(map[string]*State),
		dataDir: dataDir,
	}
	s.load()
	return s
}

func (s *FileStore) path() string {
	return filepath.Join(s.dataDir, "players.json")
}

func (s *FileStore) ensureDir() error {
	return os.MkdirAll(s.dataDir, 0755)
}

func (s *FileStore) load() {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path())
	if err != nil {
		return
	}
	var list []*State
	if err := json.Unmarshal(data, &list); err != nil {
		return
	}
	for _, st := range list {
		if st != nil && st.PlayerID != "" {
			s.players[st.PlayerID] = st
		}
	}
}

// saveLocked writes the store to disk. Caller must hold s.mu.
func (s *FileStore) saveLocked() error {
	list := make([]*State, 0, len(s.players))
	for _, st := range s.players {
		list = append(list, st)
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	if err := s.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0644)
}

func cloneState(st *State) *State {
	cp := *st
	if st.Pending != nil {
		cp.Pending = append(json.RawMessage(nil), st.Pending...)
	}
	return &cp
}

func (s *FileStore) Get(ctx context.Context, playerID string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.players[playerID]
	if !ok {
		return &State{PlayerID: playerID}, nil
	}
	return cloneState(st), nil
}

func (s *FileStore) Save(ctx context.Context, st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var current int64
	if cur, ok := s.players[st.PlayerID]; ok {
		current = cur.Version
	}
	if st.Version != current {
		return ErrVersionConflict
	}
	st.Version++
	s.players[st.PlayerID] = cloneState(st)
	return s.saveLocked()
}
