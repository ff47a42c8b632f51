package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// catalogFile is the on-disk catalog override format.
type catalogFile struct {
	Rewards []Reward `json:"rewards"`
}

// LoadFile reads and validates a reward catalog from a JSON file. The table
// is loaded once at process start; there is no runtime mutation path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return NewTable(f.Rewards)
}

// Load returns the table at path, or the built-in default when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
