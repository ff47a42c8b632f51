package catalog

import (
	"fmt"
)

// Reward categories.
const (
	CategoryCurrencyBag = "currency-bag"
	CategoryMaterial    = "material"
	CategoryGem         = "gem"
	CategoryEquipment   = "equipment"
)

// Reward is one catalog entry. Weight is relative probability mass; the
// catalog total is the normalization denominator.
type Reward struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	Category    string  `json:"category"`
	Weight      float64 `json:"weight"`
	Quality     string  `json:"quality,omitempty"`
	Sockets     int     `json:"sockets,omitempty"`
	Level       int     `json:"level,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
}

// Snapshot is the per-slot copy persisted into a pending roll. It carries no
// weight, so later catalog edits never alter an in-flight batch.
type Snapshot struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Category    string `json:"category"`
	Quality     string `json:"quality,omitempty"`
	Sockets     int    `json:"sockets,omitempty"`
	Level       int    `json:"level,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
}

// Snapshot copies the display/grant fields of a reward.
func (r Reward) Snapshot() Snapshot {
	return Snapshot{
		ID:          r.ID,
		DisplayName: r.DisplayName,
		Category:    r.Category,
		Quality:     r.Quality,
		Sockets:     r.Sockets,
		Level:       r.Level,
		Quantity:    r.Quantity,
	}
}

// Table is an immutable weighted reward catalog, loaded once at startup.
type Table struct {
	rewards []Reward
}

func NewTable(rewards []Reward) (*Table, error) {
	t := &Table{rewards: rewards}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the catalog invariants: non-empty, ids set, all weights
// strictly positive.
func (t *Table) Validate() error {
	if t == nil || len(t.rewards) == 0 {
		return fmt.Errorf("catalog: empty reward table")
	}
	for i, r := range t.rewards {
		if r.ID == "" {
			return fmt.Errorf("catalog: entry %d has empty id", i)
		}
		if r.Weight <= 0 {
			return fmt.Errorf("catalog: entry %q has non-positive weight %v", r.ID, r.Weight)
		}
	}
	return nil
}

// Rewards returns the catalog entries in declaration order.
func (t *Table) Rewards() []Reward {
	out := make([]Reward, len(t.rewards))
	copy(out, t.rewards)
	return out
}

// TotalWeight sums all entry weights.
func (t *Table) TotalWeight() float64 {
	var total float64
	for _, r := range t.rewards {
		total += r.Weight
	}
	return total
}

// Sample draws one reward proportional to weight. The total is recomputed
// each call so a reloaded table is always sampled against its own sum. The
// walk is inclusive-exclusive binning; if floating-point rounding leaves the
// draw at or past the final cumulative sum, the last entry is returned, so
// Sample is total for any validated table.
func (t *Table) Sample(src Source) Reward {
	if src == nil {
		src = DefaultSource()
	}
	total := t.TotalWeight()
	roll := src.Float64() * total
	var cum float64
	for _, r := range t.rewards {
		cum += r.Weight
		if roll < cum {
			return r
		}
	}
	return t.rewards[len(t.rewards)-1]
}

// SampleBatch draws n independent samples with replacement.
func (t *Table) SampleBatch(src Source, n int) []Snapshot {
	out := make([]Snapshot, n)
	for i := range out {
		out[i] = t.Sample(src).Snapshot()
	}
	return out
}
