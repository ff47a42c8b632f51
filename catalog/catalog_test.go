package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewTable_Validate(t *testing.T) {
	if _, err := NewTable(nil); err == nil {
		t.Fatal("empty table should fail validation")
	}
	if _, err := NewTable([]Reward{{ID: "", Weight: 1}}); err == nil {
		t.Fatal("empty id should fail validation")
	}
	if _, err := NewTable([]Reward{{ID: "a", Weight: 0}}); err == nil {
		t.Fatal("zero weight should fail validation")
	}
	if _, err := NewTable([]Reward{{ID: "a", Weight: -1}}); err == nil {
		t.Fatal("negative weight should fail validation")
	}
	if _, err := NewTable([]Reward{{ID: "a", DisplayName: "A", Weight: 0.05}}); err != nil {
		t.Fatalf("small positive weight should validate: %v", err)
	}
}

func TestDefault_Valid(t *testing.T) {
	table := Default()
	if err := table.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(table.Rewards()) != 25 {
		t.Errorf("default table has %d rewards, want 25", len(table.Rewards()))
	}
}

func TestSample_Totality(t *testing.T) {
	table := Default()
	ids := make(map[string]bool)
	for _, r := range table.Rewards() {
		ids[r.ID] = true
	}
	src := NewSeededSource(42)
	for i := 0; i < 10_000; i++ {
		r := table.Sample(src)
		if r.ID == "" || !ids[r.ID] {
			t.Fatalf("draw %d returned unknown reward %+v", i, r)
		}
	}
}

func TestSample_Distribution(t *testing.T) {
	// Weights: common 70%, uncommon 20%, rare 10% (out of 100)
	table, err := NewTable([]Reward{
		{ID: "common", DisplayName: "Common", Category: CategoryMaterial, Weight: 70},
		{ID: "uncommon", DisplayName: "Uncommon", Category: CategoryMaterial, Weight: 20},
		{ID: "rare", DisplayName: "Rare", Category: CategoryGem, Weight: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	const rounds = 100_000
	src := NewSeededSource(7)
	count := map[string]int{}
	for i := 0; i < rounds; i++ {
		count[table.Sample(src).ID]++
	}
	tol := 0.02 // 2% tolerance
	if p := float64(count["common"]) / rounds; p < 0.68 || p > 0.72 {
		t.Errorf("common proportion %.4f want ~0.70 (tol ±%.0f%%)", p, tol*100)
	}
	if p := float64(count["uncommon"]) / rounds; p < 0.18 || p > 0.22 {
		t.Errorf("uncommon proportion %.4f want ~0.20 (tol ±%.0f%%)", p, tol*100)
	}
	if p := float64(count["rare"]) / rounds; p < 0.08 || p > 0.12 {
		t.Errorf("rare proportion %.4f want ~0.10 (tol ±%.0f%%)", p, tol*100)
	}
}

// edgeSource returns exactly 1.0, standing in for accumulated rounding that
// leaves the scaled draw at or past the final cumulative sum.
type edgeSource struct{}

func (edgeSource) Float64() float64 { return 1.0 }

func TestSample_FallbackToLastEntry(t *testing.T) {
	table := Default()
	rewards := table.Rewards()
	last := rewards[len(rewards)-1]
	for i := 0; i < 20; i++ {
		r := table.Sample(edgeSource{})
		if r.ID != last.ID {
			t.Fatalf("expected fallback to last entry %q, got %q", last.ID, r.ID)
		}
	}
}

func TestSampleBatch_Size(t *testing.T) {
	table := Default()
	batch := table.SampleBatch(NewSeededSource(1), 9)
	if len(batch) != 9 {
		t.Fatalf("batch size %d want 9", len(batch))
	}
	for i, snap := range batch {
		if snap.ID == "" {
			t.Errorf("slot %d has empty id", i)
		}
	}
}

func TestSnapshot_OmitsAbsentOptionalFields(t *testing.T) {
	plain := Reward{ID: "money_bag_1", DisplayName: "Class 1 Pouch", Category: CategoryCurrencyBag, Weight: 25, Quantity: 1}
	data, err := json.Marshal(plain.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"quality", "sockets", "level", "weight"} {
		if strings.Contains(string(data), `"`+key+`"`) {
			t.Errorf("snapshot of plain reward should omit %q: %s", key, data)
		}
	}

	equip := Reward{ID: "boots_10", DisplayName: "Boots", Category: CategoryEquipment, Weight: 0.1, Quality: "Brilliant", Sockets: 2, Level: 10, Quantity: 1}
	data, err = json.Marshal(equip.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != equip.Snapshot() {
		t.Errorf("snapshot round-trip mismatch: %+v vs %+v", back, equip.Snapshot())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	content := `{"rewards":[
		{"id":"x","displayName":"X","category":"material","weight":3},
		{"id":"y","displayName":"Y","category":"gem","weight":1,"quality":"Radiant"}
	]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rewards()) != 2 || table.TotalWeight() != 4 {
		t.Errorf("loaded %d rewards total %.1f, want 2 / 4.0", len(table.Rewards()), table.TotalWeight())
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"rewards":[{"id":"x","weight":0}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Fatal("zero-weight catalog file should fail to load")
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	table, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Rewards()) != len(Default().Rewards()) {
		t.Error("empty path should yield the built-in table")
	}
}
