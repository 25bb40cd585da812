package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	catalogout "patterns/internal/modules/catalog/adapter/out"
	"patterns/internal/modules/catalog/domain"
)

func TestBundledDatasetLoads(t *testing.T) {
	t.Parallel()
	ds, err := catalogout.NewFixtureDatasetSource("").Load(context.Background())
	if err != nil {
		t.Fatalf("load bundled dataset: %v", err)
	}
	if len(ds.Problems) == 0 {
		t.Fatalf("bundled dataset should not be empty")
	}
	if ds.Updated.IsZero() {
		t.Fatalf("bundled dataset should carry an updated timestamp")
	}
	seen := map[int]bool{}
	for _, p := range ds.Problems {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
		switch p.Difficulty {
		case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
		default:
			t.Fatalf("problem %d has difficulty %q", p.ID, p.Difficulty)
		}
		if len(p.Patterns) == 0 {
			t.Fatalf("problem %d has no pattern", p.ID)
		}
	}
}

func TestYAMLDatasetLoadsInOrder(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	content := `updated: "2024-02-01"
data:
  - id: 42
    title: Trapping Rain Water
    slug: trapping-rain-water
    pattern: [Two Pointers]
    difficulty: Hard
    premium: false
    companies:
      - {name: Amazon, slug: amazon, frequency: 3.5}
  - id: 7
    title: Two Sum
    slug: two-sum
    pattern: [Arrays]
    difficulty: Easy
    premium: true
    companies: []
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := catalogout.NewFixtureDatasetSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load yaml dataset: %v", err)
	}
	if len(ds.Problems) != 2 || ds.Problems[0].ID != 42 || ds.Problems[1].ID != 7 {
		t.Fatalf("dataset order not preserved: %+v", ds.Problems)
	}
	if ds.Problems[0].Difficulty != domain.DifficultyHard || ds.Problems[0].Companies[0].Frequency != 3.5 {
		t.Fatalf("unexpected first problem: %+v", ds.Problems[0])
	}
	if !ds.Problems[1].Premium {
		t.Fatalf("premium flag not decoded")
	}
	if ds.Updated.Year() != 2024 {
		t.Fatalf("updated date not parsed: %v", ds.Updated)
	}
}

func TestMissingDatasetFails(t *testing.T) {
	t.Parallel()
	_, err := catalogout.NewFixtureDatasetSource(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	if err == nil {
		t.Fatalf("missing dataset file should fail")
	}
}
