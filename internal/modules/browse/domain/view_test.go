package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"patterns/internal/modules/browse/domain"
)

func ids(rows []domain.Row) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Problem.ID)
	}
	return out
}

// A=1, B=2, C=3 with A completed yesterday as own and C today with help.
func exampleDataset() ([]domain.Problem, map[int]domain.Mark) {
	problems := []domain.Problem{
		{ID: 1, Title: "A", Patterns: []string{"dp"}, Difficulty: "Easy"},
		{ID: 2, Title: "B", Patterns: []string{"graph"}, Difficulty: "Medium"},
		{ID: 3, Title: "C", Patterns: []string{"dp"}, Difficulty: "Hard"},
	}
	marks := map[int]domain.Mark{
		1: {DateCompleted: "2026-10-18", Source: "own"},
		3: {DateCompleted: "2026-10-19", Source: "help"},
	}
	return problems, marks
}

func TestViewEndToEndExample(t *testing.T) {
	t.Parallel()
	problems, marks := exampleDataset()

	got := ids(domain.View(problems, domain.Criteria{Pattern: "dp"}, marks, domain.SortNone))
	if diff := cmp.Diff([]int{1, 3}, got); diff != "" {
		t.Fatalf("pattern filter (-want +got):\n%s", diff)
	}
	got = ids(domain.View(problems, domain.Criteria{Source: "own"}, marks, domain.SortNone))
	if diff := cmp.Diff([]int{1}, got); diff != "" {
		t.Fatalf("source filter (-want +got):\n%s", diff)
	}
	got = ids(domain.View(problems, domain.Criteria{}, marks, domain.SortDateDesc))
	if diff := cmp.Diff([]int{3, 1, 2}, got); diff != "" {
		t.Fatalf("date-desc sort (-want +got):\n%s", diff)
	}
	got = ids(domain.View(problems, domain.Criteria{}, marks, domain.SortDateAsc))
	if diff := cmp.Diff([]int{1, 3, 2}, got); diff != "" {
		t.Fatalf("date-asc sort (-want +got):\n%s", diff)
	}
}

func TestViewFilters(t *testing.T) {
	t.Parallel()
	problems := []domain.Problem{
		{ID: 1, Patterns: []string{"Arrays"}, Difficulty: "Easy", Companies: []domain.Company{{Name: "Amazon"}, {Name: "Apple"}}},
		{ID: 2, Patterns: []string{"Arrays", "Heap"}, Difficulty: "Medium", Companies: []domain.Company{{Name: "Google"}}},
		{ID: 3, Patterns: []string{"Heap"}, Difficulty: "Medium", Companies: []domain.Company{{Name: "Apple"}}},
	}
	marks := map[int]domain.Mark{2: {DateCompleted: "2026-01-01", Source: "help"}}

	cases := []struct {
		name     string
		criteria domain.Criteria
		want     []int
	}{
		{"none", domain.Criteria{}, []int{1, 2, 3}},
		{"pattern", domain.Criteria{Pattern: "Heap"}, []int{2, 3}},
		{"difficulty", domain.Criteria{Difficulty: "Medium"}, []int{2, 3}},
		{"company", domain.Criteria{Company: "Apple"}, []int{1, 3}},
		{"completed", domain.Criteria{CompletedOnly: true}, []int{2}},
		{"source help", domain.Criteria{Source: "help"}, []int{2}},
		{"source own", domain.Criteria{Source: "own"}, []int{}},
		{"combined", domain.Criteria{Pattern: "Arrays", Company: "Apple"}, []int{1}},
		{"no match", domain.Criteria{Pattern: "Trie"}, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rows := domain.View(problems, tc.criteria, marks, domain.SortNone)
			if diff := cmp.Diff(tc.want, ids(rows)); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
			for _, r := range rows {
				mark, completed := marks[r.Problem.ID]
				if !tc.criteria.Match(r.Problem, mark, completed) {
					t.Fatalf("row %d does not satisfy criteria", r.Problem.ID)
				}
			}
		})
	}
}

func TestDateSortIsStableAndPutsOpenRowsLast(t *testing.T) {
	t.Parallel()
	problems := []domain.Problem{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}}
	marks := map[int]domain.Mark{
		2: {DateCompleted: "2026-02-01", Source: "own"},
		3: {DateCompleted: "2026-01-01", Source: "own"},
		5: {DateCompleted: "2026-02-01", Source: "help"},
		6: {DateCompleted: "2026-03-01", Source: "help"},
	}

	desc := ids(domain.View(problems, domain.Criteria{}, marks, domain.SortDateDesc))
	if diff := cmp.Diff([]int{6, 2, 5, 3, 1, 4}, desc); diff != "" {
		t.Fatalf("desc (-want +got):\n%s", diff)
	}
	asc := ids(domain.View(problems, domain.Criteria{}, marks, domain.SortDateAsc))
	if diff := cmp.Diff([]int{3, 2, 5, 6, 1, 4}, asc); diff != "" {
		t.Fatalf("asc (-want +got):\n%s", diff)
	}

	rows := domain.View(problems, domain.Criteria{}, marks, domain.SortDateDesc)
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.Completed && cur.Completed && prev.Mark.DateCompleted < cur.Mark.DateCompleted {
			t.Fatalf("rows %d and %d out of order", prev.Problem.ID, cur.Problem.ID)
		}
		if !prev.Completed && cur.Completed {
			t.Fatalf("completed row %d after open row %d", cur.Problem.ID, prev.Problem.ID)
		}
	}
}

func TestViewDoesNotReorderInput(t *testing.T) {
	t.Parallel()
	problems, marks := exampleDataset()
	_ = domain.View(problems, domain.Criteria{}, marks, domain.SortDateDesc)
	if problems[0].ID != 1 || problems[2].ID != 3 {
		t.Fatalf("input slice was modified")
	}
}

func TestDistinctOptions(t *testing.T) {
	t.Parallel()
	problems := []domain.Problem{
		{Patterns: []string{"Heap", "Arrays"}, Companies: []domain.Company{{Name: "Google"}, {Name: "Amazon"}}},
		{Patterns: []string{"Arrays"}, Companies: []domain.Company{{Name: "Amazon"}}},
	}
	if diff := cmp.Diff([]string{"Arrays", "Heap"}, domain.DistinctPatterns(problems)); diff != "" {
		t.Fatalf("patterns (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Amazon", "Google"}, domain.DistinctCompanies(problems)); diff != "" {
		t.Fatalf("companies (-want +got):\n%s", diff)
	}
	if got := domain.DistinctPatterns(nil); len(got) != 0 {
		t.Fatalf("expected no patterns, got %v", got)
	}
}

func TestCriteriaValidateAndSortParse(t *testing.T) {
	t.Parallel()
	if err := (domain.Criteria{Difficulty: "Extreme"}).Validate(); err == nil {
		t.Fatalf("unknown difficulty should fail")
	}
	if err := (domain.Criteria{Source: "friend"}).Validate(); err == nil {
		t.Fatalf("unknown source should fail")
	}
	for in, want := range map[string]domain.SortKey{"": domain.SortNone, "dateDesc": domain.SortDateDesc, "date-asc": domain.SortDateAsc} {
		got, err := domain.ParseSortKey(in)
		if err != nil || got != want {
			t.Fatalf("parse %q: %v %v", in, got, err)
		}
	}
	if _, err := domain.ParseSortKey("title"); err == nil {
		t.Fatalf("unknown sort should fail")
	}
}

func TestCompanyPreview(t *testing.T) {
	t.Parallel()
	p := domain.Problem{Companies: []domain.Company{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}}
	shown, more := p.CompanyPreview(3)
	if len(shown) != 3 || more != 2 {
		t.Fatalf("expected 3 shown and 2 more, got %d/%d", len(shown), more)
	}
	shown, more = domain.Problem{Companies: p.Companies[:2]}.CompanyPreview(3)
	if len(shown) != 2 || more != 0 {
		t.Fatalf("short list should be shown whole")
	}
}
