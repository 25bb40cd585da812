package domain

import (
	"fmt"
	"slices"
	"strings"
)

type Company struct {
	Name      string
	Slug      string
	Frequency float64
}

type Problem struct {
	ID         int
	Title      string
	URL        string
	Patterns   []string
	Difficulty string
	Companies  []Company
	Premium    bool
}

// CompanyPreview returns the first n companies and how many were left out.
func (p Problem) CompanyPreview(n int) ([]Company, int) {
	if len(p.Companies) <= n {
		return p.Companies, 0
	}
	return p.Companies[:n], len(p.Companies) - n
}

// Mark is the completion state of a problem as seen by the view.
type Mark struct {
	DateCompleted string
	Source        string
}

var (
	difficulties = []string{"Easy", "Medium", "Hard"}
	sources      = []string{"own", "help"}
)

func Difficulties() []string {
	return slices.Clone(difficulties)
}

// Criteria is the AND-combination of the active filters. Empty fields do not
// filter; the zero value shows everything.
type Criteria struct {
	Pattern       string
	Difficulty    string
	Company       string
	CompletedOnly bool
	Source        string
}

func (c Criteria) Validate() error {
	if c.Difficulty != "" && !slices.Contains(difficulties, c.Difficulty) {
		return fmt.Errorf("unsupported difficulty %q", c.Difficulty)
	}
	if c.Source != "" && !slices.Contains(sources, c.Source) {
		return fmt.Errorf("unsupported solution source %q", c.Source)
	}
	return nil
}

func (c Criteria) Match(p Problem, mark Mark, completed bool) bool {
	if c.Pattern != "" && !slices.Contains(p.Patterns, c.Pattern) {
		return false
	}
	if c.Difficulty != "" && p.Difficulty != c.Difficulty {
		return false
	}
	if c.Company != "" && !slices.ContainsFunc(p.Companies, func(co Company) bool { return co.Name == c.Company }) {
		return false
	}
	if c.CompletedOnly && !completed {
		return false
	}
	if c.Source != "" && (!completed || mark.Source != c.Source) {
		return false
	}
	return true
}

type SortKey string

const (
	SortNone     SortKey = "none"
	SortDateAsc  SortKey = "date-asc"
	SortDateDesc SortKey = "date-desc"
)

func ParseSortKey(value string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return SortNone, nil
	case "date-asc", "dateasc", "oldest":
		return SortDateAsc, nil
	case "date-desc", "datedesc", "newest":
		return SortDateDesc, nil
	default:
		return "", fmt.Errorf("unsupported sort %q", value)
	}
}

type Row struct {
	Problem   Problem
	Mark      Mark
	Completed bool
}

// View filters problems by c and orders the result by key. The sort is
// stable, so rows with equal keys keep dataset order. Rows without a
// completion date go last in both directions.
func View(problems []Problem, c Criteria, marks map[int]Mark, key SortKey) []Row {
	rows := make([]Row, 0, len(problems))
	for _, p := range problems {
		mark, completed := marks[p.ID]
		if !c.Match(p, mark, completed) {
			continue
		}
		rows = append(rows, Row{Problem: p, Mark: mark, Completed: completed})
	}

	switch key {
	case SortDateAsc:
		slices.SortStableFunc(rows, func(a, b Row) int { return compareDates(a, b, false) })
	case SortDateDesc:
		slices.SortStableFunc(rows, func(a, b Row) int { return compareDates(a, b, true) })
	}
	return rows
}

func compareDates(a, b Row, desc bool) int {
	da, db := a.Mark.DateCompleted, b.Mark.DateCompleted
	switch {
	case da == "" && db == "":
		return 0
	case da == "":
		return 1
	case db == "":
		return -1
	case desc:
		return strings.Compare(db, da)
	default:
		return strings.Compare(da, db)
	}
}

func DistinctPatterns(problems []Problem) []string {
	seen := map[string]struct{}{}
	for _, p := range problems {
		for _, pattern := range p.Patterns {
			seen[pattern] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func DistinctCompanies(problems []Problem) []string {
	seen := map[string]struct{}{}
	for _, p := range problems {
		for _, c := range p.Companies {
			seen[c.Name] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
