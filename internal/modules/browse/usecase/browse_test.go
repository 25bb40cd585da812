package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"patterns/internal/modules/browse/domain"
	"patterns/internal/modules/browse/dto"
	"patterns/internal/modules/browse/service"
	"patterns/internal/modules/browse/usecase"
	apperrors "patterns/internal/platform/errors"
)

type fakeProblems struct {
	problems []domain.Problem
	updated  time.Time
	err      error
	calls    int
}

func (f *fakeProblems) Problems(context.Context) ([]domain.Problem, time.Time, error) {
	f.calls++
	return f.problems, f.updated, f.err
}

type fakeMarks struct {
	marks map[int]domain.Mark
}

func (f *fakeMarks) Marks(context.Context) (map[int]domain.Mark, error) {
	return f.marks, nil
}

func companies(names ...string) []domain.Company {
	out := make([]domain.Company, 0, len(names))
	for i, n := range names {
		out = append(out, domain.Company{Name: n, Frequency: float64(len(names) - i)})
	}
	return out
}

func fixture() (*fakeProblems, *fakeMarks) {
	problems := &fakeProblems{
		updated: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		problems: []domain.Problem{
			{ID: 1, Title: "A", Patterns: []string{"dp"}, Difficulty: "Easy", Companies: companies("Amazon", "Apple", "Google", "Meta", "Uber")},
			{ID: 2, Title: "B", Patterns: []string{"graph"}, Difficulty: "Medium", Companies: companies("Google")},
			{ID: 3, Title: "C", Patterns: []string{"dp"}, Difficulty: "Hard"},
		},
	}
	marks := &fakeMarks{marks: map[int]domain.Mark{
		1: {DateCompleted: "2026-10-18", Source: "own"},
		3: {DateCompleted: "2026-10-19", Source: "help"},
	}}
	return problems, marks
}

func rowIDs(out dto.ViewOutput) []int {
	ids := make([]int, 0, len(out.Rows))
	for _, r := range out.Rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestViewAppliesFiltersAndCounts(t *testing.T) {
	t.Parallel()
	problems, marks := fixture()
	uc := usecase.NewInteractor(service.NewBrowseService(problems, marks, nil))
	ctx := context.Background()

	out, err := uc.View(ctx, dto.ViewInput{Pattern: "dp"})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if out.Shown != 2 || out.Total != 3 {
		t.Fatalf("expected 2 of 3, got %d of %d", out.Shown, out.Total)
	}
	if diff := cmp.Diff([]int{1, 3}, rowIDs(out)); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}

	out, err = uc.View(ctx, dto.ViewInput{Sort: "date-desc"})
	if err != nil {
		t.Fatalf("view sorted: %v", err)
	}
	if diff := cmp.Diff([]int{3, 1, 2}, rowIDs(out)); diff != "" {
		t.Fatalf("sorted rows (-want +got):\n%s", diff)
	}
	if problems.calls != 2 {
		t.Fatalf("expected the view to be recomputed per call, got %d loads", problems.calls)
	}
}

func TestViewRowCarriesMarkAndCompanyPreview(t *testing.T) {
	t.Parallel()
	problems, marks := fixture()
	uc := usecase.NewInteractor(service.NewBrowseService(problems, marks, nil))

	out, err := uc.View(context.Background(), dto.ViewInput{Source: "own"})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	want := []dto.RowOutput{{
		ID:            1,
		Title:         "A",
		Patterns:      []string{"dp"},
		Difficulty:    "Easy",
		Companies:     []dto.CompanyOutput{{Name: "Amazon", Frequency: 5}, {Name: "Apple", Frequency: 4}, {Name: "Google", Frequency: 3}},
		MoreCompanies: 2,
		Completed:     true,
		DateCompleted: "2026-10-18",
		Source:        "own",
	}}
	if diff := cmp.Diff(want, out.Rows); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
}

func TestCompanyPreviewShowsFrequency(t *testing.T) {
	t.Parallel()
	row := dto.RowOutput{
		Companies:     []dto.CompanyOutput{{Name: "Amazon", Frequency: 9}, {Name: "Apple", Frequency: 2.5}},
		MoreCompanies: 4,
	}
	if got, want := row.CompanyPreview(), "Amazon (9), Apple (2.5) +4 more"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := (dto.RowOutput{}).CompanyPreview(); got != "" {
		t.Fatalf("no companies should render empty, got %q", got)
	}
}

func TestViewRejectsInvalidCriteria(t *testing.T) {
	t.Parallel()
	problems, marks := fixture()
	uc := usecase.NewInteractor(service.NewBrowseService(problems, marks, nil))
	ctx := context.Background()

	for _, input := range []dto.ViewInput{
		{Sort: "alphabetical"},
		{Difficulty: "Trivial"},
		{Source: "someone"},
	} {
		if _, err := uc.View(ctx, input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %+v, got %v", input, err)
		}
	}
}

func TestViewPropagatesSourceErrors(t *testing.T) {
	t.Parallel()
	problems, marks := fixture()
	problems.err = errors.New("dataset unavailable")
	uc := usecase.NewInteractor(service.NewBrowseService(problems, marks, nil))
	if _, err := uc.View(context.Background(), dto.ViewInput{}); err == nil {
		t.Fatalf("expected dataset error")
	}
}

func TestOptionsListsDistinctValues(t *testing.T) {
	t.Parallel()
	problems, marks := fixture()
	uc := usecase.NewInteractor(service.NewBrowseService(problems, marks, nil))

	opts, err := uc.Options(context.Background())
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	want := dto.OptionsOutput{
		Patterns:     []string{"dp", "graph"},
		Companies:    []string{"Amazon", "Apple", "Google", "Meta", "Uber"},
		Difficulties: []string{"Easy", "Medium", "Hard"},
		Updated:      problems.updated,
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Fatalf("options (-want +got):\n%s", diff)
	}
}
