package problems

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	browsedto "patterns/internal/modules/browse/dto"
	"patterns/internal/ui/theme"
)

var datasetUpdated = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeBrowse struct {
	inputs []browsedto.ViewInput
}

func (f *fakeBrowse) View(_ context.Context, input browsedto.ViewInput) (browsedto.ViewOutput, error) {
	f.inputs = append(f.inputs, input)
	return browsedto.ViewOutput{
		Rows: []browsedto.RowOutput{
			{ID: 4, Title: "Two Sum", Difficulty: "Easy", Completed: true, DateCompleted: "2026-10-19", Source: "own"},
			{ID: 9, Title: "LRU Cache", Difficulty: "Medium"},
		},
		Shown: 2,
		Total: 5,
	}, nil
}

func (f *fakeBrowse) Options(context.Context) (browsedto.OptionsOutput, error) {
	return browsedto.OptionsOutput{
		Patterns:     []string{"Arrays", "Heap"},
		Difficulties: []string{"Easy", "Medium", "Hard"},
		Updated:      datasetUpdated,
	}, nil
}

func TestCycleWrapsThroughAll(t *testing.T) {
	t.Parallel()
	opts := []string{"a", "b"}
	var got []string
	v := ""
	for i := 0; i < 4; i++ {
		v = cycle(opts, v, true)
		got = append(got, v)
	}
	if diff := cmp.Diff([]string{"a", "b", "", "a"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if got := cycle(opts, "b", false); got != "a" {
		t.Fatalf("expected wrap to first option, got %q", got)
	}
	if got := cycle(nil, "x", true); got != "" {
		t.Fatalf("no options should reset, got %q", got)
	}
}

func TestModelLoadsAndFilters(t *testing.T) {
	t.Parallel()
	port := &fakeBrowse{}
	m := New(port, theme.For(true))

	opts, _ := port.Options(context.Background())
	m, _ = m.Update(OptionsLoadedMsg{Options: opts})
	reload := m.Reload()
	m, _ = m.Update(reload().(LoadedMsg))

	id, ok := m.SelectedID()
	if !ok || id != 4 {
		t.Fatalf("expected first row selected, got %d %v", id, ok)
	}

	cmd := m.CyclePattern()
	cmd()
	cmd = m.CycleDifficulty()
	cmd()
	cmd = m.ClearFilters()
	cmd()

	want := []browsedto.ViewInput{
		{Sort: "none"},
		{Pattern: "Arrays", Sort: "none"},
		{Pattern: "Arrays", Difficulty: "Easy", Sort: "none"},
		{Sort: "none"},
	}
	if diff := cmp.Diff(want, port.inputs); diff != "" {
		t.Fatalf("view inputs (-want +got):\n%s", diff)
	}
}

func TestStaleReloadIsDropped(t *testing.T) {
	t.Parallel()
	port := &fakeBrowse{}
	m := New(port, theme.For(false))

	stale := m.Reload()
	fresh := m.Reload()
	freshMsg := fresh().(LoadedMsg)
	m, _ = m.Update(freshMsg)

	staleMsg := stale().(LoadedMsg)
	staleMsg.Out = browsedto.ViewOutput{Total: 5}
	m, _ = m.Update(staleMsg)

	if m.Current(staleMsg) || !m.Current(freshMsg) {
		t.Fatalf("expected only the latest reload to be current")
	}
	if id, ok := m.SelectedID(); !ok || id != 4 {
		t.Fatalf("stale result replaced the table: %d %v", id, ok)
	}
	if m.out.Shown != 2 {
		t.Fatalf("expected the fresh result to stay, got %+v", m.out)
	}
}

func TestViewShowsCountAndDatasetDate(t *testing.T) {
	t.Parallel()
	port := &fakeBrowse{}
	m := New(port, theme.For(false))
	opts, _ := port.Options(context.Background())
	m, _ = m.Update(OptionsLoadedMsg{Options: opts})
	reload := m.Reload()
	m, _ = m.Update(reload())

	line := m.countLine()
	if !strings.HasPrefix(line, "Showing 2 of 5 problems") {
		t.Fatalf("unexpected count line %q", line)
	}
	if want := "last updated " + datasetUpdated.Local().Format("2006-01-02"); !strings.Contains(line, want) {
		t.Fatalf("count line %q should contain %q", line, want)
	}
}
