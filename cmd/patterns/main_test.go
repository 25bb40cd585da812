package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, dataDir string, stdin string, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--data-dir", dataDir, "--backend", "file"}, args...))
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("patterns %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestCompletionLifecycle(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if got := run(t, dir, "", "done", "1"); !strings.HasPrefix(got, "completed 1 ") || !strings.Contains(got, "(help)") {
		t.Fatalf("unexpected done output %q", got)
	}
	if got := run(t, dir, "", "source", "1"); !strings.Contains(got, "solved with own") {
		t.Fatalf("unexpected source output %q", got)
	}
	list := run(t, dir, "", "list", "--completed")
	if !strings.Contains(list, "Showing 1 of 20 problems") {
		t.Fatalf("unexpected list output %q", list)
	}

	export := run(t, dir, "", "export")
	if !strings.Contains(export, `"1":{"dateCompleted":`) || !strings.Contains(export, `"solutionSource":"own"`) {
		t.Fatalf("unexpected export %q", export)
	}

	if got := run(t, dir, "n\n", "clear"); !strings.Contains(got, "cancelled") {
		t.Fatalf("declined clear should cancel, got %q", got)
	}
	if got := run(t, dir, "", "list", "--completed"); !strings.Contains(got, "Showing 1 of 20 problems") {
		t.Fatalf("declined clear must keep records, got %q", got)
	}
	if got := run(t, dir, "", "clear", "--yes"); !strings.Contains(got, "cleared 1 completed problems") {
		t.Fatalf("unexpected clear output %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "state", "completedProblems.json")); !os.IsNotExist(err) {
		t.Fatalf("expected the persisted key to be removed, stat err=%v", err)
	}
}

func TestLegacyImportAndTheme(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	legacy := filepath.Join(dir, "old.json")
	if err := os.WriteFile(legacy, []byte(`["2", 3]`), 0o644); err != nil {
		t.Fatalf("write legacy: %v", err)
	}
	if got := run(t, dir, "", "import", legacy); !strings.Contains(got, "imported 2 records (legacy format)") {
		t.Fatalf("unexpected import output %q", got)
	}
	if got := run(t, dir, "", "theme"); strings.TrimSpace(got) != "light" {
		t.Fatalf("default theme should be light, got %q", got)
	}
	run(t, dir, "", "theme", "toggle")
	if got := run(t, dir, "", "theme"); strings.TrimSpace(got) != "dark" {
		t.Fatalf("expected dark after toggle, got %q", got)
	}
}

func TestReportPreservesNotes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	run(t, dir, "", "done", "0")
	note := filepath.Join(dir, "progress.md")
	if err := os.WriteFile(note, []byte("# My prep\n\nkeep me\n"), 0o644); err != nil {
		t.Fatalf("write note: %v", err)
	}
	run(t, dir, "", "report", note)
	run(t, dir, "", "report", note)

	raw, err := os.ReadFile(note)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "keep me") || !strings.Contains(content, "completed: 1") {
		t.Fatalf("unexpected report:\n%s", content)
	}
	if strings.Count(content, "1 of 20 problems completed.") != 1 {
		t.Fatalf("generated block duplicated:\n%s", content)
	}
}

func TestUnknownProblemIsRejected(t *testing.T) {
	t.Parallel()
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--data-dir", t.TempDir(), "--backend", "memory", "done", "99999"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected unknown problem error")
	}
}
