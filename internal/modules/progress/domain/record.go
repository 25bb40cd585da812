package domain

import (
	"fmt"
	"maps"
)

// StorageKey is the persisted key holding the completion map.
const StorageKey = "completedProblems"

type SolutionSource string

const (
	SourceOwn  SolutionSource = "own"
	SourceHelp SolutionSource = "help"
)

func (s SolutionSource) Validate() error {
	switch s {
	case SourceOwn, SourceHelp:
		return nil
	default:
		return fmt.Errorf("unsupported solution source %q", string(s))
	}
}

func (s SolutionSource) Flip() SolutionSource {
	if s == SourceOwn {
		return SourceHelp
	}
	return SourceOwn
}

// Record marks a problem as completed. Its presence is the completion flag.
type Record struct {
	DateCompleted string         `json:"dateCompleted"`
	Source        SolutionSource `json:"solutionSource"`
}

func NewRecord(today string) Record {
	return Record{DateCompleted: today, Source: SourceHelp}
}

// Store maps problem ids to completion records. It has no foreign key to the
// dataset: any id is accepted.
type Store struct {
	records map[int]Record
}

func NewStore() *Store {
	return &Store{records: map[int]Record{}}
}

func (s *Store) Clone() *Store {
	return &Store{records: maps.Clone(s.records)}
}

func (s *Store) Get(id int) (Record, bool) {
	r, ok := s.records[id]
	return r, ok
}

func (s *Store) Len() int {
	return len(s.records)
}

// ToggleCompleted removes an existing record or creates one dated today with
// the default solution source. It reports whether a record now exists.
func (s *Store) ToggleCompleted(id int, today string) bool {
	if _, ok := s.records[id]; ok {
		delete(s.records, id)
		return false
	}
	s.records[id] = NewRecord(today)
	return true
}

// ToggleSolutionSource flips own/help on an existing record. It reports false
// and leaves the store untouched when id is not completed.
func (s *Store) ToggleSolutionSource(id int) bool {
	r, ok := s.records[id]
	if !ok {
		return false
	}
	r.Source = r.Source.Flip()
	s.records[id] = r
	return true
}

func (s *Store) Clear() {
	clear(s.records)
}

// Replace swaps in a copy of other's records.
func (s *Store) Replace(other *Store) {
	s.records = maps.Clone(other.records)
}

// Prune drops ids absent from known and returns them.
func (s *Store) Prune(known map[int]struct{}) []int {
	var dropped []int
	for id := range s.records {
		if _, ok := known[id]; !ok {
			dropped = append(dropped, id)
			delete(s.records, id)
		}
	}
	return dropped
}

// Records returns a copy of the underlying map.
func (s *Store) Records() map[int]Record {
	return maps.Clone(s.records)
}

// LoadReport describes how a persisted blob was normalized.
type LoadReport struct {
	Shape     Shape
	Count     int
	Pruned    []int
	Dropped   []string
	Repaired  []int
	Recovered bool
}
