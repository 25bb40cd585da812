package domain

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

const problemURLPrefix = "https://leetcode.com/problems/"

type Company struct {
	Name      string
	Slug      string
	Frequency float64
}

type Problem struct {
	ID         int
	Title      string
	Slug       string
	Patterns   []string
	Difficulty Difficulty
	Companies  []Company
	Premium    bool
}

func (p Problem) URL() string {
	return problemURLPrefix + p.Slug + "/"
}

// Dataset is the ordered, read-only problem list shipped with a release.
type Dataset struct {
	Updated  time.Time
	Problems []Problem
}

func (d Dataset) Find(id int) (Problem, bool) {
	for _, p := range d.Problems {
		if p.ID == id {
			return p, true
		}
	}
	return Problem{}, false
}
