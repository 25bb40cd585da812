package dto

import "time"

type CompanyOutput struct {
	Name      string
	Slug      string
	Frequency float64
}

type ProblemOutput struct {
	ID         int
	Title      string
	Slug       string
	URL        string
	Patterns   []string
	Difficulty string
	Companies  []CompanyOutput
	Premium    bool
}

type DatasetOutput struct {
	Updated  time.Time
	Problems []ProblemOutput
}
