package dto

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ViewInput struct {
	Pattern       string
	Difficulty    string
	Company       string
	CompletedOnly bool
	Source        string
	Sort          string
}

type RowOutput struct {
	ID            int
	Title         string
	URL           string
	Patterns      []string
	Difficulty    string
	Companies     []CompanyOutput
	MoreCompanies int
	Premium       bool
	Completed     bool
	DateCompleted string
	Source        string
}

type CompanyOutput struct {
	Name      string
	Frequency float64
}

// String renders the company with how often it asks the problem, e.g.
// "Amazon (9)".
func (c CompanyOutput) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, strconv.FormatFloat(c.Frequency, 'f', -1, 64))
}

// CompanyPreview joins the previewed companies and appends "+N more" when
// some were left out.
func (r RowOutput) CompanyPreview() string {
	labels := make([]string, 0, len(r.Companies))
	for _, c := range r.Companies {
		labels = append(labels, c.String())
	}
	preview := strings.Join(labels, ", ")
	if r.MoreCompanies > 0 {
		preview += fmt.Sprintf(" +%d more", r.MoreCompanies)
	}
	return preview
}

type ViewOutput struct {
	Rows  []RowOutput
	Shown int
	Total int
}

type OptionsOutput struct {
	Patterns     []string
	Companies    []string
	Difficulties []string
	Updated      time.Time
}
