package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"patterns/internal/modules/catalog/domain"
	catalogout "patterns/internal/modules/catalog/port/out"
)

//go:embed data/questions.json
var bundledQuestions []byte

// fixtureFile is the on-disk dataset shape. JSON fixtures decode through the
// YAML decoder as well, so one set of tags serves both formats.
type fixtureFile struct {
	Updated string           `yaml:"updated"`
	Data    []fixtureProblem `yaml:"data"`
}

type fixtureProblem struct {
	ID         int              `yaml:"id"`
	Title      string           `yaml:"title"`
	Slug       string           `yaml:"slug"`
	Pattern    []string         `yaml:"pattern"`
	Difficulty string           `yaml:"difficulty"`
	Premium    bool             `yaml:"premium"`
	Companies  []fixtureCompany `yaml:"companies"`
}

type fixtureCompany struct {
	Name      string  `yaml:"name"`
	Slug      string  `yaml:"slug"`
	Frequency float64 `yaml:"frequency"`
}

// FixtureDatasetSource reads the problem list from a static fixture. An empty
// path selects the dataset bundled into the binary.
type FixtureDatasetSource struct {
	path string
}

func NewFixtureDatasetSource(path string) catalogout.DatasetSource {
	return &FixtureDatasetSource{path: path}
}

func (s *FixtureDatasetSource) Load(_ context.Context) (domain.Dataset, error) {
	raw := bundledQuestions
	if strings.TrimSpace(s.path) != "" {
		content, err := os.ReadFile(s.path)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("read dataset: %w", err)
		}
		raw = content
	}
	return decodeFixture(raw)
}

func decodeFixture(raw []byte) (domain.Dataset, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return domain.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	ds := domain.Dataset{
		Updated:  parseUpdated(file.Updated),
		Problems: make([]domain.Problem, 0, len(file.Data)),
	}
	for _, item := range file.Data {
		companies := make([]domain.Company, 0, len(item.Companies))
		for _, c := range item.Companies {
			companies = append(companies, domain.Company{Name: c.Name, Slug: c.Slug, Frequency: c.Frequency})
		}
		ds.Problems = append(ds.Problems, domain.Problem{
			ID:         item.ID,
			Title:      item.Title,
			Slug:       item.Slug,
			Patterns:   item.Pattern,
			Difficulty: domain.Difficulty(item.Difficulty),
			Companies:  companies,
			Premium:    item.Premium,
		})
	}
	return ds, nil
}

func parseUpdated(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
