package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"refinance-agent/domain"
)

//go:embed fixtures/demo.yaml
var demoFixtures []byte

type fixtureFile struct {
	Loans    []domain.Record `yaml:"loans"`
	Products []domain.Record `yaml:"products"`
}

// FixtureSource serves a static dataset for demo mode.
type FixtureSource struct {
	loans    []domain.Record
	products []domain.Record
}

// LoadFixtureSource reads the dataset at path, or the built-in demo dataset
// when path is empty.
func LoadFixtureSource(path string) (*FixtureSource, error) {
	if path == "" {
		return NewFixtureSource(demoFixtures)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	return NewFixtureSource(data)
}

func NewFixtureSource(data []byte) (*FixtureSource, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &FixtureSource{loans: file.Loans, products: file.Products}, nil
}

func (s *FixtureSource) Snapshot(_ context.Context, _ string) (Snapshot, error) {
	return Snapshot{
		Demo:     true,
		Loans:    s.loans,
		Products: s.products,
	}, nil
}
