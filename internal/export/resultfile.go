// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litscout/pkg/types"
)

// ResultFile is the on-disk snapshot of a search and its records. Saving
// a search lets the researcher re-render or analyze it later without
// re-querying the API.
type ResultFile struct {
	Query   QueryParams    `yaml:"query"`
	Records []types.Record `yaml:"records"`
	Summary Summary        `yaml:"summary"`
}

// QueryParams stores the search parameters in a serializable form.
type QueryParams struct {
	Expression string `yaml:"expression"`
	MaxResults int    `yaml:"max_results"`
	MinYear    int    `yaml:"min_year"`
}

// Summary stores result statistics and a timestamp.
type Summary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves the query expression, search settings, and records
// to a YAML file.
func WriteResultFile(path, expression string, cfg types.SearchConfig, records []types.Record) error {
	rf := ResultFile{
		Query: QueryParams{
			Expression: expression,
			MaxResults: cfg.MaxResults,
			MinYear:    cfg.MinYear,
		},
		Records: records,
		Summary: Summary{
			Total:     len(records),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result file %s: %w", path, err)
	}
	return nil
}

// ReadResultFile loads a previously saved search snapshot.
func ReadResultFile(path string) (ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ResultFile{}, fmt.Errorf("reading result file %s: %w", path, err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return ResultFile{}, fmt.Errorf("parsing result file %s: %w", path, err)
	}
	return rf, nil
}
