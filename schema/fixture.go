// Package schema loads fixture files describing one layout-inference test
// case: an input NodeSchema tree plus a set of CEL assertions the
// annotated output is expected to satisfy. The format is a generalization
// of the WPT (Web Platform Tests) universal JSON schema to this engine's
// inference domain.
package schema

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/visionkit/layoutparser"
	"github.com/visionkit/layoutparser/assert"
)

// Fixture is one test case: a source tree to run through LayoutParser, and
// the assertions its annotated output must satisfy.
type Fixture struct {
	Version     string             `json:"version"`
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Source      Source             `json:"source"`
	Tags        []string           `json:"tags,omitempty"`
	Input       layoutparser.NodeSchema `json:"input"`
	Assertions  []assert.Assertion `json:"assertions"`
	Notes       []string           `json:"notes,omitempty"`
}

// Source tracks where the fixture came from, mirroring the WPT test
// format's provenance fields.
type Source struct {
	URL  string  `json:"url,omitempty"`
	File string  `json:"file,omitempty"`
	Tool string  `json:"tool,omitempty"`
}

// schemaVersion is the only fixture schema version this loader accepts.
const schemaVersion = "1.0.0"

// LoadFixture reads and validates a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if f.Version != schemaVersion {
		return nil, fmt.Errorf("unsupported fixture schema version %q (expected %q)", f.Version, schemaVersion)
	}
	return &f, nil
}

// Run executes the fixture: clones the input tree, runs LayoutParser, and
// evaluates every assertion against the result.
func (f *Fixture) Run() ([]assert.Result, error) {
	data, err := json.Marshal(f.Input)
	if err != nil {
		return nil, fmt.Errorf("clone input: %w", err)
	}
	var root layoutparser.NodeSchema
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("clone input: %w", err)
	}
	annotated := layoutparser.LayoutParser(&root)

	env, err := assert.NewEnv(annotated)
	if err != nil {
		return nil, fmt.Errorf("build assertion env: %w", err)
	}
	return env.EvalAll(f.Assertions), nil
}
