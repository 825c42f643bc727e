package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/visionkit/layoutparser"
	"github.com/visionkit/layoutparser/assert"
)

func writeFixture(t *testing.T, dir string, f Fixture) string {
	t.Helper()
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(dir, "fixture.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func simpleRowFixture() Fixture {
	input := *layoutparser.Container("Row", layoutparser.Frame{Left: 0, Top: 0, Width: 300, Height: 100, Right: 300, Bottom: 100},
		layoutparser.Leaf("a", layoutparser.Frame{Left: 10, Top: 25, Width: 80, Height: 50, Right: 90, Bottom: 75}),
		layoutparser.Leaf("b", layoutparser.Frame{Left: 110, Top: 25, Width: 80, Height: 50, Right: 190, Bottom: 75}),
		layoutparser.Leaf("c", layoutparser.Frame{Left: 210, Top: 25, Width: 80, Height: 50, Right: 290, Bottom: 75}),
	)
	return Fixture{
		Version: schemaVersion,
		ID:      "simple-row",
		Title:   "Three children form a row",
		Input:   input,
		Assertions: []assert.Assertion{
			{Expression: `getLayoutType("root") == "row"`},
			{Expression: `getGap("root") == 20.0`},
		},
	}
}

func TestLoadFixtureRejectsWrongVersion(t *testing.T) {
	dir := t.TempDir()
	f := simpleRowFixture()
	f.Version = "0.9.0"
	path := writeFixture(t, dir, f)
	if _, err := LoadFixture(path); err == nil {
		t.Fatalf("expected version mismatch to fail")
	}
}

func TestLoadFixtureAndRun(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, simpleRowFixture())

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture failed: %v", err)
	}
	results, err := f.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("expected assertion to pass: %+v", r)
		}
	}
}
