package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeScenarioFile writes scenario YAML to a temp file and returns its path.
func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		wantErrPart string
		wantCycles  int
		wantAllocs  int
	}{
		{
			name: "valid mixed scenario",
			yaml: `name: mixed
cycles: 2
allocations:
  - kind: array
    type: int64
    count: 100
  - kind: object
    id: 42
    ratio: 3.14
  - kind: block
    size: 4096
`,
			wantCycles: 2,
			wantAllocs: 3,
		},
		{
			name: "cycles defaults to one",
			yaml: `name: single
allocations:
  - kind: array
    type: byte
    count: 16
`,
			wantCycles: 1,
			wantAllocs: 1,
		},
		{
			name: "no allocations",
			yaml: `name: empty
cycles: 1
allocations: []
`,
			wantErr:     true,
			wantErrPart: "no allocations",
		},
		{
			name: "unknown kind",
			yaml: `name: bad
allocations:
  - kind: stack
    count: 4
`,
			wantErr:     true,
			wantErrPart: "unknown kind",
		},
		{
			name: "unsupported array type",
			yaml: `name: bad
allocations:
  - kind: array
    type: complex128
    count: 4
`,
			wantErr:     true,
			wantErrPart: "unsupported array type",
		},
		{
			name: "non-positive count",
			yaml: `name: bad
allocations:
  - kind: array
    type: int64
    count: 0
`,
			wantErr:     true,
			wantErrPart: "count must be positive",
		},
		{
			name: "non-positive block size",
			yaml: `name: bad
allocations:
  - kind: block
    size: -1
`,
			wantErr:     true,
			wantErrPart: "size must be positive",
		},
		{
			name:        "malformed yaml",
			yaml:        "allocations: [kind: {",
			wantErr:     true,
			wantErrPart: "parse scenario",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeScenarioFile(t, tt.yaml)

			s, err := LoadScenario(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got scenario %+v", s)
				}
				if !strings.Contains(err.Error(), tt.wantErrPart) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.wantErrPart)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadScenario: %v", err)
			}
			if s.Cycles != tt.wantCycles {
				t.Errorf("cycles = %d, want %d", s.Cycles, tt.wantCycles)
			}
			if len(s.Allocations) != tt.wantAllocs {
				t.Errorf("allocations = %d, want %d", len(s.Allocations), tt.wantAllocs)
			}
		})
	}
}

func TestLoadScenario_Testdata(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "mixed.yaml"))
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if s.Name != "mixed" {
		t.Errorf("name = %q, want %q", s.Name, "mixed")
	}
	if len(s.Allocations) != 4 {
		t.Errorf("allocations = %d, want 4", len(s.Allocations))
	}

	metrics, err := s.Execute(nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if metrics.Cycles != 2 {
		t.Errorf("cycles = %d, want 2", metrics.Cycles)
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "read scenario") {
		t.Fatalf("error %q should mention the read step", err.Error())
	}
}

func TestScenarioExecute(t *testing.T) {
	s := &Scenario{
		Name:   "exec",
		Cycles: 2,
		Allocations: []Allocation{
			{Kind: "array", Type: "int64", Count: 100},
			{Kind: "array", Type: "float64", Count: 200},
			{Kind: "array", Type: "string", Count: 8},
			{Kind: "object", ID: 42, Ratio: 3.14},
			{Kind: "block", Size: 4096},
		},
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	metrics, err := s.Execute(nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if metrics.LiveEntries != 0 {
		t.Errorf("live entries = %d, want 0 after final release", metrics.LiveEntries)
	}
	if want := int64(2 * 5); metrics.TotalAllocs != want {
		t.Errorf("total allocs = %d, want %d", metrics.TotalAllocs, want)
	}
	if metrics.TotalReleased != metrics.TotalAllocs {
		t.Errorf("released = %d, want %d", metrics.TotalReleased, metrics.TotalAllocs)
	}
	if metrics.Cycles != 2 {
		t.Errorf("cycles = %d, want 2", metrics.Cycles)
	}
}

func TestScenarioExecute_ZeroCycles(t *testing.T) {
	s := &Scenario{
		Name:        "noop",
		Cycles:      0,
		Allocations: []Allocation{{Kind: "block", Size: 64}},
	}

	metrics, err := s.Execute(nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if metrics.TotalAllocs != 0 {
		t.Errorf("total allocs = %d, want 0 for zero cycles", metrics.TotalAllocs)
	}
}
