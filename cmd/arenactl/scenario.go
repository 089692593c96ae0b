package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/arenakit/arena"
	"gopkg.in/yaml.v3"
)

// Scenario is a file-defined allocation workload: a list of allocations
// performed per cycle, released in bulk at the end of each cycle.
type Scenario struct {
	// Name identifies the scenario in output.
	Name string `yaml:"name"`

	// Cycles is the number of allocate/release rounds. Defaults to 1.
	Cycles int `yaml:"cycles"`

	// Allocations run in order within each cycle.
	Allocations []Allocation `yaml:"allocations"`
}

// Allocation is one registry operation in a scenario.
type Allocation struct {
	// Kind selects the operation: "array", "object", or "block".
	Kind string `yaml:"kind"`

	// Type is the array element type: int64, float64, byte, or string.
	Type string `yaml:"type,omitempty"`

	// Count is the array element count.
	Count int `yaml:"count,omitempty"`

	// Size is the block size in bytes.
	Size int `yaml:"size,omitempty"`

	// ID and Ratio initialize object allocations.
	ID    int     `yaml:"id,omitempty"`
	Ratio float64 `yaml:"ratio,omitempty"`
}

// record is the composite type scenario objects allocate.
type record struct {
	id    int
	ratio float64
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Cycles == 0 {
		s.Cycles = 1
	}
	return &s, nil
}

// Validate checks scenario fields before execution, so file mistakes surface
// as scenario errors rather than mid-run registry errors.
func (s *Scenario) Validate() error {
	if s.Cycles < 0 {
		return fmt.Errorf("scenario %q: cycles must not be negative, got %d", s.Name, s.Cycles)
	}
	if len(s.Allocations) == 0 {
		return fmt.Errorf("scenario %q: no allocations defined", s.Name)
	}
	for i, a := range s.Allocations {
		switch a.Kind {
		case "array":
			switch a.Type {
			case "int64", "float64", "byte", "string":
			default:
				return fmt.Errorf("scenario %q: allocation %d: unsupported array type %q", s.Name, i, a.Type)
			}
			if a.Count <= 0 {
				return fmt.Errorf("scenario %q: allocation %d: count must be positive, got %d", s.Name, i, a.Count)
			}
		case "object":
			// ID and Ratio have no constraints.
		case "block":
			if a.Size <= 0 {
				return fmt.Errorf("scenario %q: allocation %d: size must be positive, got %d", s.Name, i, a.Size)
			}
		default:
			return fmt.Errorf("scenario %q: allocation %d: unknown kind %q", s.Name, i, a.Kind)
		}
	}
	return nil
}

// Execute runs the scenario against a fresh registry and returns the final
// metrics snapshot.
func (s *Scenario) Execute(opts *arena.Options) (arena.Metrics, error) {
	r := arena.New(opts)
	defer r.Close()

	for cycle := 1; cycle <= s.Cycles; cycle++ {
		for i, a := range s.Allocations {
			if err := applyAllocation(r, a); err != nil {
				return r.Metrics(), fmt.Errorf("cycle %d: allocation %d (%s): %w", cycle, i, a.Kind, err)
			}
		}
		if err := r.ReleaseAll(); err != nil {
			return r.Metrics(), fmt.Errorf("cycle %d: release: %w", cycle, err)
		}
	}
	return r.Metrics(), nil
}

// applyAllocation performs one scenario allocation. Arrays are filled with
// index-derived values so the pages are actually touched.
func applyAllocation(r *arena.Registry, a Allocation) error {
	switch a.Kind {
	case "array":
		switch a.Type {
		case "int64":
			s, err := arena.AllocArray[int64](r, a.Count)
			if err != nil {
				return err
			}
			for i := range s {
				s[i] = int64(i)
			}
		case "float64":
			s, err := arena.AllocArray[float64](r, a.Count)
			if err != nil {
				return err
			}
			for i := range s {
				s[i] = float64(i) * 0.1
			}
		case "byte":
			s, err := arena.AllocArray[byte](r, a.Count)
			if err != nil {
				return err
			}
			for i := range s {
				s[i] = byte(i)
			}
		case "string":
			s, err := arena.AllocArray[string](r, a.Count)
			if err != nil {
				return err
			}
			for i := range s {
				s[i] = fmt.Sprintf("item-%d", i)
			}
		default:
			return fmt.Errorf("unsupported array type %q", a.Type)
		}
	case "object":
		_, err := arena.AllocObject(r, func(rec *record) error {
			rec.id = a.ID
			rec.ratio = a.Ratio
			return nil
		})
		return err
	case "block":
		b, err := arena.AllocBlock(r, a.Size)
		if err != nil {
			return err
		}
		// Touch first and last byte to fault the pages in.
		b[0] = 1
		b[len(b)-1] = 1
	default:
		return fmt.Errorf("unknown kind %q", a.Kind)
	}
	return nil
}
