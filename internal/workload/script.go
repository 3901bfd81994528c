// Package workload defines declarative operation scripts for driving a
// Sequence: a Script is a named list of container operations with an
// optional starting capacity, loadable from YAML or JSON, validated before
// use, and replayable against a live container.
//
// Scripts serve the demo binaries, the benchmark helpers, and differential
// tests, so the same op stream can be applied to different container
// implementations.
package workload

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OpKind names a container operation a script step may perform.
type OpKind string

const (
	Append     OpKind = "append"
	Insert     OpKind = "insert"
	Remove     OpKind = "remove"
	RemoveBack OpKind = "removeBack"
	Set        OpKind = "set"
	Clear      OpKind = "clear"
)

// Op is one script step. Index applies to insert/remove/set; Value applies
// to append/insert/set.
type Op struct {
	Op    OpKind `json:"op" yaml:"op"`
	Index int    `json:"index,omitempty" yaml:"index,omitempty"`
	Value int    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Script is an ordered operation list for a single container run.
type Script struct {
	Name     string `json:"name" yaml:"name"`
	Capacity int    `json:"capacity,omitempty" yaml:"capacity,omitempty"` // 0 means the container default
	Ops      []Op   `json:"ops" yaml:"ops"`
}

// Validate checks the script for structural problems: unknown op kinds and
// negative capacity. Index bounds are not checked here; they depend on the
// container state at replay time and rejection there is part of what a
// script exercises.
func (s *Script) Validate() error {
	if s.Name == "" {
		return errors.New("script name is required")
	}
	if s.Capacity < 0 {
		return fmt.Errorf("script %s: negative capacity %d", s.Name, s.Capacity)
	}
	for i, op := range s.Ops {
		switch op.Op {
		case Append, Insert, Remove, RemoveBack, Set, Clear:
		case "":
			return fmt.Errorf("script %s: op %d has empty kind", s.Name, i)
		default:
			return fmt.Errorf("script %s: op %d has unknown kind %q", s.Name, i, op.Op)
		}
	}
	return nil
}

// Parse decodes a YAML script and validates it.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Load reads and parses a YAML script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}
