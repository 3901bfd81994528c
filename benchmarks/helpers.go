// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/sequencex/internal/workload"
)

// GenAppendScript creates a script of n tail insertions, the pure amortized-
// growth workload.
func GenAppendScript(n int) workload.Script {
	if n < 1 {
		n = 1
	}
	b := workload.NewScript(fmt.Sprintf("append_%d", n))
	for i := 0; i < n; i++ {
		b.Append(i)
	}
	return b.Build()
}

// GenChurnScript creates a script that grows to n elements and then
// alternates removals and insertions around the shrink boundary, forcing
// repeated reallocation in both directions.
func GenChurnScript(n int) workload.Script {
	if n < 4 {
		n = 4
	}
	b := workload.NewScript(fmt.Sprintf("churn_%d", n))
	for i := 0; i < n; i++ {
		b.Append(i)
	}
	for i := 0; i < n/2; i++ {
		b.RemoveBack()
	}
	for i := 0; i < n/2; i++ {
		b.Insert(0, i)
	}
	return b.Build()
}

// MustParseScript parses an inline YAML script, panicking on error. For
// benchmark setup only.
func MustParseScript(data string) workload.Script {
	var s workload.Script
	if err := yaml.Unmarshal([]byte(data), &s); err != nil {
		panic(fmt.Sprintf("parse script: %v", err))
	}
	if err := s.Validate(); err != nil {
		panic(fmt.Sprintf("validate script: %v", err))
	}
	return s
}
