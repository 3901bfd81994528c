package workload

import (
	"strings"
	"testing"
)

func TestValidateAcceptsKnownOps(t *testing.T) {
	s := NewScript("ok").WithCapacity(4).
		Append(1).Insert(0, 2).Set(0, 3).Remove(0).RemoveBack().Clear().
		Build()
	if err := s.Validate(); err != nil {
		t.Errorf("valid script rejected: %v", err)
	}
}

func TestValidateRejectsBadScripts(t *testing.T) {
	cases := []struct {
		name   string
		script Script
		want   string
	}{
		{"missing name", Script{}, "name is required"},
		{"negative capacity", Script{Name: "x", Capacity: -1}, "negative capacity"},
		{"empty op kind", Script{Name: "x", Ops: []Op{{}}}, "empty kind"},
		{"unknown op kind", Script{Name: "x", Ops: []Op{{Op: "frobnicate"}}}, "unknown kind"},
	}
	for _, tc := range cases {
		err := tc.script.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: churn
capacity: 8
ops:
  - op: append
    value: 1
  - op: insert
    index: 0
    value: 2
  - op: removeBack
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name != "churn" || s.Capacity != 8 {
		t.Errorf("header = %s/%d, want churn/8", s.Name, s.Capacity)
	}
	if len(s.Ops) != 3 {
		t.Fatalf("ops = %d, want 3", len(s.Ops))
	}
	if s.Ops[1].Op != Insert || s.Ops[1].Index != 0 || s.Ops[1].Value != 2 {
		t.Errorf("op 1 = %+v, want insert 0 2", s.Ops[1])
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("name: x\nops:\n  - op: nope\n")); err == nil {
		t.Error("unknown op kind should fail Parse")
	}
	if _, err := Parse([]byte(":::not yaml")); err == nil {
		t.Error("malformed yaml should fail Parse")
	}
}

func TestBuilderOrderPreserved(t *testing.T) {
	s := NewScript("b").Append(1).Remove(0).Clear().Build()
	kinds := []OpKind{Append, Remove, Clear}
	if len(s.Ops) != len(kinds) {
		t.Fatalf("ops = %d, want %d", len(s.Ops), len(kinds))
	}
	for i, k := range kinds {
		if s.Ops[i].Op != k {
			t.Errorf("op %d = %s, want %s", i, s.Ops[i].Op, k)
		}
	}
}
