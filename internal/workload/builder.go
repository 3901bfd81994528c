package workload

// ScriptBuilder provides a fluent API for constructing scripts in code
// instead of hand-writing YAML.
type ScriptBuilder struct {
	script Script
}

// NewScript creates a builder for a named script.
func NewScript(name string) *ScriptBuilder {
	return &ScriptBuilder{script: Script{Name: name}}
}

// WithCapacity sets the starting capacity for the container under test.
func (b *ScriptBuilder) WithCapacity(c int) *ScriptBuilder {
	b.script.Capacity = c
	return b
}

// Append adds a tail-insertion step.
func (b *ScriptBuilder) Append(v int) *ScriptBuilder {
	b.script.Ops = append(b.script.Ops, Op{Op: Append, Value: v})
	return b
}

// Insert adds an indexed insertion step.
func (b *ScriptBuilder) Insert(i, v int) *ScriptBuilder {
	b.script.Ops = append(b.script.Ops, Op{Op: Insert, Index: i, Value: v})
	return b
}

// Remove adds an indexed removal step.
func (b *ScriptBuilder) Remove(i int) *ScriptBuilder {
	b.script.Ops = append(b.script.Ops, Op{Op: Remove, Index: i})
	return b
}

// RemoveBack adds a tail-removal step.
func (b *ScriptBuilder) RemoveBack() *ScriptBuilder {
	b.script.Ops = append(b.script.Ops, Op{Op: RemoveBack})
	return b
}

// Set adds a checked overwrite step.
func (b *ScriptBuilder) Set(i, v int) *ScriptBuilder {
	b.script.Ops = append(b.script.Ops, Op{Op: Set, Index: i, Value: v})
	return b
}

// Clear adds a clear step.
func (b *ScriptBuilder) Clear() *ScriptBuilder {
	b.script.Ops = append(b.script.Ops, Op{Op: Clear})
	return b
}

// Build returns the assembled script.
func (b *ScriptBuilder) Build() Script {
	return b.script
}
