// Demo replays a workload script against a Sequence step by step, printing
// the container state after each op so the growth/shrink policy is visible,
// then saves a final snapshot.
//
// With no arguments it runs a built-in script that walks the capacity
// through a double and a halve; pass a YAML script path to replay that
// instead.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/comalice/sequencex"
	"github.com/comalice/sequencex/internal/persist"
	"github.com/comalice/sequencex/internal/workload"
)

func builtinScript() workload.Script {
	b := workload.NewScript("demo").WithCapacity(4)
	for i := 1; i <= 5; i++ {
		b.Append(i * 10) // fifth append doubles 4 -> 8
	}
	b.Insert(0, 5)
	b.Remove(3)
	b.RemoveBack()
	b.RemoveBack()
	b.RemoveBack() // lands on the 25% boundary, 8 -> 4
	return b.Build()
}

func main() {
	script := builtinScript()
	if len(os.Args) > 1 {
		var err error
		script, err = workload.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "load script: %v\n", err)
			os.Exit(1)
		}
	}

	seq := workload.NewSequence(script)
	fmt.Printf("script %q: %d ops, starting capacity %d\n\n",
		script.Name, len(script.Ops), seq.Cap())

	for i, op := range script.Ops {
		single := workload.Script{Name: script.Name, Ops: []workload.Op{op}}
		res, err := workload.Run(seq, single)
		if err != nil {
			fmt.Fprintf(os.Stderr, "op %d: %v\n", i, err)
			os.Exit(1)
		}
		status := "ok"
		if res.Rejected > 0 {
			status = "rejected"
		}
		fmt.Printf("%3d %-10s %-8s len=%-3d cap=%-3d [%s]\n",
			i, op.Op, status, seq.Len(), seq.Cap(), seq)
	}

	path := filepath.Join(os.TempDir(), script.Name+".json")
	if err := persist.SaveJSON(path, seq.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "save snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nsnapshot saved to %s\n", path)

	// Round-trip the snapshot as a sanity check.
	snap, err := persist.LoadJSON[int](path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load snapshot: %v\n", err)
		os.Exit(1)
	}
	restored := sequencex.New[int]()
	if err := restored.Restore(snap); err != nil {
		fmt.Fprintf(os.Stderr, "restore snapshot: %v\n", err)
		os.Exit(1)
	}
	if !sequencex.Equal(seq, restored) {
		fmt.Fprintln(os.Stderr, "restored sequence differs from original")
		os.Exit(1)
	}
	fmt.Println("snapshot round-trip verified")

	// Demonstrate the recoverable error surface.
	if _, err := seq.At(seq.Len()); errors.Is(err, sequencex.ErrOutOfRange) {
		fmt.Printf("checked access past the end: %v\n", err)
	}
}
