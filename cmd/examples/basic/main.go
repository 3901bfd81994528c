// Basic walkthrough of the Sequence API.
package main

import (
	"fmt"

	"github.com/comalice/sequencex"
)

func main() {
	s := sequencex.New[string]()
	s.Append("alpha")
	s.Append("gamma")
	if err := s.Insert(1, "beta"); err != nil {
		panic(err)
	}
	fmt.Println("contents:", s) // alpha beta gamma
	fmt.Printf("len=%d cap=%d\n", s.Len(), s.Cap())

	first, _ := s.Front()
	last, _ := s.Back()
	fmt.Println("front:", first, "back:", last)

	for i, v := range s.All() {
		fmt.Printf("  [%d] %s\n", i, v)
	}

	other := s.Clone()
	other.Append("delta")
	fmt.Println("clone extended:", other)
	fmt.Println("original intact:", s)
	fmt.Println("equal:", sequencex.Equal(s, other))

	joined := sequencex.Concat(s, other)
	fmt.Println("concat:", joined)

	if err := s.RemoveBack(); err != nil {
		panic(err)
	}
	fmt.Println("after RemoveBack:", s)

	if _, err := s.At(99); err != nil {
		fmt.Println("checked access:", err)
	}
}
