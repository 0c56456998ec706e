package turing_test

import (
	"fmt"
	"log"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/tables"
)

func ExampleRun() {
	cfg, err := turing.Initialize("101 11")
	if err != nil {
		log.Fatal(err)
	}

	final, exhausted := turing.Run(cfg, tables.Addition())

	fmt.Println("exhausted:", exhausted)
	fmt.Println("head:", final.Head, "state:", final.State)
	fmt.Println(turing.Inspect(final, 2))
	// Output:
	// exhausted: false
	// head: 3 state: 0
	// [0 1 _ 1 1]
}

func ExampleMachine_Execute() {
	m := turing.New()

	cfg, err := m.Initialize("1 1")
	if err != nil {
		log.Fatal(err)
	}

	res := m.Execute(cfg, tables.Multiplication())
	fmt.Println(res.Reason, res.Steps, res.Config.Tape.Trimmed())
	// Output: stuck 1 0 1
}
