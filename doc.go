/*
Package turing simulates a single-tape, single-head Turing machine over the alphabet
{0, 1, blank}, driven by one of four fixed transition tables (addition, subtraction,
multiplication, division).

# Concept

Two binary operands are written onto a tape separated by a blank. The machine starts
on cell 0 in state 0 and repeatedly reads the cell under the head, looks up the
transition, writes, moves (clamped to the tape ends) and changes state. A run stops
when the table's terminal state is reached, when the head rests on a blank (a stuck
halt), or after StepLimit transitions.

The core never interprets the tape. Scanning for binary numbers, decimal
cross-checks and rendering live in separate packages (arith, calculator,
internal/presentation).

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/turing"
		"github.com/aretw0/turing/pkg/tables"
	)

	func main() {
		cfg, err := turing.Initialize("101 11")
		if err != nil {
			log.Fatal(err)
		}

		final, exhausted := turing.Run(cfg, tables.Addition())
		if exhausted {
			log.Println("step limit reached")
		}
		fmt.Println(turing.Inspect(final, 20))
	}
*/
package turing
