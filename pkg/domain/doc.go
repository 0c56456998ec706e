/*
Package domain contains the core model of the Turing machine.

It defines the alphabet, the tape, the transition tables and the mutable machine
Configuration that an execution run threads through the step loop. The package is
kept pure: no I/O, no persistence, no logging.

# Key Entities

  - Symbol: one of Zero, One or Blank. Nothing else is ever written to a tape.
  - Tape: fixed-capacity cells addressed by integer position. Never resized.
  - Table: immutable (state, symbol) -> (next, write, move) lookup with an explicit terminal state.
  - Configuration: the (tape, head, state) snapshot owned by exactly one run.
  - Result: the final configuration plus the reason the run stopped.
*/
package domain
