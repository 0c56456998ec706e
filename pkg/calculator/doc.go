/*
Package calculator orchestrates one binary calculation end to end.

It validates the operands, enforces the operation's preconditions, runs the
selected transition table on the machine, scans the finished tape, computes the
independent decimal cross-check and optionally persists the resulting Record.
The CLI, HTTP and MCP adapters all go through a Calculator.
*/
package calculator
