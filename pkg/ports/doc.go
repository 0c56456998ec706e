/*
Package ports defines the driven ports (interfaces) around the calculator.

These interfaces decouple the orchestration logic from external implementations,
allowing calculations to be persisted in memory, in Redis, or not at all.

# Key Interfaces

  - RunStore: persists and loads finished calculation Records.
*/
package ports
