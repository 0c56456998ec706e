/*
Package observability provides tools for monitoring the Turing machine.

It turns engine lifecycle hooks into Prometheus metrics: runs by halt reason,
executed steps, and the step-count distribution per table.
*/
package observability
