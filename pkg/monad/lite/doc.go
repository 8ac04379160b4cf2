// Package lite lifts Maybe binds over channels for batch evaluation.
// Worker lines run on an ants goroutine pool; absent inputs pass through as
// Nothing without reaching the step.
//
// Common usage:
// - Run: bind a step over an input channel with a fixed number of lines
// - Collect: bind a step over a slice and keep the input order
// - Bind/Step: adapt steps into engines
package lite
