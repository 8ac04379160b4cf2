// Package chain provides a fluent wrapper around monad.Maybe for building
// context-aware chains.
//
// Key operations:
// - Start/FromValue: begin a chain from a Maybe or a value
// - Bind/Then: apply a step returning a Maybe, skipped once absent
// - Map: transform the held value
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via both branches
//
// Every chain carries an id and its step count; applied steps are logged at
// debug level on the logger found in the context (see core.WithLogger).
package chain
