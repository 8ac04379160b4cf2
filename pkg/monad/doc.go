// Package monad provides two value wrappers that compose functions through
// bind.
//
// - Of/Identity: Bind hands the held value to the next step unconditionally
// - Just/Nothing/Maybe: Bind skips every step once the value is absent
// - Bind/BindMaybe/MapMaybe: type-changing forms of the Bind methods
// - Match: read a Maybe out through both of its branches
//
// Absence is data, not an error. Once a chain reaches Nothing, every further
// step is skipped and the chain ends Nothing.
package monad
