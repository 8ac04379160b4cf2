// Package arith contains the numeric steps used to exercise monad chains:
// squaring, doubling and a square root that yields Nothing for negative
// input instead of failing.
//
// Steps are also registered by name (see Lookup) so chains can be assembled
// from configuration.
package arith
