// Package core contains plumbing shared by chain and lite: channel helpers,
// logger and worker configuration carried in a context, and the locomotive
// loop that drives a bind step over a channel. It holds no chain semantics of
// its own.
package core
