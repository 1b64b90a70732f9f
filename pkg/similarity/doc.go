// Package similarity scores the substitutability of two parts from their
// MPN strings on a [0,1] scale.
//
// A fixed-priority list of per-family calculators is consulted for each
// pair. A calculator declares itself applicable through a capability test
// over the resolved part facts; the first applicable calculator is
// authoritative, even when its answer is 0.0. Pairs no family calculator
// claims fall through to a generic blend over base type, manufacturer and
// series.
//
// Scoring is pure and synchronous. Identical non-empty MPNs score 1.0,
// empty input scores 0.0, and every result is clamped to [0,1].
package similarity
