// Package resolve implements manufacturer resolution and component-type
// arbitration over MPN strings.
//
// An [Engine] is built once from the builtin handler catalog (optionally
// extended by a user rule catalog) and is immutable and safe for concurrent
// use afterwards. [Default] provides a process-wide engine behind an
// init-once gate.
//
// # Resolution policy
//
// Manufacturer resolution runs a strict priority ladder; the first hit wins:
//
//  1. Hard special cases for well-known ambiguous families. These are
//     policy, not inference: a generic scorer cannot safely arbitrate the
//     legacy prefix space (LM, MC, 1N…), so the historically correct vendor
//     is pinned explicitly.
//  2. Coarse prefix-rule match, iterating handlers in catalog order.
//  3. Any owned component-type pattern, same order.
//  4. Embedded substring hints.
//  5. The Unknown sentinel. Resolution never fails and never panics; a
//     misbehaving handler is logged and skipped.
//
// # Normalization
//
// Every public entry point applies the same contract: trim ASCII whitespace
// and uppercase. Hyphens and slashes are preserved: they separate package
// and option fields, and stripping them would conflate distinct variants
// (AT24C256-10PU vs a hypothetical AT24C25610PU).
package resolve
