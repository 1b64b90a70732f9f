// Package mfr defines manufacturer handlers and the builtin vendor catalog.
//
// A [Manufacturer] is a data value with optional capability funcs:
// declarative rule tables for the common case, override funcs for
// vendor-specific exceptions no generic pattern can express. Handlers are registered statically in [Builtin]; there is no
// runtime discovery, and the list order is the resolution order.
//
// A [Catalog] compiles a handler list into the immutable form the resolver
// consumes: validated identities, compiled prefix rules, and a populated
// owner-scoped pattern registry.
package mfr
