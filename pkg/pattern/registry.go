// Package pattern implements the owner-scoped match-pattern registry.
//
// Every manufacturer handler registers its component-type patterns under its
// own identity. The registry answers two distinct questions:
//
//   - [Registry.MatchesAny]: does any owner's pattern for a type match?
//   - [Registry.MatchesOwner]: does this specific owner's pattern match?
//
// Keeping the two separate is load-bearing: two vendors routinely register
// patterns for the same generic type, and an owner-scoped query satisfied by
// another owner's rule would misattribute parts between vendors.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/partscout/partscout/pkg/component"
)

// Owner identifies the handler that registered a pattern.
type Owner string

type key struct {
	owner Owner
	typ   component.Type
}

// Registry maps (owner, component type) to compiled match patterns.
// A Registry is populated once during startup and is safe for concurrent
// reads afterwards; Register must not be called after the first query.
type Registry struct {
	entries map[key][]*regexp.Regexp
	byType  map[component.Type][]*regexp.Regexp
	order   map[Owner][]component.Type
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[key][]*regexp.Regexp),
		byType:  make(map[component.Type][]*regexp.Regexp),
		order:   make(map[Owner][]component.Type),
	}
}

// Register compiles expr case-insensitively and records it under
// (owner, typ). Returns an error for malformed expressions.
func (r *Registry) Register(owner Owner, typ component.Type, expr string) error {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return fmt.Errorf("pattern for %s/%s: %w", owner, typ, err)
	}

	k := key{owner: owner, typ: typ}
	if len(r.entries[k]) == 0 {
		r.order[owner] = append(r.order[owner], typ)
	}
	r.entries[k] = append(r.entries[k], re)
	r.byType[typ] = append(r.byType[typ], re)
	return nil
}

// MatchesAny reports whether any owner's pattern for typ matches mpn.
// The MPN is uppercased before evaluation.
func (r *Registry) MatchesAny(mpn string, typ component.Type) bool {
	mpn = strings.ToUpper(mpn)
	for _, re := range r.byType[typ] {
		if re.MatchString(mpn) {
			return true
		}
	}
	return false
}

// MatchesOwner reports whether owner's own registration for typ matches mpn.
// Registrations made by other owners never satisfy this query, even when
// MatchesAny would return true.
func (r *Registry) MatchesOwner(owner Owner, mpn string, typ component.Type) bool {
	mpn = strings.ToUpper(mpn)
	for _, re := range r.entries[key{owner: owner, typ: typ}] {
		if re.MatchString(mpn) {
			return true
		}
	}
	return false
}

// Types returns the component types owner has registered patterns for, in
// registration order. The order is stable across runs; the type arbiter
// relies on it for deterministic tie-breaking.
func (r *Registry) Types(owner Owner) []component.Type {
	return r.order[owner]
}
