package mfr

// Builtin returns the builtin handler list in its canonical resolution
// order. The order is part of the public contract: several resolution steps
// use first-match-in-order-wins semantics, so reordering entries changes
// answers for structurally ambiguous MPNs.
//
// Broad-line semiconductor vendors come first (they own the most contested
// prefix space), then microcontroller and memory specialists, then passive
// and electromechanical vendors whose numbering schemes rarely collide.
func Builtin() []*Manufacturer {
	var ms []*Manufacturer
	ms = append(ms, microVendors()...)
	ms = append(ms, analogVendors()...)
	ms = append(ms, memoryVendors()...)
	ms = append(ms, passiveVendors()...)
	ms = append(ms, connectorVendors()...)
	return ms
}
