package similarity

import (
	"strings"

	"github.com/partscout/partscout/pkg/component"
)

// =============================================================================
// Small-signal bipolar transistors
// =============================================================================

// transistorEquivalents groups part numbers that are accepted drop-in
// substitutes across the JEDEC 2N, European BC and vendor-house numbering
// schemes. Prefix match, so package variants (BC547B, 2N3904TA) land in
// the same group as the bare number.
var transistorEquivalents = [][]string{
	{"2N3904", "BC547", "KSC1815", "MMBT3904"},
	{"2N3906", "BC557", "KSA1015", "MMBT3906"},
	{"2N2222", "PN2222", "KSP2222", "MMBT2222"},
	{"2N7000", "BSS138", "2N7002"},
	{"BC337", "2N4401", "MMBT4401"},
	{"BC327", "2N4403", "MMBT4403"},
}

// npnGroups and pnpGroups partition the common small-signal numbering
// space by polarity. Everything outside both sets scores as unknown
// polarity rather than as a mismatch.
var (
	npnPrefixes = []string{"2N2222", "2N3904", "2N4401", "2N5551", "BC337", "BC546", "BC547", "BC548", "KSC", "MMBT3904", "MMBT2222", "MMBT4401", "PN2222"}
	pnpPrefixes = []string{"2N3906", "2N4403", "2N5401", "BC327", "BC556", "BC557", "BC558", "KSA", "MMBT3906", "MMBT4403"}
)

type polarity int

const (
	polarityUnknown polarity = iota
	polarityNPN
	polarityPNP
)

func transistorPolarity(mpn string) polarity {
	for _, p := range npnPrefixes {
		if strings.HasPrefix(mpn, p) {
			return polarityNPN
		}
	}
	for _, p := range pnpPrefixes {
		if strings.HasPrefix(mpn, p) {
			return polarityPNP
		}
	}
	return polarityUnknown
}

func transistorEquivalent(a, b string) bool {
	for _, group := range transistorEquivalents {
		inA, inB := false, false
		for _, base := range group {
			if strings.HasPrefix(a, base) {
				inA = true
			}
			if strings.HasPrefix(b, base) {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// transistorCalculator scores small-signal bipolar pairs. The curated
// equivalence groups carry most of the signal; outside them, matching
// polarity keeps parts loosely substitutable and opposite polarity is a
// near-total mismatch.
func transistorCalculator() Calculator {
	return Calculator{
		Name: "bipolar-transistor",
		Applicable: func(a, b Resolution) bool {
			return looksTransistor(a) && looksTransistor(b)
		},
		Score: func(a, b Resolution) float64 {
			if transistorEquivalent(a.MPN, b.MPN) {
				return 0.85
			}

			pa, pb := transistorPolarity(a.MPN), transistorPolarity(b.MPN)
			switch {
			case pa == polarityUnknown || pb == polarityUnknown:
				return 0.2
			case pa == pb:
				return 0.4
			}
			return 0.05
		},
	}
}

func looksTransistor(r Resolution) bool {
	switch r.Type {
	case component.Transistor2N, component.TransistorBC, component.BipolarTransistor:
		return true
	}
	return false
}
