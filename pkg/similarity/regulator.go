package similarity

import (
	"regexp"

	"github.com/partscout/partscout/pkg/component"
)

// =============================================================================
// Fixed linear regulators (78xx / 79xx)
// =============================================================================

// fixedRegRe parses the JEDEC-style fixed-regulator number shared across
// vendors: an optional alpha vendor prefix, the 78 (positive) or 79
// (negative) family, an optional current grade (M, L) and the two-digit
// output voltage.
var fixedRegRe = regexp.MustCompile(`^[A-Z]{0,3}(78|79)(M|L)?([0-9]{2})`)

type fixedReg struct {
	positive bool
	grade    string
	voltage  string
}

func parseFixedReg(mpn string) (fixedReg, bool) {
	m := fixedRegRe.FindStringSubmatch(mpn)
	if m == nil {
		return fixedReg{}, false
	}
	return fixedReg{
		positive: m[1] == "78",
		grade:    m[2],
		voltage:  m[3],
	}, true
}

// looksFixedReg accepts a part whose number parses as a fixed regulator
// and whose resolved type does not contradict it. MOSFET numbering reuses
// 79xx-style digits, so a resolved discrete type disqualifies the part.
func looksFixedReg(r Resolution) bool {
	if _, ok := parseFixedReg(r.MPN); !ok {
		return false
	}
	switch {
	case r.Type == component.Unknown:
		return true
	case r.Type == component.VoltageRegulator:
		return true
	case r.Type.Base() == component.VoltageRegulator:
		return true
	}
	return false
}

// regulatorCalculator scores fixed-regulator pairs. The number encodes the
// electrical contract, so two parts with the same polarity and voltage are
// near-perfect substitutes regardless of vendor prefix; a different voltage
// is a different part, and opposite polarity is close to useless.
func regulatorCalculator() Calculator {
	return Calculator{
		Name: "fixed-regulator",
		Applicable: func(a, b Resolution) bool {
			return looksFixedReg(a) && looksFixedReg(b)
		},
		Score: func(a, b Resolution) float64 {
			ra, _ := parseFixedReg(a.MPN)
			rb, _ := parseFixedReg(b.MPN)

			if ra.positive != rb.positive {
				return 0.1
			}
			if ra.voltage != rb.voltage {
				return 0.3
			}
			if ra.grade != rb.grade {
				// Same rail, different current class (7805 vs 78M05).
				return 0.7
			}
			return 0.9
		},
	}
}
