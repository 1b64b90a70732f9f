package similarity

import (
	"regexp"

	"github.com/partscout/partscout/pkg/component"
)

// =============================================================================
// 74/4000-series logic
// =============================================================================

// logicRe decomposes a logic part number into family digits, the
// technology letter segment and the numeric function code. The optional
// SN/TC/CD vendor prefix and the 54 military family collapse into the
// commercial 74 space.
var logicRe = regexp.MustCompile(`^(SN|TC|CD|HD|HEF)?(74|54|40)(LS|ALS|AS|F|S|HC|HCT|AC|ACT|AHC|AHCT|VHC|LV|LVC|AUP|AUC)?([0-9]{2,4})`)

type logicPart struct {
	family string // 74 or 40
	tech   string
	code   string
}

func parseLogic(mpn string) (logicPart, bool) {
	m := logicRe.FindStringSubmatch(mpn)
	if m == nil {
		return logicPart{}, false
	}
	p := logicPart{family: m[2], tech: m[3], code: m[4]}
	if p.family == "54" {
		p.family = "74"
	}
	return p, true
}

// crossFamilyEquivalents lists function codes that implement the same
// boolean function across the 74 and 4000 families. Keys are
// "family:code" pairs, grouped by equivalence.
var crossFamilyEquivalents = [][]string{
	{"74:00", "40:11"}, // quad 2-input NAND
	{"74:02", "40:01"}, // quad 2-input NOR
	{"74:04", "40:69"}, // hex inverter
	{"74:08", "40:81"}, // quad 2-input AND
	{"74:32", "40:71"}, // quad 2-input OR
	{"74:86", "40:70"}, // quad 2-input XOR
}

func logicKey(p logicPart) string { return p.family + ":" + p.code }

func sameBooleanFunction(a, b logicPart) bool {
	ka, kb := logicKey(a), logicKey(b)
	for _, group := range crossFamilyEquivalents {
		inA, inB := false, false
		for _, k := range group {
			if k == ka {
				inA = true
			}
			if k == kb {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// logicCalculator scores standard-logic pairs by function code. The
// function code, not the technology segment, decides what the gate does:
// a 74LS00 and a 74HC00 are the same NAND at different speed grades.
// Cross-family parts implementing the same function stay high; everything
// else stays low but non-zero, since legacy logic remains loosely
// interchangeable at the board level.
func logicCalculator() Calculator {
	return Calculator{
		Name: "standard-logic",
		Applicable: func(a, b Resolution) bool {
			return looksLogic(a) && looksLogic(b)
		},
		Score: func(a, b Resolution) float64 {
			pa, _ := parseLogic(a.MPN)
			pb, _ := parseLogic(b.MPN)

			if pa.family == pb.family && pa.code == pb.code {
				if pa.tech == pb.tech {
					return 0.95
				}
				return 0.9
			}
			if sameBooleanFunction(pa, pb) {
				return 0.85
			}
			return 0.2
		},
	}
}

func looksLogic(r Resolution) bool {
	if r.Type == component.Logic74Series || r.Type == component.Logic4000Series {
		_, ok := parseLogic(r.MPN)
		return ok
	}
	// Bare family numbers resolve to the generic IC category but still
	// parse; keep them comparable.
	if r.Type == component.IntegratedCircuit {
		_, ok := parseLogic(r.MPN)
		return ok
	}
	return false
}
