package similarity

import (
	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/mfr"
	"github.com/partscout/partscout/pkg/resolve"
)

// =============================================================================
// Resolved part facts
// =============================================================================

// Resolution is the set of resolved facts about one MPN that calculators
// score against. Built once per comparison.
type Resolution struct {
	MPN          string
	Manufacturer *mfr.Manufacturer
	Type         component.Type
	Series       string
	Package      string
}

// Calculator scores one part family. Applicable is the capability test:
// it decides from resolved facts whether this calculator owns the pair.
// Score is only called when Applicable returned true.
type Calculator struct {
	Name       string
	Applicable func(a, b Resolution) bool
	Score      func(a, b Resolution) float64
}

// =============================================================================
// Engine
// =============================================================================

// Engine computes substitutability scores. Construct with [New] or use the
// package-level [Score] on the shared resolver. Immutable once built.
type Engine struct {
	res   *resolve.Engine
	calcs []Calculator
}

// New builds an engine over res with the builtin calculator chain. The
// chain order is the consultation priority.
func New(res *resolve.Engine) *Engine {
	return &Engine{
		res: res,
		calcs: []Calculator{
			regulatorCalculator(),
			logicCalculator(),
			memoryCalculator(),
			transistorCalculator(),
		},
	}
}

// Score returns the substitutability of the two MPNs in [0,1]. Empty input
// on either side yields 0.0, identical normalized MPNs yield 1.0, and the
// first applicable family calculator is authoritative even when it answers
// 0.0. It never fails.
func (e *Engine) Score(mpn1, mpn2 string) float64 {
	score, _ := e.Explain(mpn1, mpn2)
	return score
}

// Explain returns the score together with the name of the rule that
// produced it: a calculator name, "generic" for the fallback, or
// "identical"/"empty" when an input contract short-circuits the chain.
func (e *Engine) Explain(mpn1, mpn2 string) (float64, string) {
	a, b := resolve.Normalize(mpn1), resolve.Normalize(mpn2)
	if a == "" || b == "" {
		return 0.0, "empty"
	}
	if a == b {
		return 1.0, "identical"
	}

	ra, rb := e.resolution(a), e.resolution(b)
	for _, c := range e.calcs {
		if c.Applicable(ra, rb) {
			return clamp(c.Score(ra, rb)), c.Name
		}
	}
	return clamp(genericScore(ra, rb)), "generic"
}

func (e *Engine) resolution(mpn string) Resolution {
	return Resolution{
		MPN:          mpn,
		Manufacturer: e.res.Manufacturer(mpn),
		Type:         e.res.Type(mpn),
		Series:       e.res.Series(mpn),
		Package:      e.res.PackageCode(mpn),
	}
}

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// =============================================================================
// Generic fallback
// =============================================================================

// Generic fallback weights. They sum to 1.0 so a pair agreeing on every
// dimension scores full marks without the clamp doing any work.
const (
	weightSameBase         = 0.4
	weightSameManufacturer = 0.3
	weightSameSeries       = 0.3
)

// genericScore blends the coarse facts for pairs no family calculator
// claims. Unknown values never count as agreement.
func genericScore(a, b Resolution) float64 {
	score := 0.0
	if a.Type != component.Unknown && b.Type != component.Unknown &&
		a.Type.Base() == b.Type.Base() {
		score += weightSameBase
	}
	if a.Manufacturer != mfr.Unknown && a.Manufacturer == b.Manufacturer {
		score += weightSameManufacturer
	}
	if a.Series != "" && a.Series == b.Series {
		score += weightSameSeries
	}
	return score
}

// Score compares two MPNs using the shared default resolver.
func Score(mpn1, mpn2 string) float64 {
	return defaultEngine().Score(mpn1, mpn2)
}
