package resolve

import (
	"regexp"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/mfr"
)

// typeOverride is a hard precedence rule between two type families that
// both match the same MPN. Some legacy numbering schemes are genuinely
// overloaded (the LM3xx space holds op-amps and temperature sensors; the
// LM3x7 space holds regulators that look like op-amps) and no generic
// comparison is correct for both directions. The table is data so each
// entry can be tested on its own, away from the general comparator.
type typeOverride struct {
	winner, loser component.Type
}

var typeOverrides = []typeOverride{
	{winner: component.OpAmp, loser: component.TemperatureSensor},
	{winner: component.RegulatorLM317, loser: component.OpAmp},
	{winner: component.VoltageRegulator, loser: component.OpAmp},
	{winner: component.Regulator78xx, loser: component.OpAmp},
	{winner: component.TimerIC, loser: component.OpAmp},
}

// shapeOverride resolves an MPN shape to a fixed type regardless of handler
// matches. Bare 74/54-series numbers carry no technology segment, and
// sub-family disambiguation for that scheme is not reliable, so they pin to
// the generic IC category even when a more specific pattern also matches.
type shapeOverride struct {
	re  *regexp.Regexp
	typ component.Type
}

var shapeOverrides = []shapeOverride{
	{regexp.MustCompile(`^(74|54)[0-9]{2,3}$`), component.IntegratedCircuit},
}

// Type returns the most specific component type mpn matches under its
// resolved manufacturer, or [component.Unknown] when nothing matches.
// It never fails and never panics.
func (e *Engine) Type(mpn string) component.Type {
	n := Normalize(mpn)
	if n == "" {
		return component.Unknown
	}

	for _, so := range shapeOverrides {
		if so.re.MatchString(n) {
			return so.typ
		}
	}

	m := e.Manufacturer(n)
	if m == mfr.Unknown {
		return component.Unknown
	}
	return e.arbitrate(n, m)
}

// arbitrate collects every type the handler matches for mpn and reduces
// them pairwise with moreSpecific. The reduction starts from the first
// declared type, so full ties resolve to registration order.
func (e *Engine) arbitrate(mpn string, m *mfr.Manufacturer) component.Type {
	var matched []component.Type
	for _, typ := range e.cat.Registry().Types(m.ID) {
		if e.safeMatch(m, mpn, typ) {
			matched = append(matched, typ)
		}
	}
	if len(matched) == 0 {
		return component.Unknown
	}

	best := matched[0]
	for _, t := range matched[1:] {
		best = moreSpecific(best, t)
	}
	return best
}

// moreSpecific picks the winner between two simultaneously matching types:
// domain override table, then ancestor-chain containment, then numeric
// specificity. On a full tie the earlier (first) argument stands.
func moreSpecific(a, b component.Type) component.Type {
	for _, o := range typeOverrides {
		if a == o.winner && b == o.loser {
			return a
		}
		if b == o.winner && a == o.loser {
			return b
		}
	}

	if a.HasAncestor(b) {
		return a
	}
	if b.HasAncestor(a) {
		return b
	}

	if b.Specificity() > a.Specificity() {
		return b
	}
	return a
}
