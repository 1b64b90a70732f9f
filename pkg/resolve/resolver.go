package resolve

import (
	"strings"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/mfr"
)

// Confidence is the tier assigned to a manufacturer candidate.
type Confidence int

const (
	// ConfidenceHigh covers hard special cases and coarse prefix-rule hits.
	ConfidenceHigh Confidence = iota
	// ConfidenceMedium covers short prefix-code class hits whose full
	// prefix rule did not match.
	ConfidenceMedium
	// ConfidenceLow covers vendors where only an owned component-type
	// pattern matched.
	ConfidenceLow
)

// String returns the tier name.
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "HIGH"
	case ConfidenceMedium:
		return "MEDIUM"
	case ConfidenceLow:
		return "LOW"
	}
	return "UNKNOWN"
}

// Candidate pairs a manufacturer with the confidence of the attribution.
type Candidate struct {
	Manufacturer *mfr.Manufacturer
	Confidence   Confidence
}

// Options configures engine construction.
type Options struct {
	// Extra appends user-catalog handlers after the builtins, preserving
	// deterministic order.
	Extra []*mfr.Manufacturer

	// Logger receives log-and-continue diagnostics when a handler
	// misbehaves during resolution. Optional.
	Logger func(format string, args ...any)
}

// Engine resolves manufacturers and component types. Construct with [New]
// or use the shared [Default] engine. Immutable once built.
type Engine struct {
	cat  *mfr.Catalog
	logf func(string, ...any)
}

// New builds an engine from the builtin handler catalog plus opts.Extra.
// The component taxonomy self-test runs here: a non-total or cyclic
// base-type table fails construction.
func New(opts Options) (*Engine, error) {
	if err := component.Verify(); err != nil {
		return nil, err
	}

	handlers := mfr.Builtin()
	handlers = append(handlers, opts.Extra...)
	cat, err := mfr.NewCatalog(handlers)
	if err != nil {
		return nil, err
	}

	logf := opts.Logger
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Engine{cat: cat, logf: logf}, nil
}

// Normalize applies the MPN normalization contract shared by every public
// entry point: trim whitespace, uppercase. Separators are preserved.
func Normalize(mpn string) string {
	return strings.ToUpper(strings.TrimSpace(mpn))
}

// Manufacturer returns the best-guess manufacturer for mpn. It never fails:
// empty or unrecognizable input yields [mfr.Unknown].
func (e *Engine) Manufacturer(mpn string) *mfr.Manufacturer {
	n := Normalize(mpn)
	if n == "" {
		return mfr.Unknown
	}

	// Step 1: hard special cases.
	if id, ok := specialVendor(n); ok {
		if m, found := e.cat.ByID(id); found {
			return m
		}
	}

	// Step 2: coarse prefix rules, catalog order.
	for _, m := range e.cat.All() {
		if e.cat.PrefixMatches(m, n) {
			return m
		}
	}

	// Step 3: any owned component-type pattern, catalog order.
	for _, m := range e.cat.All() {
		if e.anyOwnedMatch(m, n) {
			return m
		}
	}

	// Step 4: embedded substring hints.
	for _, m := range e.cat.All() {
		if m.HasHint(n) {
			return m
		}
	}

	return mfr.Unknown
}

// PossibleManufacturers returns every plausible manufacturer for mpn as a
// confidence-tiered, deterministically ordered list: HIGH candidates first
// (special case, then prefix-rule hits in catalog order), then MEDIUM
// (prefix-code class), then LOW (pattern-only). Each vendor appears once, at
// its highest tier. Empty input yields an empty list.
func (e *Engine) PossibleManufacturers(mpn string) []Candidate {
	n := Normalize(mpn)
	if n == "" {
		return nil
	}

	var out []Candidate
	seen := make(map[*mfr.Manufacturer]bool)
	add := func(m *mfr.Manufacturer, c Confidence) {
		if m == nil || seen[m] {
			return
		}
		seen[m] = true
		out = append(out, Candidate{Manufacturer: m, Confidence: c})
	}

	if id, ok := specialVendor(n); ok {
		if m, found := e.cat.ByID(id); found {
			add(m, ConfidenceHigh)
		}
	}
	for _, m := range e.cat.All() {
		if e.cat.PrefixMatches(m, n) {
			add(m, ConfidenceHigh)
		}
	}
	for _, m := range e.cat.All() {
		if m.HasPrefixCode(n) {
			add(m, ConfidenceMedium)
		}
	}
	for _, m := range e.cat.All() {
		if e.anyOwnedMatch(m, n) {
			add(m, ConfidenceLow)
		}
	}

	return out
}

// Series extracts the part series of mpn using the resolved manufacturer's
// extractor. Empty input or a failing extractor yields "".
func (e *Engine) Series(mpn string) string {
	n := Normalize(mpn)
	if n == "" {
		return ""
	}
	m := e.Manufacturer(n)
	return e.safeSeries(m, n)
}

// PackageCode extracts the package designator of mpn using the resolved
// manufacturer's extractor. Empty input or a failing extractor yields "".
func (e *Engine) PackageCode(mpn string) string {
	n := Normalize(mpn)
	if n == "" {
		return ""
	}
	m := e.Manufacturer(n)
	return e.safePackageCode(m, n)
}

// IsOfficialReplacement reports whether other is an official replacement
// for mpn under the resolved manufacturer's cross-reference policy.
func (e *Engine) IsOfficialReplacement(mpn, other string) bool {
	a, b := Normalize(mpn), Normalize(other)
	if a == "" || b == "" {
		return false
	}
	m := e.Manufacturer(a)
	if m == mfr.Unknown {
		return false
	}
	return e.safeReplacement(m, a, b)
}

// anyOwnedMatch reports whether any component-type pattern owned by m
// matches mpn, isolating handler failures.
func (e *Engine) anyOwnedMatch(m *mfr.Manufacturer, mpn string) bool {
	for _, typ := range e.cat.Registry().Types(m.ID) {
		if e.safeMatch(m, mpn, typ) {
			return true
		}
	}
	return false
}

// safeMatch queries a single handler, converting a panic into a logged
// non-match. One bad rule must degrade the answer, not abort resolution
// across the whole catalog.
func (e *Engine) safeMatch(m *mfr.Manufacturer, mpn string, typ component.Type) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logf("handler %s: match %q as %s panicked: %v", m.ID, mpn, typ, r)
			ok = false
		}
	}()
	return m.Matches(e.cat.Registry(), mpn, typ)
}

func (e *Engine) safeSeries(m *mfr.Manufacturer, mpn string) (s string) {
	defer func() {
		if r := recover(); r != nil {
			e.logf("handler %s: series %q panicked: %v", m.ID, mpn, r)
			s = ""
		}
	}()
	return m.Series(mpn)
}

func (e *Engine) safePackageCode(m *mfr.Manufacturer, mpn string) (s string) {
	defer func() {
		if r := recover(); r != nil {
			e.logf("handler %s: package %q panicked: %v", m.ID, mpn, r)
			s = ""
		}
	}()
	return m.PackageCode(mpn)
}

func (e *Engine) safeReplacement(m *mfr.Manufacturer, mpn, other string) (v bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logf("handler %s: replacement %q/%q panicked: %v", m.ID, mpn, other, r)
			v = false
		}
	}()
	return m.IsOfficialReplacement(mpn, other)
}
