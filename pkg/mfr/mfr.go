package mfr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/pattern"
)

var (
	// ErrDuplicateID is returned by [NewCatalog] when two handlers share an
	// identity. Identities key the pattern registry and must be unique.
	ErrDuplicateID = errors.New("duplicate manufacturer ID")

	// ErrEmptyID is returned by [NewCatalog] for a handler without an ID.
	ErrEmptyID = errors.New("manufacturer ID must not be empty")
)

// TypePattern binds a component type to one or more match expressions.
// Expressions are compiled case-insensitively at catalog build time.
type TypePattern struct {
	Type  component.Type
	Exprs []string
}

// Manufacturer is a per-vendor handler: identity, coarse identification
// rules, the owned component-type pattern table, and optional override funcs
// for behavior the declarative tables cannot express.
//
// Handlers are constructed once, compiled into a [Catalog], and never
// mutated afterwards.
type Manufacturer struct {
	// Name is the display name.
	Name string

	// ID is the stable identity used as the pattern-registry owner key.
	ID pattern.Owner

	// PrefixRule is an anchored regular expression for the vendor's coarse
	// identifying prefix codes. Used by resolution step 2 and the HIGH
	// confidence tier.
	PrefixRule string

	// PrefixCodes are short prefix classes (e.g. "LM", "MC") shared with
	// other vendors. A code hit without a PrefixRule hit yields the MEDIUM
	// confidence tier.
	PrefixCodes []string

	// Hints are embedded substrings consulted as a last resort, for vendor
	// abbreviations appearing mid-string.
	Hints []string

	// Patterns is the owned component-type rule table, in declaration order.
	Patterns []TypePattern

	// MatchFunc overrides the default registry lookup for "does this MPN
	// match this type under this vendor".
	MatchFunc func(reg *pattern.Registry, mpn string, typ component.Type) bool

	// SeriesFunc overrides the default series extraction.
	SeriesFunc func(mpn string) string

	// PackageFunc overrides the default package-code extraction.
	PackageFunc func(mpn string) string

	// ReplacementFunc reports whether the second MPN is an official
	// replacement for the first under this vendor's cross-reference policy.
	ReplacementFunc func(mpn, other string) bool
}

// Unknown is the sentinel returned when no manufacturer can be determined.
// It owns no patterns and matches nothing.
var Unknown = &Manufacturer{Name: "Unknown", ID: "unknown"}

// Matches reports whether mpn matches typ under this vendor's own rules.
func (m *Manufacturer) Matches(reg *pattern.Registry, mpn string, typ component.Type) bool {
	if m.MatchFunc != nil {
		return m.MatchFunc(reg, mpn, typ)
	}
	return reg.MatchesOwner(m.ID, mpn, typ)
}

// Series returns the part series extracted from mpn, or "".
func (m *Manufacturer) Series(mpn string) string {
	if m.SeriesFunc != nil {
		return m.SeriesFunc(mpn)
	}
	return DefaultSeries(mpn)
}

// PackageCode returns the package designator extracted from mpn, or "".
func (m *Manufacturer) PackageCode(mpn string) string {
	if m.PackageFunc != nil {
		return m.PackageFunc(mpn)
	}
	return DefaultPackageCode(mpn)
}

// IsOfficialReplacement reports whether other is an official replacement for
// mpn. Vendors without a cross-reference policy report false.
func (m *Manufacturer) IsOfficialReplacement(mpn, other string) bool {
	if m.ReplacementFunc != nil {
		return m.ReplacementFunc(mpn, other)
	}
	return false
}

// Catalog is the compiled, immutable handler set consumed by the resolver.
type Catalog struct {
	list     []*Manufacturer
	prefixes map[pattern.Owner]*regexp.Regexp
	registry *pattern.Registry
	byID     map[pattern.Owner]*Manufacturer
}

// NewCatalog validates and compiles the handler list. Order is preserved:
// the resolver's first-match-wins semantics follow the order given here.
func NewCatalog(ms []*Manufacturer) (*Catalog, error) {
	c := &Catalog{
		list:     make([]*Manufacturer, 0, len(ms)),
		prefixes: make(map[pattern.Owner]*regexp.Regexp, len(ms)),
		registry: pattern.New(),
		byID:     make(map[pattern.Owner]*Manufacturer, len(ms)),
	}

	for _, m := range ms {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyID, m.Name)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, m.ID)
		}

		if m.PrefixRule != "" {
			re, err := regexp.Compile("(?i)" + m.PrefixRule)
			if err != nil {
				return nil, fmt.Errorf("prefix rule for %s: %w", m.ID, err)
			}
			c.prefixes[m.ID] = re
		}

		for _, tp := range m.Patterns {
			for _, expr := range tp.Exprs {
				if err := c.registry.Register(m.ID, tp.Type, expr); err != nil {
					return nil, err
				}
			}
		}

		c.list = append(c.list, m)
		c.byID[m.ID] = m
	}

	return c, nil
}

// All returns the handlers in catalog order.
func (c *Catalog) All() []*Manufacturer { return c.list }

// Registry returns the compiled pattern registry.
func (c *Catalog) Registry() *pattern.Registry { return c.registry }

// ByID looks a handler up by identity.
func (c *Catalog) ByID(id pattern.Owner) (*Manufacturer, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// PrefixMatches reports whether m's coarse prefix rule matches mpn.
func (c *Catalog) PrefixMatches(m *Manufacturer, mpn string) bool {
	re, ok := c.prefixes[m.ID]
	return ok && re.MatchString(mpn)
}

// HasPrefixCode reports whether any of m's short prefix codes begins mpn.
func (m *Manufacturer) HasPrefixCode(mpn string) bool {
	for _, code := range m.PrefixCodes {
		if strings.HasPrefix(mpn, code) {
			return true
		}
	}
	return false
}

// HasHint reports whether any of m's hint substrings appears in mpn.
func (m *Manufacturer) HasHint(mpn string) bool {
	for _, h := range m.Hints {
		if strings.Contains(mpn, h) {
			return true
		}
	}
	return false
}

var (
	// seriesRe captures the leading series segment: an optional numeric
	// family code, a letter block, and the base part number. Covers both
	// letter-first MPNs (LM358, STM32) and digit-first legacy families
	// (1N4148, 2N3904, 74HC00).
	seriesRe = regexp.MustCompile(`^([0-9]{1,2}[A-Z]{1,4}[0-9]{1,6}|[A-Z]{1,5}[0-9]{1,6})`)

	// pkgSuffixRe captures a short trailing letter group after the numeric
	// body, the usual position of a package designator.
	pkgSuffixRe = regexp.MustCompile(`[0-9]([A-Z]{1,6})$`)
)

// DefaultSeries extracts the series segment of an uppercased MPN: the
// leading family/letter/number run, stopping before package suffixes and
// separator-delimited options.
func DefaultSeries(mpn string) string {
	mpn = strings.ToUpper(mpn)
	if m := seriesRe.FindString(mpn); m != "" {
		return m
	}
	return ""
}

// DefaultPackageCode extracts the package designator of an uppercased MPN.
// A separator-delimited suffix wins over a trailing letter group, because
// hyphenated suffixes are explicit package/option fields.
func DefaultPackageCode(mpn string) string {
	mpn = strings.ToUpper(mpn)

	if i := strings.LastIndexAny(mpn, "-/"); i >= 0 && i+1 < len(mpn) {
		suffix := mpn[i+1:]
		if len(suffix) <= 6 {
			return suffix
		}
	}

	if m := pkgSuffixRe.FindStringSubmatch(mpn); m != nil {
		return m[1]
	}
	return ""
}
