package resolve

import (
	"fmt"
	"sync"

	"github.com/partscout/partscout/pkg/component"
	"github.com/partscout/partscout/pkg/mfr"
)

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine built from the builtin catalog.
// Construction happens exactly once; the returned engine is immutable and
// safe for unsynchronized concurrent use. Builtin catalog validity is
// covered by tests, so a construction failure here is a programming error
// and panics.
func Default() *Engine {
	defaultOnce.Do(func() {
		e, err := New(Options{})
		if err != nil {
			panic(fmt.Sprintf("resolve: builtin catalog invalid: %v", err))
		}
		defaultEngine = e
	})
	return defaultEngine
}

// ResolveManufacturer resolves mpn against the default engine.
func ResolveManufacturer(mpn string) *mfr.Manufacturer {
	return Default().Manufacturer(mpn)
}

// ResolvePossibleManufacturers returns the confidence-tiered candidate list
// from the default engine.
func ResolvePossibleManufacturers(mpn string) []Candidate {
	return Default().PossibleManufacturers(mpn)
}

// ResolveType resolves the most specific component type from the default
// engine.
func ResolveType(mpn string) component.Type {
	return Default().Type(mpn)
}

// ExtractSeries extracts the part series from the default engine.
func ExtractSeries(mpn string) string {
	return Default().Series(mpn)
}

// ExtractPackageCode extracts the package designator from the default
// engine.
func ExtractPackageCode(mpn string) string {
	return Default().PackageCode(mpn)
}

// IsOfficialReplacement checks the official-replacement relation on the
// default engine.
func IsOfficialReplacement(mpn, other string) bool {
	return Default().IsOfficialReplacement(mpn, other)
}
