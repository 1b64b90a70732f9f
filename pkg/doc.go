// Package pkg provides the core libraries for Partscout MPN classification.
//
// # Overview
//
// Partscout identifies electronic components from their manufacturer part
// number (MPN) strings: which vendor made a part, what kind of part it is,
// and how substitutable two parts are. The pkg directory is organized into
// five main areas:
//
//  1. [component] - The part type taxonomy (types, ancestry, specificity)
//  2. [pattern] - Pattern primitives shared by all manufacturer handlers
//  3. [mfr] - The built-in manufacturer catalog (handlers + rules)
//  4. [resolve] - The resolution engine (manufacturer + type arbitration)
//  5. [similarity] - Cross-manufacturer substitutability scoring
//
// # Architecture
//
// The typical data flow through Partscout:
//
//	MPN string
//	     ↓
//	[resolve] package (normalize, match against the catalog)
//	     ↓
//	[component] package (arbitrate the most specific type)
//	     ↓
//	[similarity] package (optional: score against another MPN)
//	     ↓
//	Manufacturer, Type, Series, Package, Score
//
// # Quick Start
//
// Resolve a part and compare it against a candidate substitute:
//
//	import (
//	    "github.com/partscout/partscout/pkg/resolve"
//	    "github.com/partscout/partscout/pkg/similarity"
//	)
//
//	// 1. Build an engine over the built-in catalog
//	eng, _ := resolve.New(resolve.Options{})
//
//	// 2. Resolve manufacturer and type
//	m := eng.Manufacturer("STM32F103C8T6")
//	t := eng.Type("STM32F103C8T6")
//
//	// 3. Score a candidate substitute
//	sim := similarity.New(eng)
//	score := sim.Score("LM7805", "MC7805")
//
// # Main Packages
//
// ## Domain Logic
//
// [component] - The part type taxonomy. Every type knows its base type
// (e.g. stm32_mcu → microcontroller → integrated_circuit) and a numeric
// specificity used to arbitrate between competing matches.
//
// [pattern] - Pattern primitives: compiled expression sets, prefix rules,
// and the Handler structure every manufacturer entry is built from.
//
// [mfr] - The built-in catalog, one file per market segment (analog,
// passives, memory, micros, discretes, connectors). Handlers are
// compiled once at init and immutable afterwards.
//
// [resolve] - The engine. Manufacturer resolution walks a fixed ladder
// (special vendors, prefix rules, owned patterns, hints) and never
// fails; unresolvable parts come back as the unknown manufacturer.
// Type resolution collects all pattern matches and arbitrates with the
// override table, ancestry, and specificity.
//
// [similarity] - Substitutability scoring. Family-specific calculators
// (fixed regulators, logic, memory, transistors) claim the pairs they
// understand; everything else falls through to a generic blend of type,
// manufacturer, and series agreement. Scores are always in [0, 1].
//
// ## Configuration
//
// [catalog] - TOML catalogs of additional manufacturer handlers, layered
// on top of the built-in catalog at engine construction.
//
// ## Visualization
//
// [render/taxonomy] - Renders the component type taxonomy as a DOT graph
// or SVG using Graphviz.
//
// ## Support
//
// [errors] - Structured errors with stable machine-readable codes and
// user-facing messages, shared by the CLI and the HTTP API.
//
// [buildinfo] - Build metadata injected via ldflags.
//
// # Common Workflows
//
// Layer a custom catalog over the built-in handlers:
//
//	cat, _ := catalog.Load("vendors.toml")
//	eng, _ := resolve.New(resolve.Options{Extra: cat.Handlers()})
//
// Rank candidate manufacturers for an ambiguous part:
//
//	for _, c := range eng.PossibleManufacturers("IRF530") {
//	    fmt.Printf("%-8s %s\n", c.Confidence, c.Manufacturer.ID)
//	}
//
// Render the taxonomy:
//
//	dot := taxonomy.ToDOT(taxonomy.Options{Detailed: true})
//	svg, _ := taxonomy.RenderSVG(dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/resolve/...     # Specific package
//	go test -run Example          # Examples only
//
// [component]: https://pkg.go.dev/github.com/partscout/partscout/pkg/component
// [pattern]: https://pkg.go.dev/github.com/partscout/partscout/pkg/pattern
// [mfr]: https://pkg.go.dev/github.com/partscout/partscout/pkg/mfr
// [resolve]: https://pkg.go.dev/github.com/partscout/partscout/pkg/resolve
// [similarity]: https://pkg.go.dev/github.com/partscout/partscout/pkg/similarity
// [catalog]: https://pkg.go.dev/github.com/partscout/partscout/pkg/catalog
// [render/taxonomy]: https://pkg.go.dev/github.com/partscout/partscout/pkg/render/taxonomy
// [errors]: https://pkg.go.dev/github.com/partscout/partscout/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/partscout/partscout/pkg/buildinfo
package pkg
