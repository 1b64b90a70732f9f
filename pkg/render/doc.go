// Package render provides visualization rendering for Partscout data.
//
// # Overview
//
// This package groups the rendering subpackages that turn Partscout's
// internal structures into visual outputs:
//
//   - Component taxonomy diagrams (in [taxonomy] subpackage)
//
// # Taxonomy Diagrams
//
// The [taxonomy] subpackage renders the component type hierarchy as a
// directed graph using Graphviz. Nodes are part types, edges point from
// base types to their refinements, and colors encode specificity.
//
//	dot := taxonomy.ToDOT(taxonomy.Options{Detailed: true})
//	svg, err := taxonomy.RenderSVG(dot)
//
// [taxonomy]: github.com/partscout/partscout/pkg/render/taxonomy
package render
