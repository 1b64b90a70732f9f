// Package taxonomy renders the component type hierarchy as a Graphviz
// diagram, either as DOT text or as SVG.
package taxonomy
