package taxonomy

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/partscout/partscout/pkg/component"
)

// Options configures taxonomy diagram rendering.
type Options struct {
	// Detailed includes the specificity level in node labels.
	// When false, only the type name is shown.
	Detailed bool
}

// ToDOT converts the component type taxonomy to Graphviz DOT format.
// Every declared type becomes a node and every base-type relation an
// edge, so the diagram is exactly what the arbiter walks at runtime.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph taxonomy {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, t := range component.All() {
		if t == component.Unknown {
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", t.String(), fmtAttrs(t, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, t := range component.All() {
		if t == component.Unknown || t.Base() == t {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", t.Base().String(), t.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(t component.Type, detailed bool) string {
	label := t.String()
	if detailed {
		label = fmt.Sprintf("%s\nlevel %d", t.String(), t.Specificity())
	}

	attrs := fmt.Sprintf("label=%q", label)
	switch t.Specificity() {
	case 2:
		// Broad categories anchor the diagram.
		attrs += ", fillcolor=lightblue"
	case 4:
		// Manufacturer-qualified leaves.
		attrs += ", fillcolor=lightyellow"
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the outer svg tag so the viewBox starts at the
// origin. Graphviz emits translated viewBoxes that some embedders clip.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
