package cli

import (
	"github.com/spf13/cobra"

	"github.com/partscout/partscout/pkg/errors"
	"github.com/partscout/partscout/pkg/render/taxonomy"
)

// taxonomyOpts holds the command-line flags for the taxonomy command.
type taxonomyOpts struct {
	dot      bool   // emit DOT text instead of SVG
	detailed bool   // include specificity levels in labels
	output   string // output file path (stdout if empty)
}

// newTaxonomyCmd creates the taxonomy command, which renders the component
// type hierarchy used by the type arbiter.
func newTaxonomyCmd() *cobra.Command {
	var opts taxonomyOpts

	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Render the component type hierarchy as DOT or SVG",
		Long: `Render the component type taxonomy as a Graphviz diagram.

The diagram shows every component type and its base-type relation:
broad categories at the top, functional families below them, and
manufacturer-qualified types as leaves.

Examples:
  partscout taxonomy --dot
  partscout taxonomy -o taxonomy.svg
  partscout taxonomy --detailed -o taxonomy.svg`,
		RunE: func(c *cobra.Command, args []string) error {
			return runTaxonomy(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dot, "dot", false, "emit DOT text instead of SVG")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include specificity levels in labels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runTaxonomy(opts taxonomyOpts) error {
	dot := taxonomy.ToDOT(taxonomy.Options{Detailed: opts.detailed})

	if opts.dot {
		return writeOutput(opts.output, []byte(dot))
	}

	svg, err := taxonomy.RenderSVG(dot)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to render taxonomy")
	}

	return writeOutput(opts.output, svg)
}
