package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/partscout/partscout/pkg/errors"
)

// newCompareCmd creates the compare command, which scores two MPNs for
// substitutability.
func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <mpn1> <mpn2>",
		Short: "Score two MPNs for substitutability",
		Long: `Compare two part numbers and print a substitutability score in [0,1].

A score near 1.0 means the parts are drop-in replacements; near 0.0
means they are incompatible. Family-specific rules apply where both
parts belong to a known family (regulators, logic, memories,
transistors); otherwise a generic blend over type, manufacturer and
series is used.

Examples:
  partscout compare LM7805 MC7805
  partscout compare 74LS00 74HC00`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runCompare(c, args[0], args[1])
		},
	}
}

func runCompare(cmd *cobra.Command, mpn1, mpn2 string) error {
	for _, mpn := range []string{mpn1, mpn2} {
		if err := errors.ValidateMPN(mpn); err != nil {
			return err
		}
	}

	eng, err := buildEngine(cmd.Context())
	if err != nil {
		return err
	}
	sim := buildSimilarity(eng)

	score, rule := sim.Explain(mpn1, mpn2)

	a, b := classify(eng, mpn1), classify(eng, mpn2)
	printKeyValue(a.MPN, fmt.Sprintf("%s · %s", a.Manufacturer, a.Type))
	printKeyValue(b.MPN, fmt.Sprintf("%s · %s", b.Manufacturer, b.Type))
	fmt.Println()

	verdict := describeScore(score)
	printKeyValue("score", fmt.Sprintf("%.2f  %s", score, verdict))
	printKeyValue("rule", rule)

	if score >= 0.7 {
		printSuccess("likely substitutable")
	} else if score >= 0.4 {
		printWarning("review electrical parameters before substituting")
	} else {
		printError("not substitutable")
	}

	return nil
}

// describeScore maps a score to a short human verdict.
func describeScore(score float64) string {
	switch {
	case score >= 0.9:
		return StyleSuccess.Render("equivalent")
	case score >= 0.7:
		return StyleSuccess.Render("close substitute")
	case score >= 0.4:
		return StyleWarning.Render("related")
	case score > 0.0:
		return StyleDim.Render("distant")
	}
	return StyleDim.Render("incompatible")
}
