package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/partscout/partscout/pkg/errors"
	"github.com/partscout/partscout/pkg/resolve"
)

// newMfrCmd creates the mfr command, which shows every plausible
// manufacturer for an MPN with its confidence tier instead of the single
// best guess.
func newMfrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mfr <mpn>",
		Short: "Show the ranked manufacturer candidate list for an MPN",
		Long: `Show every plausible manufacturer for a part number.

Candidates are ranked by confidence tier: HIGH for special-case and
prefix-rule attributions, MEDIUM for short prefix-code class matches,
LOW for pattern-only matches. Second sources typically appear at MEDIUM
below the historically correct vendor.

Example:
  partscout mfr IRF530`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runMfr(c, args[0])
		},
	}
}

func runMfr(cmd *cobra.Command, mpn string) error {
	if err := errors.ValidateMPN(mpn); err != nil {
		return err
	}

	eng, err := buildEngine(cmd.Context())
	if err != nil {
		return err
	}

	candidates := eng.PossibleManufacturers(mpn)
	if len(candidates) == 0 {
		printWarning("no manufacturer candidates for %s", resolve.Normalize(mpn))
		return nil
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			c.Confidence.String(),
			c.Manufacturer.Name,
			string(c.Manufacturer.ID),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Tier", "Manufacturer", "ID").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return tierStyle(candidates[row].Confidence.String())
			}
			return StyleValue
		})

	printInfo("candidates for %s", StyleHighlight.Render(resolve.Normalize(mpn)))
	fmt.Println(t.Render())
	printNextStep("Classify this part", "partscout classify "+resolve.Normalize(mpn))
	return nil
}
