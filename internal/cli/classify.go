package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/partscout/partscout/pkg/errors"
)

// classifyOpts holds the command-line flags for the classify command.
type classifyOpts struct {
	file   string // read MPNs from file, one per line
	asJSON bool   // emit a JSON report instead of a table
	output string // output file path (stdout if empty)
}

// newClassifyCmd creates the classify command. It accepts MPNs as
// arguments or from a file and prints the resolved manufacturer, type,
// series and package for each.
func newClassifyCmd() *cobra.Command {
	var opts classifyOpts

	cmd := &cobra.Command{
		Use:   "classify [mpn...]",
		Short: "Resolve manufacturer, type, series and package for MPNs",
		Long: `Classify one or more manufacturer part numbers.

Each MPN is resolved to its manufacturer, most specific component type,
part series and package designator. Parts that cannot be attributed or
typed degrade to explicit unknown values rather than failing.

Examples:
  partscout classify STM32F103C8T6
  partscout classify LM358N NE555P 1N4148
  partscout classify -f bom.txt --json -o report.json`,
		RunE: func(c *cobra.Command, args []string) error {
			return runClassify(c, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read MPNs from file, one per line")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit a JSON report")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string, opts classifyOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	mpns, err := collectMPNs(args, opts.file)
	if err != nil {
		return err
	}
	if len(mpns) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no part numbers given (pass MPNs or use --file)")
	}

	eng, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	rep := newReport(eng, mpns)
	prog.done(fmt.Sprintf("Classified %d parts", rep.Count))

	if opts.asJSON {
		data, err := rep.marshal()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode report")
		}
		return writeOutput(opts.output, append(data, '\n'))
	}

	printClassifications(rep)
	return nil
}

// collectMPNs merges argument MPNs with file MPNs, validating each.
// File lines starting with # are comments; blank lines are skipped.
func collectMPNs(args []string, file string) ([]string, error) {
	mpns := make([]string, 0, len(args))
	for _, a := range args {
		if err := errors.ValidateMPN(a); err != nil {
			return nil, err
		}
		mpns = append(mpns, a)
	}

	if file == "" {
		return mpns, nil
	}

	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "MPN file not found: %s", file)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to open %s", file)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := errors.ValidateMPN(line); err != nil {
			return nil, err
		}
		mpns = append(mpns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read %s", file)
	}

	return mpns, nil
}

// printClassifications renders the report as a terminal table.
func printClassifications(rep report) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(rep.Items))
	unknown := 0
	for _, item := range rep.Items {
		if !item.KnownManufacturer {
			unknown++
		}
		rows = append(rows, []string{
			item.MPN,
			item.Manufacturer,
			item.Type,
			orDash(item.Series),
			orDash(item.Package),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("MPN", "Manufacturer", "Type", "Series", "Package").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())

	if unknown > 0 {
		printWarning("%d of %d parts have no known manufacturer", unknown, rep.Count)
	} else {
		printSuccess("all %d parts attributed", rep.Count)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to write %s", path)
	}
	printFile(path)
	return nil
}
