package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/partscout/partscout/pkg/resolve"
	"github.com/partscout/partscout/pkg/similarity"
)

// newLookupCmd creates the lookup command, an interactive classification
// session: type an MPN and see its resolution live.
func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup",
		Short: "Interactive MPN classification session",
		Long: `Start an interactive session that classifies part numbers as you type.

The session shows the resolved manufacturer, type, series and package
for the current input, plus the ranked manufacturer candidates. Press
enter to pin the current part for comparison against the next one.`,
		RunE: func(c *cobra.Command, args []string) error {
			eng, err := buildEngine(c.Context())
			if err != nil {
				return err
			}
			model := newLookupModel(eng, buildSimilarity(eng))
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// lookupModel is the bubbletea model for the interactive session.
type lookupModel struct {
	eng    *resolve.Engine
	sim    *similarity.Engine
	input  string
	pinned string
}

func newLookupModel(eng *resolve.Engine, sim *similarity.Engine) lookupModel {
	return lookupModel{eng: eng, sim: sim}
}

func (m lookupModel) Init() tea.Cmd {
	return nil
}

func (m lookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if strings.TrimSpace(m.input) != "" {
				m.pinned = resolve.Normalize(m.input)
				m.input = ""
			}
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			// Printable keys extend the current MPN; everything else is
			// navigation noise and gets dropped.
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}
	}
	return m, nil
}

func (m lookupModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Partscout Lookup"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type an MPN  ⏎ pin for comparison  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("mpn> "))
	b.WriteString(StyleHighlight.Render(strings.ToUpper(m.input)))
	b.WriteString(StyleDim.Render("▌"))
	b.WriteString("\n\n")

	mpn := resolve.Normalize(m.input)
	if mpn != "" {
		b.WriteString(m.renderResolution(mpn))
	}

	if m.pinned != "" {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("pinned: ") + StyleValue.Render(m.pinned))
		if mpn != "" {
			score := m.sim.Score(m.pinned, mpn)
			b.WriteString(fmt.Sprintf("  %s %.2f", StyleDim.Render("similarity:"), score))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderResolution renders the live classification for mpn.
func (m lookupModel) renderResolution(mpn string) string {
	var b strings.Builder

	mf := m.eng.Manufacturer(mpn)
	typ := m.eng.Type(mpn)

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Manufacturer", "Type", "Series", "Package").
		Rows([]string{
			mf.Name,
			typ.String(),
			orDash(m.eng.Series(mpn)),
			orDash(m.eng.PackageCode(mpn)),
		}).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return StyleValue
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	candidates := m.eng.PossibleManufacturers(mpn)
	if len(candidates) > 1 {
		b.WriteString(StyleDim.Render("also possible: "))
		parts := make([]string, 0, len(candidates)-1)
		for _, c := range candidates[1:] {
			parts = append(parts, fmt.Sprintf("%s (%s)",
				c.Manufacturer.Name, tierStyle(c.Confidence.String()).Render(c.Confidence.String())))
		}
		b.WriteString(strings.Join(parts, StyleDim.Render(" · ")))
		b.WriteString("\n")
	}

	return b.String()
}
