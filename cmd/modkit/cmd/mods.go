package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/modkit/capability"
	"github.com/go-theft-auto/modkit/internal/app"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

var modsCmd = &cobra.Command{
	Use:   "mods [command]",
	Short: "List capabilities",
	Long: `Without arguments: list every registered capability
With a command: show that capability, suggesting the nearest command on a typo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMods,
}

func init() {
	rootCmd.AddCommand(modsCmd)
}

func runMods(cmd *cobra.Command, args []string) error {
	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		c, ok := a.Registry.Get(args[0])
		if !ok {
			if s, ok := a.Registry.Suggest(args[0]); ok {
				return fmt.Errorf("unknown capability %q, did you mean %q?", args[0], s)
			}
			return fmt.Errorf("unknown capability %q", args[0])
		}
		fmt.Fprintf(out, "Command:  %s\n", c.Command())
		fmt.Fprintf(out, "Name:     %s\n", c.Name())
		fmt.Fprintf(out, "Category: %s\n", c.Category())
		fmt.Fprintf(out, "Enabled:  %t\n", c.Enabled())
		if _, ok := c.(capability.Reloader); ok {
			fmt.Fprintln(out, "Reloads:  yes")
		}
		return nil
	}

	t := newTable("Command", "Name", "Category", "Enabled")
	for _, c := range a.Registry.All() {
		t.Row(c.Command(), c.Name(), c.Category().String(), strconv.FormatBool(c.Enabled()))
	}
	fmt.Fprintln(out, t)
	fmt.Fprintf(out, "%d capabilities\n", a.Registry.Len())
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
