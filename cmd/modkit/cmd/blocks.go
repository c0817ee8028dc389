package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/modkit/catalog"
	"github.com/go-theft-auto/modkit/internal/app"
)

var (
	blocksSearch      string
	blocksEnabledOnly bool
	blocksPage        int
	blocksPerPage     int
)

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List catalog blocks",
	Long: `List the block catalog one page at a time, filtered the same way as the
in-game browser. Blocks marked for xray are flagged.`,
	Args: cobra.NoArgs,
	RunE: runBlocks,
}

var xrayCmd = &cobra.Command{
	Use:   "xray",
	Short: "Edit the xray block set",
}

var xrayAddCmd = &cobra.Command{
	Use:   "add <block>...",
	Short: "Mark blocks for xray",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setXray(cmd, args, true)
	},
}

var xrayRemoveCmd = &cobra.Command{
	Use:   "remove <block>...",
	Short: "Unmark blocks for xray",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setXray(cmd, args, false)
	},
}

func init() {
	blocksCmd.Flags().StringVarP(&blocksSearch, "search", "s", "", "case-insensitive key filter")
	blocksCmd.Flags().BoolVarP(&blocksEnabledOnly, "enabled-only", "e", false, "only blocks marked for xray")
	blocksCmd.Flags().IntVarP(&blocksPage, "page", "p", 1, "page number, starting at 1")
	blocksCmd.Flags().IntVar(&blocksPerPage, "per-page", 20, "blocks per page")

	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(xrayCmd)
	xrayCmd.AddCommand(xrayAddCmd)
	xrayCmd.AddCommand(xrayRemoveCmd)
}

func runBlocks(cmd *cobra.Command, args []string) error {
	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	if blocksPerPage <= 0 {
		return fmt.Errorf("--per-page must be positive, got %d", blocksPerPage)
	}
	active := a.Settings.ActiveSet(app.ScreenXray)
	v := catalog.DeriveView(a.Catalog.Items(), blocksSearch, blocksEnabledOnly, active, blocksPage-1, blocksPerPage)

	out := cmd.OutOrStdout()
	if len(v.Filtered) == 0 {
		fmt.Fprintln(out, "no blocks match")
		return nil
	}
	t := newTable("Key", "Name", "Xray")
	for _, it := range v.Visible {
		t.Row(it.Key, it.Label(), strconv.FormatBool(active.IsItemActive(it.Key)))
	}
	fmt.Fprintln(out, t)
	fmt.Fprintf(out, "page %d/%d, %d blocks\n", v.Page+1, v.PageCount, len(v.Filtered))
	return nil
}

func setXray(cmd *cobra.Command, keys []string, on bool) error {
	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	active := a.Settings.ActiveSet(app.ScreenXray)

	var errs []error
	for _, key := range keys {
		if _, ok := a.Catalog.Lookup(key); !ok {
			errs = append(errs, fmt.Errorf("unknown block %q", key))
			continue
		}
		active.SetItemActive(key, on)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if err := a.Save(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d blocks marked for xray\n", active.Len())
	return nil
}
