package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	gui "github.com/go-theft-auto/modkit"
	"github.com/go-theft-auto/modkit/internal/app"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "modkit",
	Short: "modkit - toggleable capabilities with an in-game control panel",
	Long: `modkit hosts a registry of toggleable capabilities ("mods") with a mods
screen and a searchable block browser.

Examples:
  modkit run                          # open the GLFW window
  modkit tui                          # run in the terminal
  modkit mods                         # list capabilities
  modkit blocks --search ore          # list catalog blocks
  modkit xray add diamond_ore         # mark a block for xray`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gui.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "settings file")
}

// defaultConfigPath is modkit/modkit.toml under the user config directory, or
// an in-memory session when there is none.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "modkit", "modkit.toml")
}

func newApp(opts app.Options) (*app.App, error) {
	opts.ConfigPath = configPath
	a, err := app.New(opts)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return a, nil
}
