package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/modkit/backend/opengl"
	"github.com/go-theft-auto/modkit/backend/term"
	"github.com/go-theft-auto/modkit/internal/app"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the GLFW window",
	Long: `Open an OpenGL window sized from the settings file. Insert toggles the
mods screen, F2-F5 toggle capabilities and Escape closes the open screen.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		a, err := newApp(app.Options{Sounder: term.Bell{}})
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, a.Save()) }()
		w := a.Config.Window
		return opengl.Run(cmd.Context(), opengl.Config{
			Title:    w.Title,
			Width:    w.Width,
			Height:   w.Height,
			TickRate: a.Config.TickRate,
		}, a.Bridge, a.Frame)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run in the terminal",
	Long: `Run the session full screen in the terminal. Each cell holds one glyph of
the GUI font, the mouse works as in the window and ctrl+c quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		a, err := newApp(app.Options{Sounder: term.Bell{}})
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, a.Save()) }()
		return term.Run(cmd.Context(), a.Bridge, a.Frame, a.Config.TickRate)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tuiCmd)
}
