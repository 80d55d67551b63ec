package main

import (
	"github.com/plus3/alscript/frontend"
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the scene in a window with the debug overlay",
	Long: `Runs the scene in an ebiten window at the configured tick rate, reading
the real keyboard and mouse. Escape closes the window.`,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	in := frontend.NewInput()
	w, err := setup(in)
	if err != nil {
		return err
	}
	defer w.logger.Sync()

	if err := w.engine.Start(); err != nil {
		return err
	}
	defer w.engine.Stop()

	game := frontend.NewGame(w.engine, in, w.config.DeltaTime(), w.config.MaxFrames)
	return frontend.Run(game, "alsandbox - "+w.scene.Name)
}
