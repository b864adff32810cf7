package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/akshara/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the learner's data and launches the TUI.
func runApp(cmd *cobra.Command) error {
	l, cleanup, err := openLearner(cmd, nil)
	if err != nil {
		return err
	}
	defer cleanup()
	return app.Run(l)
}
