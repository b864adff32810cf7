package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels in order with their progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, cleanup, err := openLearner(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%3s  %-28s  %-36s  %5s\n", "#", "ID", "Description", "Done")
		fmt.Fprintln(out, strings.Repeat("─", 78))
		for _, lvl := range l.Curriculum.Levels() {
			fmt.Fprintf(out, "%3d  %-28s  %-36s  %4d%%\n",
				lvl.Number, lvl.ID, lvl.Description(), l.Progress.LevelProgress(cmd.Context(), lvl.ID))
		}
		return nil
	},
}
