package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()
		if !yes {
			fmt.Fprint(out, "This deletes all learned letters, statistics and review progress. Type 'yes' to continue: ")
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		l, cleanup, err := openLearner(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer cleanup()

		if err := l.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(out, "Learner data reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
