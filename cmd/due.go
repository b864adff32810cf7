package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List letters due for review today",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, cleanup, err := openLearner(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer cleanup()

		out := cmd.OutOrStdout()
		due := l.Selector.Due(cmd.Context())
		if len(due) == 0 {
			fmt.Fprintln(out, "Nothing due for review today.")
			return nil
		}

		fmt.Fprintf(out, "%-6s  %-8s  %6s  %6s  %s\n", "Letter", "Sound", "Write", "Read", "Last reviewed")
		for _, c := range due {
			letter, _ := l.Curriculum.Letter(c.LetterID)
			last := "never"
			if c.LastReviewed != nil {
				last = c.LastReviewed.Local().Format("2006-01-02 15:04")
			}
			fmt.Fprintf(out, "%-6s  %-8s  %5d%%  %5d%%  %s\n",
				c.LetterID, letter.Transliteration, c.WriteCorrectness, c.ReadCorrectness, last)
		}
		fmt.Fprintf(out, "\n%d letters due\n", len(due))
		return nil
	},
}
