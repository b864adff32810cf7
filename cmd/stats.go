package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/akshara/internal/curriculum"
	"github.com/abhisek/akshara/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats [letter]",
	Short: "Show answer statistics for all letters or one letter",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, cleanup, err := openLearner(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			id := args[0]
			if _, ok := l.Curriculum.Letter(id); !ok {
				return fmt.Errorf("%w: %q", curriculum.ErrUnknownLetter, id)
			}
			st := l.Stats.Stats(ctx, id)
			for _, mode := range curriculum.Modes() {
				rec, learned := l.Repo.Get(ctx, id, mode)
				c := st.Counter(mode)
				fmt.Fprintf(out, "%-5s  %d/%d correct (%d%%)", mode.Label(), c.Correct, c.Total, c.Percent())
				if learned && rec.LearnedDate != nil {
					fmt.Fprintf(out, "  learned %s", rec.LearnedDate.Local().Format("2006-01-02"))
				}
				fmt.Fprintln(out)
			}
			return nil
		}

		all := l.Stats.All(ctx)
		if len(all) == 0 {
			fmt.Fprintln(out, "No attempts recorded yet.")
			return nil
		}

		// Curriculum order, then any ids the curriculum no longer has.
		var ids []string
		for _, letter := range l.Curriculum.Letters() {
			if _, ok := all[letter.ID]; ok {
				ids = append(ids, letter.ID)
			}
		}
		var extra []string
		for id := range all {
			if _, ok := l.Curriculum.Letter(id); !ok {
				extra = append(extra, id)
			}
		}
		slices.Sort(extra)
		ids = append(ids, extra...)

		fmt.Fprintf(out, "%-6s  %-12s  %-12s\n", "Letter", "Write", "Read")
		for _, id := range ids {
			st := all[id]
			fmt.Fprintf(out, "%-6s  %-12s  %-12s\n", id, counter(st.Write), counter(st.Read))
		}
		return nil
	},
}

func counter(c stats.Counter) string {
	return fmt.Sprintf("%d/%d %d%%", c.Correct, c.Total, c.Percent())
}
