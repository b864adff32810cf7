package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/akshara/internal/curriculum"
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "List the letters of the curriculum (optionally one group)",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, cleanup, err := openLearner(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer cleanup()

		groups := l.Curriculum.Groups()
		if key, _ := cmd.Flags().GetString("group"); key != "" {
			g, ok := l.Curriculum.Group(key)
			if !ok {
				return fmt.Errorf("no group %q", key)
			}
			groups = []curriculum.Group{g}
		}

		ctx := cmd.Context()
		write := l.Repo.LearnedIDs(ctx, curriculum.ModeWrite)
		read := l.Repo.LearnedIDs(ctx, curriculum.ModeRead)

		out := cmd.OutOrStdout()
		count := 0
		for _, g := range groups {
			fmt.Fprintf(out, "%s [%s]\n", g.Name, g.Key)
			fmt.Fprintln(out, strings.Repeat("─", 52))
			for _, letter := range g.Letters {
				fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %s %s  %s\n",
					letter.ID, letter.Transliteration, letter.Pronunciation,
					mark(write[letter.ID], "W"), mark(read[letter.ID], "R"),
					strings.Join(letter.Examples, ", "))
				count++
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%d letters\n", count)
		return nil
	},
}

func init() {
	lettersCmd.Flags().String("group", "", "Show one group (e.g. vowels, consonants_velar)")
}

// mark shows label when learned and a dot otherwise.
func mark(learned bool, label string) string {
	if learned {
		return label
	}
	return "·"
}
