package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best finished games.

An interactive table is shown when stdout is a terminal; plain text is
printed otherwise or with --plain.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --plain | head
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text even on a terminal")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole score history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Score history cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagLimit, width, height)
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return err
	}
	best, err := store.HighScore("")
	if err != nil {
		return err
	}
	printScores(cmd.OutOrStdout(), scores, best)
	return nil
}

// printScores writes the score list as text, highlighting the best
// score. Colors are dropped when stdout is not a terminal.
func printScores(w io.Writer, scores []storage.ScoreEntry, best int) {
	title := color.New(color.FgYellow, color.Bold)
	header := color.New(color.Faint)
	top := color.New(color.FgGreen, color.Bold)

	title.Fprintln(w, "Snake High Scores")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'snake' to set the first high score!")
		return
	}

	header.Fprintf(w, "  %-4s  %-16s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Length", "Date")
	header.Fprintf(w, "  %-4s  %-16s  %-6s  %-6s  %s\n", "----", "------", "-----", "------", "----")

	for i, e := range scores {
		line := fmt.Sprintf("  %-4d  %-16s  %-6d  %-6d  %s",
			i+1, e.Player, e.Score, e.Length, e.CreatedAt.Format("2006-01-02 15:04"))
		if e.Score == best {
			top.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
}
