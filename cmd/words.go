package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-play/internal/game"
	"github.com/robalobadob/wordle/apps/go-play/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words [WORD...]",
	Short: "Show word list statistics, or check words against the list",
	RunE:  runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	if err := words.Init(cfg.AnswersFile); err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	source := "embedded"
	if cfg.AnswersFile != "" {
		source = cfg.AnswersFile
	}
	out := cmd.OutOrStdout()
	total, unique := words.Stats()
	fmt.Fprintf(out, "source:  %s\nentries: %d\nunique:  %d\n", source, total, unique)

	for _, a := range args {
		w, err := game.ParseWord(words.Normalize(a))
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", a, err)
			continue
		}
		fmt.Fprintf(out, "%s: in list = %t\n", w, words.Answers().Contains(w))
	}
	return nil
}
