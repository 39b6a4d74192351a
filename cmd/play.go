package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-play/internal/game"
	"github.com/robalobadob/wordle/apps/go-play/internal/render"
	"github.com/robalobadob/wordle/apps/go-play/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play one game reading guesses from standard input, one per line.
Lines that are not exactly 5 letters are ignored. The secret is picked from the
word list by seed (random when 0), by date with --daily, or given with --word.`,
	RunE: runPlay,
}

var (
	playSeed    uint64
	playDaily   bool
	playWord    string
	playNoColor bool
)

func init() {
	playCmd.Flags().Uint64VarP(&playSeed, "seed", "s", 0, "Seed selecting the secret word (0 = random)")
	playCmd.Flags().BoolVar(&playDaily, "daily", false, "Play the word of the day")
	playCmd.Flags().StringVar(&playWord, "word", "", "Use this secret word instead of the list")
	playCmd.Flags().BoolVar(&playNoColor, "no-color", false, "Disable coloured output")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := words.Init(cfg.AnswersFile); err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	secret, seed, err := pickSecret(words.Answers(), playWord, playSeed, playDaily, time.Now())
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	color := !playNoColor && isatty.IsTerminal(os.Stdout.Fd())
	if color {
		out = colorable.NewColorableStdout()
	}
	log.Debug().Uint64("seed", seed).Bool("daily", playDaily).Msg("starting game")
	_, err = playGame(os.Stdin, out, secret, seed, render.Renderer{Color: color})
	return err
}

// pickSecret chooses the secret word: explicit word, word of the day, or by seed.
func pickSecret(list *words.List, word string, seed uint64, daily bool, now time.Time) (game.Word, uint64, error) {
	switch {
	case word != "":
		w, err := game.ParseWord(words.Normalize(word))
		if err != nil {
			return game.Word{}, 0, fmt.Errorf("--word: %w", err)
		}
		return w, 0, nil
	case daily:
		w, s := list.Daily(now, cfg.DailySalt)
		return w, s, nil
	}
	if seed == 0 {
		seed = words.RandomSeed()
	}
	return list.PickBySeed(seed), seed, nil
}

// playGame runs one game over line-based input and returns the finished session.
// It stops early, without error, when input ends.
func playGame(in io.Reader, out io.Writer, secret game.Word, seed uint64, r render.Renderer) (*game.Session, error) {
	sess := game.NewSession(secret)
	fmt.Fprintln(out, render.Title(seed))

	sc := bufio.NewScanner(in)
	for !sess.State().Terminal() {
		fmt.Fprintf(out, "guess %d/%d> ", sess.Tries()+1, game.MaxTries)
		if !sc.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := words.Normalize(sc.Text())
		if line == "" {
			continue
		}
		fb, _, err := sess.ApplyGuess(line)
		switch {
		case errors.Is(err, game.ErrInvalidLength):
			fmt.Fprintf(out, "  %q: enter exactly %d letters\n", line, game.WordLength)
			continue
		case errors.Is(err, game.ErrInvalidLetter):
			fmt.Fprintf(out, "  %q: letters A-Z only\n", line)
			continue
		case err != nil:
			return sess, err
		}
		fmt.Fprintln(out, r.Row(fb))
	}
	if err := sc.Err(); err != nil {
		return sess, err
	}

	if msg := render.Outcome(sess); msg != "" {
		fmt.Fprintln(out)
		fmt.Fprint(out, r.Board(sess))
		fmt.Fprintln(out, msg)
	}
	return sess, nil
}
