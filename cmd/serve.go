package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-play/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-play/internal/store"
	"github.com/robalobadob/wordle/apps/go-play/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host games over HTTP",
	Long: `Serve a JSON API where each client starts its own game and submits guesses.
Games are kept in memory only and dropped after GAME_TTL of inactivity.`,
	RunE: runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := words.Init(cfg.AnswersFile); err != nil {
		return fmt.Errorf("load word list: %w", err)
	}
	total, unique := words.Stats()
	log.Info().Int("answers", total).Int("unique", unique).Msg("word list loaded")
	if cfg.UsesDevSecret() {
		log.Warn().Msg("JWT_SECRET not set; game tokens are signed with the development key")
	}

	srv := httpserver.New(store.NewMemoryStore(cfg.GameTTL), words.Answers(), httpserver.Options{
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.GameTTL,
		ClientOrigin: cfg.ClientOrigin,
		DailySalt:    cfg.DailySalt,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, ":"+strconv.Itoa(cfg.Port), time.Minute)
}
