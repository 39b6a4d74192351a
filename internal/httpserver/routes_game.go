// internal/httpserver/routes_game.go
//
// Game routes.
//   - POST /game/new     → start a session (random, seeded or daily secret), returns a token
//   - POST /game/guess   → submit a guess (token required)
//   - GET  /game/{id}    → current state and history (token required)
//
// Guesses are normalized here (trim + uppercase) before they reach the game core.
// A guess sent after the game ended is answered with applied=false and the
// unchanged state; it is not an error.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle/apps/go-play/internal/game"
	"github.com/robalobadob/wordle/apps/go-play/internal/store"
	"github.com/robalobadob/wordle/apps/go-play/internal/words"
)

// mountGame registers the /game routes.
func (s *Server) mountGame() {
	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.With(s.requireGameToken()).Post("/guess", s.handleGuess)
		r.With(s.requireGameToken()).Get("/{id}", s.handleGetGame)
	})
}

// hintDTO is one position of a feedback record on the wire.
type hintDTO struct {
	Letter string        `json:"letter"`
	Hint   game.HintKind `json:"hint"` // "exact" | "misplaced" | "absent"
}

func toHints(fb game.Feedback) []hintDTO {
	out := make([]hintDTO, 0, game.WordLength)
	for _, h := range fb {
		out = append(out, hintDTO{Letter: h.Letter.String(), Hint: h.Kind})
	}
	return out
}

// answerIfOver reveals the secret once the session can no longer change.
func answerIfOver(sess *game.Session) string {
	if sess.State().Terminal() {
		return sess.Secret().String()
	}
	return ""
}

// -----------------------------------------------------------------------------
// /game/new

type newGameReq struct {
	Seed  uint64 `json:"seed"`  // 0 picks a random seed
	Daily bool   `json:"daily"` // word of the day; seed is ignored
}

type newGameRes struct {
	GameID     string `json:"gameId"`
	Token      string `json:"token"`
	ExpiresAt  int64  `json:"expiresAt"`
	Seed       uint64 `json:"seed"`
	Daily      bool   `json:"daily"`
	Date       string `json:"date,omitempty"`
	MaxTries   int    `json:"maxTries"`
	WordLength int    `json:"wordLength"`
}

// handleNewGame creates a session and returns the token that opens it.
// An empty body is accepted and means a random secret.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	res := newGameRes{MaxTries: game.MaxTries, WordLength: game.WordLength, Daily: req.Daily}
	var secret game.Word
	switch {
	case req.Daily:
		now := s.opts.Now()
		secret, res.Seed = s.words.Daily(now, s.opts.DailySalt)
		res.Date = words.DateKey(now)
	case req.Seed != 0:
		res.Seed = req.Seed
		secret = s.words.PickBySeed(req.Seed)
	default:
		res.Seed = words.RandomSeed()
		secret = s.words.PickBySeed(res.Seed)
	}

	sess := game.NewSession(secret)
	if err := s.store.Save(r.Context(), &store.Entry{Session: sess, Seed: res.Seed, Daily: req.Daily}); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.signToken(sess.ID())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	res.GameID, res.Token, res.ExpiresAt = sess.ID(), tok, exp.Unix()

	hlog.FromRequest(r).Debug().Str("gameId", sess.ID()).Uint64("seed", res.Seed).Bool("daily", req.Daily).Msg("game created")
	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// /game/guess

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Applied   bool       `json:"applied"`
	Hints     []hintDTO  `json:"hints"`
	Pattern   string     `json:"pattern,omitempty"`
	State     game.State `json:"state"` // "in_progress" | "win" | "lost"
	Tries     int        `json:"tries"`
	Remaining int        `json:"remaining"`
	Answer    string     `json:"answer,omitempty"`
}

// handleGuess normalizes and applies a guess to the session named in the body.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.GameID == "" || req.GameID != tokenGameID(r) {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	guess := words.Normalize(req.Guess)
	var res guessRes
	err := s.store.Update(r.Context(), req.GameID, func(e *store.Entry) error {
		fb, applied, err := e.Session.ApplyGuess(guess)
		if err != nil {
			return err
		}
		res = guessRes{
			Applied:   applied,
			Hints:     []hintDTO{},
			State:     e.Session.State(),
			Tries:     e.Session.Tries(),
			Remaining: e.Session.Remaining(),
			Answer:    answerIfOver(e.Session),
		}
		if applied {
			res.Hints = toHints(fb)
			res.Pattern = fb.Pattern()
		}
		return nil
	})
	switch {
	case errors.Is(err, game.ErrInvalidLength):
		writeError(w, http.StatusBadRequest, "invalid_length")
		return
	case errors.Is(err, game.ErrInvalidLetter):
		writeError(w, http.StatusBadRequest, "invalid_letter")
		return
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	hlog.FromRequest(r).Debug().
		Str("gameId", req.GameID).
		Bool("applied", res.Applied).
		Stringer("state", res.State).
		Int("tries", res.Tries).
		Msg("guess")
	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// /game/{id}

type rowDTO struct {
	Word    string    `json:"word"`
	Hints   []hintDTO `json:"hints"`
	Pattern string    `json:"pattern"`
}

type gameRes struct {
	GameID    string     `json:"gameId"`
	State     game.State `json:"state"`
	Tries     int        `json:"tries"`
	Remaining int        `json:"remaining"`
	Seed      uint64     `json:"seed"`
	Daily     bool       `json:"daily"`
	History   []rowDTO   `json:"history"`
	Answer    string     `json:"answer,omitempty"`
}

// handleGetGame returns the full state of the token's game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != tokenGameID(r) {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var res gameRes
	err := s.store.View(r.Context(), id, func(e *store.Entry) error {
		res = gameRes{
			GameID:    id,
			State:     e.Session.State(),
			Tries:     e.Session.Tries(),
			Remaining: e.Session.Remaining(),
			Seed:      e.Seed,
			Daily:     e.Daily,
			History:   []rowDTO{},
			Answer:    answerIfOver(e.Session),
		}
		for _, fb := range e.Session.History() {
			res.History = append(res.History, rowDTO{Word: fb.Word().String(), Hints: toHints(fb), Pattern: fb.Pattern()})
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("gameId", id).Msg("view game")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}
