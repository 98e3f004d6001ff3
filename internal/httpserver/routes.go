// internal/httpserver/routes.go
//
// Solver endpoint handlers.
// A session is created from the dictionary snapshot, narrowed by repeated
// guess/feedback submissions, and queried for surviving candidates. All
// handlers speak JSON; solver validation failures map to 400, token problems
// to 401, unknown sessions to 404.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/candidates"
	"github.com/robalobadob/wordle-solver/internal/session"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

const (
	defaultWordSize    = 5
	maxWordSize        = 32
	defaultCandidates  = 10
	maxCandidatesLimit = 500
)

// newSessionReq/Res payloads for POST /solver/new.
type newSessionReq struct {
	WordSize int  `json:"wordSize"` // defaults to 5
	Plain    bool `json:"plain"`    // true = unranked store, ignore counts
}
type newSessionRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	WordSize  int    `json:"wordSize"`
	Size      int    `json:"size"`
	ExpiresAt string `json:"expiresAt"`
}

// handleNewSession builds a candidate store from the dictionary, wraps it in
// a solver session, and returns a signed token naming the session.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	wordSize := req.WordSize
	if wordSize == 0 {
		wordSize = defaultWordSize
	}
	if wordSize < 1 || wordSize > maxWordSize {
		http.Error(w, `{"error":"invalid_word_size"}`, http.StatusBadRequest)
		return
	}

	var store candidates.Store
	if req.Plain {
		words := make([]string, 0, len(s.dict))
		for _, e := range s.dict {
			words = append(words, e.Word)
		}
		store = candidates.NewList(words, wordSize)
	} else {
		store = candidates.NewRanked(s.dict, wordSize)
	}

	sess := &session.Session{
		ID:        session.NewID(),
		Solver:    solver.New(store),
		Ranked:    !req.Plain,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	tok, exp, err := signSessionToken(sess.ID)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("sessionId", sess.ID).Int("wordSize", wordSize).Int("size", sess.Solver.Size()).Msg("new solver session")

	_ = json.NewEncoder(w).Encode(newSessionRes{
		SessionID: sess.ID,
		Token:     tok,
		WordSize:  wordSize,
		Size:      sess.Solver.Size(),
		ExpiresAt: exp.UTC().Format(time.RFC3339),
	})
}

// guessReq/Res payloads for POST /solver/guess.
type guessReq struct {
	Guess    string `json:"guess"`
	Feedback string `json:"feedback"` // per-position 'b' | 'y' | 'g'
}
type guessRes struct {
	Remaining  int      `json:"remaining"`
	Candidates []string `json:"candidates"`
}

// handleGuess applies one guess/feedback pair to the session's solver.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if sess == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	remaining, err := sess.Solver.Update(req.Guess, req.Feedback)
	if err != nil {
		if errors.Is(err, solver.ErrInvalidArgument) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("update failed")
		http.Error(w, `{"error":"update_failed"}`, http.StatusInternalServerError)
		return
	}

	sess.Updates++
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(guessRes{
		Remaining:  remaining,
		Candidates: sess.Solver.Candidates(candidateLimit(r)),
	})
}

// handleCandidates lists surviving candidates without mutating the session.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if sess == nil {
		http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(guessRes{
		Remaining:  sess.Solver.Size(),
		Candidates: sess.Solver.Candidates(candidateLimit(r)),
	})
}

// handleDictStats reports the size of the loaded dictionary snapshot.
func (s *Server) handleDictStats(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]int{"entries": len(s.dict)})
}

// candidateLimit reads the optional ?limit= query parameter.
func candidateLimit(r *http.Request) int {
	limit := defaultCandidates
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxCandidatesLimit {
		limit = maxCandidatesLimit
	}
	return limit
}

// writeError emits a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
