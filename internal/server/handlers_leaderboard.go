package server

import (
	"log"
	"math"
	"net/http"

	"gis-arcade/internal/leaderboard"
)

const topSize = 3

type submitScoreRequest struct {
	Name  string   `json:"name"`
	Score *float64 `json:"score"`
	Game  string   `json:"game"`
}

// handleLeaderboardTop serves the top three for a game, defaulting to Word
// Drop. A storage failure is masked as an empty board: the caller renders an
// empty list, never an error banner.
func (s *Server) handleLeaderboardTop(w http.ResponseWriter, r *http.Request) {
	game, err := leaderboard.ParseGame(r.URL.Query().Get("game"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown game")
		return
	}
	top, err := s.scores.Top(game, topSize)
	if err != nil {
		log.Printf("leaderboard read failed game=%s error=%v", game, err)
		writeJSON(w, http.StatusInternalServerError, []leaderboard.Entry{})
		return
	}
	if top == nil {
		top = []leaderboard.Entry{}
	}
	writeJSON(w, http.StatusOK, top)
}

// handleLeaderboardSubmit validates and appends a score, then answers with
// the post-write top three.
func (s *Server) handleLeaderboardSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitScoreRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	game, err := leaderboard.ParseGame(req.Game)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	name := normalizeText(req.Name)
	if name == "" || req.Score == nil || *req.Score < 0 || math.IsNaN(*req.Score) || math.IsInf(*req.Score, 0) {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	score := int(math.Round(*req.Score))

	if err := s.scores.Submit(game, name, score); err != nil {
		log.Printf("leaderboard write failed game=%s name=%s error=%v", game, name, err)
		writeError(w, http.StatusInternalServerError, "failed to save score")
		return
	}
	s.persistScoreEvent(game, name, score)
	log.Printf("score submitted game=%s name=%s score=%d", game, name, score)

	top, err := s.scores.Top(game, topSize)
	if err != nil {
		log.Printf("leaderboard readback failed game=%s error=%v", game, err)
		writeError(w, http.StatusInternalServerError, "failed to save score")
		return
	}
	if top == nil {
		top = []leaderboard.Entry{}
	}
	s.broadcastLeaderboardUpdate(game, top)
	writeJSON(w, http.StatusOK, top)
}

func (s *Server) handleGameCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, leaderboard.GameCatalog())
}
