package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"gis-arcade/internal/arcade"
	"gis-arcade/internal/leaderboard"
)

type createSessionRequest struct {
	Name string `json:"name"`
}

type startRoundRequest struct {
	Game string `json:"game"`
}

type roundInputRequest struct {
	Text *string  `json:"text,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// Malformed input for the variant in play is a payload problem, not a state
// conflict, and maps to 400.
var (
	errTextRequired   = errors.New("text input required")
	errCoordsRequired = errors.New("lat and lng required")
)

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	name, err := validateName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	session := s.sessions.Create(name)
	log.Printf("arcade session created session_id=%s player=%s", session.ID, name)
	writeJSON(w, http.StatusCreated, map[string]string{
		"session_id": session.ID,
	})
}

func (s *Server) handleSessionSubroutes(w http.ResponseWriter, r *http.Request) {
	sessionID, action, ok := parseArcadePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.Method == http.MethodGet {
		if action != "" {
			http.NotFound(w, r)
			return
		}
		s.handleSessionSnapshot(w, r, sessionID)
		return
	}
	switch action {
	case "start":
		s.handleStartRound(w, r, sessionID)
	case "input":
		s.handleRoundInput(w, r, sessionID)
	case "next":
		s.handleRoundNext(w, r, sessionID)
	case "lobby":
		s.handleBackToLobby(w, r, sessionID)
	case "close":
		s.handleCloseSession(w, r, sessionID)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleSessionSnapshot(w http.ResponseWriter, r *http.Request, sessionID string) {
	snap, ok := s.snapshotFor(sessionID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStartRound(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req startRoundRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	game, err := leaderboard.ParseGame(req.Game)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown game")
		return
	}
	var (
		snap          map[string]any
		needsTimers   bool
		tickInterval  time.Duration
		spawnInterval time.Duration
	)
	_, err = s.sessions.Update(sessionID, func(session *arcade.Session) error {
		if err := session.StartRound(game, s.roundOptions()); err != nil {
			return err
		}
		needsTimers = session.Round.NeedsTimers()
		tickInterval = session.Round.TickInterval
		spawnInterval = session.Round.SpawnInterval
		snap = s.snapshot(session)
		return nil
	})
	if errors.Is(err, arcade.ErrSessionNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if needsTimers {
		s.scheduleRoundTimers(sessionID, tickInterval, spawnInterval)
	}
	log.Printf("round started session_id=%s game=%s", sessionID, game)
	s.ws.Broadcast(sessionID, snap)
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRoundInput(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req roundInputRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	matched := false
	var snap map[string]any
	_, err := s.sessions.Update(sessionID, func(session *arcade.Session) error {
		round := session.Round
		if round == nil || !round.Active() {
			return arcade.ErrRoundNotActive
		}
		switch round.Variant {
		case leaderboard.GameWordDrop:
			if req.Text == nil {
				return errTextRequired
			}
			matched = round.TypeWord(*req.Text)
		case leaderboard.GameTypeRacer:
			if req.Text == nil {
				return errTextRequired
			}
			if err := round.Type(*req.Text); err != nil {
				return err
			}
		case leaderboard.GameCoordSnap:
			if req.Lat == nil || req.Lng == nil {
				return errCoordsRequired
			}
			if err := round.Click(*req.Lat, *req.Lng); err != nil {
				return err
			}
		default:
			return errors.New("unknown variant")
		}
		snap = s.snapshot(session)
		return nil
	})
	if errors.Is(err, arcade.ErrSessionNotFound) {
		http.NotFound(w, r)
		return
	}
	if errors.Is(err, errTextRequired) || errors.Is(err, errCoordsRequired) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	s.ws.Broadcast(sessionID, snap)
	snap["matched"] = matched
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRoundNext(w http.ResponseWriter, r *http.Request, sessionID string) {
	finished := false
	var snap map[string]any
	_, err := s.sessions.Update(sessionID, func(session *arcade.Session) error {
		round := session.Round
		if round == nil {
			return arcade.ErrRoundNotActive
		}
		if err := round.Next(); err != nil {
			return err
		}
		finished = round.Finished()
		snap = s.snapshot(session)
		return nil
	})
	if errors.Is(err, arcade.ErrSessionNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if finished {
		if s.completeRound(sessionID) == nil {
			http.NotFound(w, r)
			return
		}
		resultSnap, ok := s.snapshotFor(sessionID)
		if !ok {
			http.NotFound(w, r)
			return
		}
		snap = resultSnap
	} else {
		s.ws.Broadcast(sessionID, snap)
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleBackToLobby(w http.ResponseWriter, r *http.Request, sessionID string) {
	s.cancelRoundTimers(sessionID)
	var snap map[string]any
	_, err := s.sessions.Update(sessionID, func(session *arcade.Session) error {
		session.Abandon()
		snap = s.snapshot(session)
		return nil
	})
	if errors.Is(err, arcade.ErrSessionNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	s.ws.Broadcast(sessionID, snap)
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	s.cancelRoundTimers(sessionID)
	s.sessions.Delete(sessionID)
	s.ws.CloseSession(sessionID)
	log.Printf("arcade session closed session_id=%s", sessionID)
	writeJSON(w, http.StatusOK, map[string]bool{"closed": true})
}
