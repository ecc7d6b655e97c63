package server

import (
	"errors"
	"log"

	"gis-arcade/internal/arcade"
	"gis-arcade/internal/leaderboard"
)

// completeRound runs the result flow for a terminal round: hand the score to
// the session, write it to the leaderboard, and redisplay the refreshed top
// three. Zero scores are never persisted, and a failed write still leaves the
// player looking at their local score.
func (s *Server) completeRound(sessionID string) *arcade.Session {
	var (
		game  leaderboard.Game
		name  string
		score int
	)
	session, err := s.sessions.Update(sessionID, func(session *arcade.Session) error {
		if session.Round == nil || !session.Round.Finished() {
			return errors.New("round not finished")
		}
		game = session.Game
		name = session.PlayerName
		score = session.Round.Score
		return session.FinishRound()
	})
	if err != nil {
		return nil
	}
	s.cancelRoundTimers(sessionID)
	log.Printf("round finished session_id=%s game=%s score=%d", sessionID, game, score)

	if score > 0 {
		if err := s.scores.Submit(game, name, score); err != nil {
			log.Printf("score save failed session_id=%s game=%s error=%v", sessionID, game, err)
		} else {
			s.persistScoreEvent(game, name, score)
			top, err := s.scores.Top(game, topSize)
			if err != nil {
				log.Printf("leaderboard readback failed game=%s error=%v", game, err)
			} else {
				updated, updateErr := s.sessions.Update(sessionID, func(session *arcade.Session) error {
					session.Leaders = top
					session.NewRecord = containsEntry(top, name, score)
					return nil
				})
				if updateErr == nil {
					session = updated
				}
				s.broadcastLeaderboardUpdate(game, top)
			}
		}
	}
	if snap, ok := s.snapshotFor(sessionID); ok {
		s.ws.Broadcast(sessionID, snap)
	}
	return session
}

// containsEntry is the "new record" membership check: does the refreshed top
// list hold an entry with this name and this exact score. The name is capped
// at maxNameLength runes to mirror what the store saved.
func containsEntry(top []leaderboard.Entry, name string, score int) bool {
	if runes := []rune(name); len(runes) > maxNameLength {
		name = string(runes[:maxNameLength])
	}
	for _, entry := range top {
		if entry.Name == name && entry.Score == score {
			return true
		}
	}
	return false
}
