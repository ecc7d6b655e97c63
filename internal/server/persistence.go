package server

import (
	"encoding/json"
	"log"
	"time"

	"gis-arcade/internal/db"
	"gis-arcade/internal/leaderboard"

	"gorm.io/datatypes"
)

type eventPayload struct {
	Name  string `json:"name,omitempty"`
	Score int    `json:"score,omitempty"`
	Count int    `json:"count,omitempty"`
}

// persistScoreEvent appends a score submission to the audit event log. The
// log is best-effort and never blocks the request path.
func (s *Server) persistScoreEvent(game leaderboard.Game, name string, score int) {
	s.persistEvent(game, "score_submitted", eventPayload{Name: name, Score: score})
}

func (s *Server) persistEvent(game leaderboard.Game, eventType string, payload eventPayload) {
	if s.db == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	record := db.Event{
		Game:      string(game),
		Type:      eventType,
		Payload:   datatypes.JSON(data),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("event persist failed game=%s type=%s error=%v", game, eventType, err)
	}
}
