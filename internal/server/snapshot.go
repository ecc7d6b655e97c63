package server

import (
	"gis-arcade/internal/arcade"
	"gis-arcade/internal/leaderboard"
)

// snapshotFor builds a wire snapshot with the session store lock held.
// Snapshots must never be built from a session pointer outside the lock;
// tick timers mutate round state concurrently.
func (s *Server) snapshotFor(sessionID string) (map[string]any, bool) {
	var snap map[string]any
	ok := s.sessions.View(sessionID, func(session *arcade.Session) {
		snap = s.snapshot(session)
	})
	return snap, ok
}

func (s *Server) snapshot(session *arcade.Session) map[string]any {
	snap := map[string]any{
		"session_id": session.ID,
		"player":     session.PlayerName,
		"screen":     session.Screen,
	}
	if session.Game != "" {
		snap["game"] = session.Game
	}
	if session.Round != nil {
		snap["round"] = roundSnapshot(session.Round)
	}
	if session.Screen == arcade.ScreenResult {
		leaders := session.Leaders
		if leaders == nil {
			leaders = []leaderboard.Entry{}
		}
		snap["last_score"] = session.LastScore
		snap["new_record"] = session.NewRecord
		snap["leaders"] = leaders
	}
	return snap
}

func roundSnapshot(round *arcade.Round) map[string]any {
	snap := map[string]any{
		"game":  round.Variant,
		"state": round.State,
		"score": round.Score,
	}
	switch round.Variant {
	case leaderboard.GameWordDrop:
		falling := round.Falling
		if falling == nil {
			falling = []arcade.FallingWord{}
		}
		snap["falling"] = falling
		snap["combo"] = round.Combo
		snap["misses"] = round.Misses
		snap["lives"] = round.MissLimit - round.Misses
		snap["tick_ms"] = round.TickInterval.Milliseconds()
	case leaderboard.GameCoordSnap:
		snap["round"] = round.RoundIndex + 1
		snap["rounds"] = len(round.Cities)
		snap["awaiting_next"] = round.AwaitingNext
		if city, ok := round.CurrentCity(); ok {
			// target coordinates stay hidden until the guess lands
			snap["city"] = map[string]string{
				"name":    city.Name,
				"country": city.Country,
			}
			if round.AwaitingNext {
				snap["target"] = map[string]float64{
					"lat": city.Lat,
					"lng": city.Lng,
				}
				snap["last_km"] = round.LastKm
				snap["last_points"] = round.LastPoints
			}
		}
	case leaderboard.GameTypeRacer:
		snap["round"] = round.RoundIndex + 1
		snap["rounds"] = len(round.Texts)
		snap["awaiting_next"] = round.AwaitingNext
		snap["typed"] = round.Typed
		if target, ok := round.CurrentText(); ok {
			snap["target"] = target
		}
		history := round.RoundWPM
		if history == nil {
			history = []int{}
		}
		snap["wpm_history"] = history
	}
	return snap
}
