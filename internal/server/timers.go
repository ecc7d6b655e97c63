package server

import (
	"time"

	"gis-arcade/internal/arcade"
)

// finishDelay is how long a terminal tick waits before running the result
// flow, so the final "missed" state reaches clients first.
const finishDelay = 50 * time.Millisecond

type roundTimers struct {
	tick  *time.Timer
	spawn *time.Timer
}

// scheduleRoundTimers arms the two periodic triggers for a session's round:
// the fast tick that advances falling words and the slower spawn that
// introduces new ones. Intervals are captured by the caller under the session
// store lock. Timers armed here are stopped on every exit from the active
// state: finish, back-to-lobby, close, and the session reaper.
func (s *Server) scheduleRoundTimers(sessionID string, tickInterval, spawnInterval time.Duration) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if existing, ok := s.timers[sessionID]; ok {
		existing.tick.Stop()
		existing.spawn.Stop()
	}
	s.timers[sessionID] = &roundTimers{
		tick:  time.AfterFunc(tickInterval, func() { s.onTick(sessionID) }),
		spawn: time.AfterFunc(spawnInterval, func() { s.onSpawn(sessionID) }),
	}
}

func (s *Server) cancelRoundTimers(sessionID string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if timers, ok := s.timers[sessionID]; ok {
		timers.tick.Stop()
		timers.spawn.Stop()
		delete(s.timers, sessionID)
	}
}

func (s *Server) onTick(sessionID string) {
	finished := false
	var interval time.Duration
	var snap map[string]any
	_, err := s.sessions.Update(sessionID, func(session *arcade.Session) error {
		if session.Round == nil || !session.Round.Active() {
			return arcade.ErrRoundNotActive
		}
		session.Round.Tick()
		finished = session.Round.Finished()
		interval = session.Round.TickInterval
		snap = s.snapshot(session)
		return nil
	})
	if err != nil {
		s.cancelRoundTimers(sessionID)
		return
	}
	if finished {
		s.cancelRoundTimers(sessionID)
		s.ws.Broadcast(sessionID, snap)
		// defer the result flow off the tick so the terminal state
		// flushes before the leaderboard write runs
		time.AfterFunc(finishDelay, func() { s.completeRound(sessionID) })
		return
	}
	s.rearmTick(sessionID, interval)
	s.ws.Broadcast(sessionID, snap)
}

func (s *Server) onSpawn(sessionID string) {
	var interval time.Duration
	var snap map[string]any
	_, err := s.sessions.Update(sessionID, func(session *arcade.Session) error {
		if session.Round == nil || !session.Round.Active() {
			return arcade.ErrRoundNotActive
		}
		session.Round.Spawn()
		interval = session.Round.SpawnInterval
		snap = s.snapshot(session)
		return nil
	})
	if err != nil {
		return
	}
	s.rearmSpawn(sessionID, interval)
	s.ws.Broadcast(sessionID, snap)
}

// rearmTick re-arms the tick timer with the round's current interval, which
// shrinks as the round speeds up.
func (s *Server) rearmTick(sessionID string, interval time.Duration) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	timers, ok := s.timers[sessionID]
	if !ok {
		return
	}
	timers.tick = time.AfterFunc(interval, func() { s.onTick(sessionID) })
}

func (s *Server) rearmSpawn(sessionID string, interval time.Duration) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	timers, ok := s.timers[sessionID]
	if !ok {
		return
	}
	timers.spawn = time.AfterFunc(interval, func() { s.onSpawn(sessionID) })
}
