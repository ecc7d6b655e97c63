package server

import (
	"log"
	"time"

	"gis-arcade/internal/leaderboard"

	"github.com/go-co-op/gocron/v2"
)

// StartJobs launches the background scheduler: a prune reconciler that
// repairs leaderboard trims which failed during writes, and a reaper that
// drops idle arcade sessions and stops their timers. The returned scheduler
// should be shut down when the server exits.
func (s *Server) StartJobs() (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(time.Duration(s.cfg.PruneIntervalSeconds)*time.Second),
		gocron.NewTask(s.reconcilePrunes),
	)
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(time.Duration(s.cfg.ReaperIntervalSeconds)*time.Second),
		gocron.NewTask(s.reapIdleSessions),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}

func (s *Server) reconcilePrunes() {
	for _, game := range leaderboard.Games() {
		if err := s.scores.Prune(game); err != nil {
			log.Printf("prune reconcile failed game=%s error=%v", game, err)
		}
	}
}

func (s *Server) reapIdleSessions() {
	ttl := time.Duration(s.cfg.SessionTTLSeconds) * time.Second
	for _, sessionID := range s.sessions.Expired(ttl) {
		s.cancelRoundTimers(sessionID)
		s.sessions.Delete(sessionID)
		s.ws.CloseSession(sessionID)
		log.Printf("idle arcade session reaped session_id=%s", sessionID)
	}
}
