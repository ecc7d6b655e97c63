package server

import (
	"net/http"
	"sync"
	"time"

	"gis-arcade/internal/arcade"
	"gis-arcade/internal/config"
	"gis-arcade/internal/leaderboard"

	"gorm.io/gorm"
)

type Server struct {
	scores   *leaderboard.Store
	sessions *arcade.Store
	db       *gorm.DB
	ws       *wsHub
	homeWS   *homeHub
	cfg      config.Config
	timersMu sync.Mutex
	timers   map[string]*roundTimers
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		scores:   leaderboard.NewStore(conn, cfg.LeaderboardSize),
		sessions: arcade.NewSessionStore(),
		db:       conn,
		ws:       newWSHub(),
		homeWS:   newHomeHub(),
		cfg:      cfg,
		timers:   make(map[string]*roundTimers),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboardTop)
	mux.HandleFunc("POST /api/leaderboard", s.handleLeaderboardSubmit)
	mux.HandleFunc("GET /api/games", s.handleGameCatalog)
	mux.HandleFunc("POST /api/arcade", s.handleCreateSession)
	mux.HandleFunc("GET /api/arcade/", s.handleSessionSubroutes)
	mux.HandleFunc("POST /api/arcade/", s.handleSessionSubroutes)
	mux.HandleFunc("GET /ws/arcade/", s.handleSessionWebsocket)
	mux.HandleFunc("GET /ws/leaderboard", s.handleHomeWebsocket)
	return mux
}

func (s *Server) roundOptions() arcade.Options {
	return arcade.Options{
		Lives:         s.cfg.WordDropLives,
		TickInterval:  time.Duration(s.cfg.WordDropTickMillis) * time.Millisecond,
		SpawnInterval: time.Duration(s.cfg.WordDropSpawnMillis) * time.Millisecond,
	}
}
