package arcade

import (
	"errors"
	"strings"
	"sync"
	"time"

	"gis-arcade/internal/leaderboard"

	"github.com/google/uuid"
)

const (
	ScreenLobby   = "lobby"
	ScreenPlaying = "playing"
	ScreenResult  = "result"
)

var ErrSessionNotFound = errors.New("session not found")

// Session drives one player's lobby → playing → result flow. The name is
// captured once; each play dispatches a fresh Round and the terminal score is
// handed back here for the leaderboard write.
type Session struct {
	ID         string
	PlayerName string
	Screen     string
	Game       leaderboard.Game
	Round      *Round
	LastScore  int
	NewRecord  bool
	Leaders    []leaderboard.Entry
	LastActive time.Time
}

// StartRound moves the session into playing with a brand-new round. Replays
// never reuse a finished round's state.
func (s *Session) StartRound(game leaderboard.Game, opts Options) error {
	if strings.TrimSpace(s.PlayerName) == "" {
		return errors.New("player name is required")
	}
	if s.Screen == ScreenPlaying {
		return errors.New("round already in progress")
	}
	round := NewRound(game, opts)
	if err := round.Start(); err != nil {
		return err
	}
	s.Game = game
	s.Round = round
	s.Screen = ScreenPlaying
	s.LastScore = 0
	s.NewRecord = false
	s.Leaders = nil
	return nil
}

// FinishRound records the terminal score and discards the round state.
func (s *Session) FinishRound() error {
	if s.Screen != ScreenPlaying || s.Round == nil {
		return errors.New("no round in progress")
	}
	if !s.Round.Finished() {
		return errors.New("round not finished")
	}
	s.LastScore = s.Round.Score
	s.Round = nil
	s.Screen = ScreenResult
	return nil
}

// Abandon drops an unfinished round and returns to the lobby.
func (s *Session) Abandon() {
	s.Round = nil
	s.Screen = ScreenLobby
	s.LastScore = 0
	s.NewRecord = false
	s.Leaders = nil
}

// Store holds the active sessions behind one lock. Tick and spawn timers,
// player input, and the reaper all mutate sessions through Update, so round
// state never sees concurrent writes.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessionStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Create(name string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := &Session{
		ID:         uuid.NewString(),
		PlayerName: name,
		Screen:     ScreenLobby,
		LastActive: s.now(),
	}
	s.sessions[session.ID] = session
	return session
}

func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	return session, ok
}

// View runs view with the store lock held, so reads of round state are
// consistent even while tick timers are mutating it. LastActive is not
// touched: watching a session does not keep it alive.
func (s *Store) View(id string, view func(session *Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return false
	}
	view(session)
	return true
}

func (s *Store) Update(id string, update func(session *Session) error) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := update(session); err != nil {
		return nil, err
	}
	session.LastActive = s.now()
	return session, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Expired returns the IDs of sessions idle past ttl.
func (s *Store) Expired(ttl time.Duration) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	var expired []string
	for id, session := range s.sessions {
		if session.LastActive.Before(cutoff) {
			expired = append(expired, id)
		}
	}
	return expired
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
