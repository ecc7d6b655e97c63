package arcade

import (
	"testing"
	"time"

	"gis-arcade/internal/leaderboard"
)

func TestStartRoundRequiresName(t *testing.T) {
	session := &Session{Screen: ScreenLobby}
	if err := session.StartRound(leaderboard.GameWordDrop, Options{Seed: 1}); err == nil {
		t.Fatal("expected start without a name to fail")
	}
	session.PlayerName = "   "
	if err := session.StartRound(leaderboard.GameWordDrop, Options{Seed: 1}); err == nil {
		t.Fatal("expected start with a blank name to fail")
	}
}

func TestStartRoundCreatesFreshState(t *testing.T) {
	session := &Session{PlayerName: "Ada", Screen: ScreenLobby}
	if err := session.StartRound(leaderboard.GameCoordSnap, Options{Seed: 1}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if session.Screen != ScreenPlaying || session.Round == nil {
		t.Fatalf("expected playing screen with a round, got %q", session.Screen)
	}
	first := session.Round

	city, _ := first.CurrentCity()
	if err := first.Click(city.Lat, city.Lng); err != nil {
		t.Fatalf("click: %v", err)
	}
	first.finish()
	if err := session.FinishRound(); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if session.Screen != ScreenResult {
		t.Fatalf("expected result screen, got %q", session.Screen)
	}
	if session.Round != nil {
		t.Fatal("round state must be discarded once terminal")
	}
	if session.LastScore != 1000 {
		t.Fatalf("expected last score 1000, got %d", session.LastScore)
	}

	// Replaying builds a brand-new round, never resumes the old one.
	if err := session.StartRound(leaderboard.GameCoordSnap, Options{Seed: 2}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if session.Round == first {
		t.Fatal("replay must not reuse the finished round")
	}
	if session.Round.Score != 0 || session.LastScore != 0 {
		t.Fatal("replay must reset score state")
	}
}

func TestStartRoundRejectedWhilePlaying(t *testing.T) {
	session := &Session{PlayerName: "Ada", Screen: ScreenLobby}
	if err := session.StartRound(leaderboard.GameWordDrop, Options{Seed: 1}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := session.StartRound(leaderboard.GameWordDrop, Options{Seed: 1}); err == nil {
		t.Fatal("expected second start to be rejected mid-round")
	}
}

func TestFinishRoundRequiresTerminalRound(t *testing.T) {
	session := &Session{PlayerName: "Ada", Screen: ScreenLobby}
	if err := session.StartRound(leaderboard.GameWordDrop, Options{Seed: 1}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := session.FinishRound(); err == nil {
		t.Fatal("expected finish of an active round to fail")
	}
}

func TestAbandonReturnsToLobby(t *testing.T) {
	session := &Session{PlayerName: "Ada", Screen: ScreenLobby}
	if err := session.StartRound(leaderboard.GameWordDrop, Options{Seed: 1}); err != nil {
		t.Fatalf("start: %v", err)
	}
	session.Abandon()
	if session.Screen != ScreenLobby || session.Round != nil {
		t.Fatalf("expected clean lobby state, got screen=%q", session.Screen)
	}
}

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()
	session := store.Create("Ada")
	if session.ID == "" {
		t.Fatal("expected a session ID")
	}
	got, ok := store.Get(session.ID)
	if !ok || got.PlayerName != "Ada" {
		t.Fatalf("expected to find Ada, got %#v", got)
	}

	if _, err := store.Update("missing", func(*Session) error { return nil }); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	store.Delete(session.ID)
	if _, ok := store.Get(session.ID); ok {
		t.Fatal("expected session gone after delete")
	}
}

func TestSessionStoreView(t *testing.T) {
	store := NewSessionStore()
	if store.View("missing", func(*Session) {}) {
		t.Fatal("expected view of an unknown session to report false")
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	session := store.Create("Ada")
	created := session.LastActive

	now = now.Add(time.Hour)
	seen := ""
	if !store.View(session.ID, func(s *Session) { seen = s.PlayerName }) {
		t.Fatal("expected view to find the session")
	}
	if seen != "Ada" {
		t.Fatalf("expected Ada, got %q", seen)
	}
	if !session.LastActive.Equal(created) {
		t.Fatal("viewing a session must not refresh its activity")
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	stale := store.Create("Ada")
	now = now.Add(time.Hour)
	fresh := store.Create("Grace")

	expired := store.Expired(30 * time.Minute)
	if len(expired) != 1 || expired[0] != stale.ID {
		t.Fatalf("expected only the stale session, got %v", expired)
	}
	if _, ok := store.Get(fresh.ID); !ok {
		t.Fatal("fresh session must survive")
	}
}
