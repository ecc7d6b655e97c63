package leaderboard

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"gis-arcade/internal/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxNameLength = 20

// Entry is one leaderboard row as exposed over the API.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store is the ranked score collection, one logical sorted set per game.
// With a nil connection it falls back to an in-memory map, which keeps the
// HTTP layer runnable without Postgres.
type Store struct {
	db   *gorm.DB
	keep int

	mu  sync.Mutex
	mem map[Game][]memEntry
	seq int64

	now func() time.Time
}

// truncateName caps a player name at maxNameLength characters. Truncation
// counts runes, not bytes, so multi-byte names are never cut mid-rune.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameLength {
		return name
	}
	return string(runes[:maxNameLength])
}

type memEntry struct {
	member string
	name   string
	score  int
	seq    int64
}

func NewStore(conn *gorm.DB, keep int) *Store {
	if keep <= 0 {
		keep = 100
	}
	return &Store{
		db:   conn,
		keep: keep,
		mem:  make(map[Game][]memEntry),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Submit appends a new entry for game and trims everything ranked below the
// retention limit. Names are never unique keys: each play produces a fresh
// member suffixed with the submission timestamp. A failed trim is tolerated,
// a failed insert is not.
func (s *Store) Submit(game Game, name string, score int) error {
	if _, err := ParseGame(string(game)); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name is required")
	}
	if score < 0 {
		return errors.New("score must not be negative")
	}
	name = truncateName(name)
	at := s.now()
	member := fmt.Sprintf("%s:%d", name, at.UnixMilli())

	if s.db == nil {
		s.submitMem(game, member, name, score)
		return nil
	}

	record := db.Score{
		Game:        string(game),
		Member:      member,
		Name:        name,
		Score:       score,
		SubmittedAt: at,
	}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		return err
	}
	if err := s.Prune(game); err != nil {
		log.Printf("leaderboard prune failed game=%s error=%v", game, err)
	}
	return nil
}

// Top returns the n highest entries for game, descending, ties broken by
// earlier submission.
func (s *Store) Top(game Game, n int) ([]Entry, error) {
	if _, err := ParseGame(string(game)); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []Entry{}, nil
	}

	if s.db == nil {
		return s.topMem(game, n), nil
	}

	var records []db.Score
	err := s.db.Where("game = ?", string(game)).
		Order("score DESC, id ASC").
		Limit(n).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, Entry{Name: record.Name, Score: record.Score})
	}
	return entries, nil
}

// Prune deletes every entry for game ranked below the retention limit. It is
// run after each insert and again periodically, so a trim that failed during
// a write gets repaired.
func (s *Store) Prune(game Game) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pruneMemLocked(game)
		return nil
	}
	sub := s.db.Model(&db.Score{}).
		Select("id").
		Where("game = ?", string(game)).
		Order("score DESC, id ASC").
		Limit(s.keep)
	return s.db.
		Where("game = ? AND id NOT IN (?)", string(game), sub).
		Delete(&db.Score{}).Error
}

// Size reports how many entries a game currently retains.
func (s *Store) Size(game Game) (int, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return len(s.mem[game]), nil
	}
	var count int64
	err := s.db.Model(&db.Score{}).Where("game = ?", string(game)).Count(&count).Error
	return int(count), err
}

func (s *Store) submitMem(game Game, member, name string, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.mem[game] = append(s.mem[game], memEntry{
		member: member,
		name:   name,
		score:  score,
		seq:    s.seq,
	})
	s.pruneMemLocked(game)
}

func (s *Store) topMem(game Game, n int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	ranked := s.rankedMemLocked(game)
	if n > len(ranked) {
		n = len(ranked)
	}
	entries := make([]Entry, 0, n)
	for _, entry := range ranked[:n] {
		entries = append(entries, Entry{Name: entry.name, Score: entry.score})
	}
	return entries
}

func (s *Store) pruneMemLocked(game Game) {
	ranked := s.rankedMemLocked(game)
	if len(ranked) > s.keep {
		ranked = ranked[:s.keep]
	}
	s.mem[game] = ranked
}

func (s *Store) rankedMemLocked(game Game) []memEntry {
	ranked := s.mem[game]
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].seq < ranked[j].seq
	})
	return ranked
}
