package leaderboard

import (
	"fmt"
	"testing"
	"unicode/utf8"
)

func TestParseGame(t *testing.T) {
	cases := []struct {
		raw  string
		want Game
		ok   bool
	}{
		{"worddrop", GameWordDrop, true},
		{"coordsnap", GameCoordSnap, true},
		{"typeracer", GameTypeRacer, true},
		{"", GameWordDrop, true},
		{"tetris", "", false},
		{"WordDrop", "", false},
	}
	for _, tc := range cases {
		got, err := ParseGame(tc.raw)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseGame(%q) = %q, %v; want %q", tc.raw, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseGame(%q) succeeded, want error", tc.raw)
		}
	}
}

func TestSubmitThenTop(t *testing.T) {
	store := NewStore(nil, 100)
	if err := store.Submit(GameCoordSnap, "Ada", 500); err != nil {
		t.Fatalf("submit: %v", err)
	}
	top, err := store.Top(GameCoordSnap, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 || top[0].Name != "Ada" || top[0].Score != 500 {
		t.Fatalf("expected [{Ada 500}], got %#v", top)
	}
}

func TestTopOrdersDescending(t *testing.T) {
	store := NewStore(nil, 100)
	if err := store.Submit(GameCoordSnap, "Ada", 500); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := store.Submit(GameCoordSnap, "Grace", 900); err != nil {
		t.Fatalf("submit: %v", err)
	}
	top, err := store.Top(GameCoordSnap, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Name != "Grace" || top[0].Score != 900 {
		t.Errorf("expected Grace first, got %#v", top[0])
	}
	if top[1].Name != "Ada" || top[1].Score != 500 {
		t.Errorf("expected Ada second, got %#v", top[1])
	}
}

func TestTopTiesKeepSubmissionOrder(t *testing.T) {
	store := NewStore(nil, 100)
	for _, name := range []string{"first", "second", "third"} {
		if err := store.Submit(GameWordDrop, name, 250); err != nil {
			t.Fatalf("submit %s: %v", name, err)
		}
	}
	top, err := store.Top(GameWordDrop, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if top[i].Name != want {
			t.Errorf("rank %d: expected %s, got %s", i, want, top[i].Name)
		}
	}
}

func TestTopNeverExceedsRequested(t *testing.T) {
	store := NewStore(nil, 100)
	for i := 0; i < 10; i++ {
		if err := store.Submit(GameTypeRacer, fmt.Sprintf("p%d", i), i*10); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	top, err := store.Top(GameTypeRacer, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Fatalf("entries not descending: %#v", top)
		}
	}
}

func TestPruneKeepsHighestHundred(t *testing.T) {
	store := NewStore(nil, 100)
	for i := 0; i < 120; i++ {
		if err := store.Submit(GameWordDrop, fmt.Sprintf("p%d", i), i); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	size, err := store.Size(GameWordDrop)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != 100 {
		t.Fatalf("expected 100 retained entries, got %d", size)
	}
	top, err := store.Top(GameWordDrop, 1)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if top[0].Score != 119 {
		t.Fatalf("expected highest score 119 to survive prune, got %d", top[0].Score)
	}
	// The lowest 20 scores were trimmed, so the worst survivor is 20.
	all, err := store.Top(GameWordDrop, 100)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if all[len(all)-1].Score != 20 {
		t.Fatalf("expected lowest survivor 20, got %d", all[len(all)-1].Score)
	}
}

func TestSubmitTruncatesName(t *testing.T) {
	store := NewStore(nil, 100)
	long := "abcdefghijklmnopqrstuvwxyz"
	if err := store.Submit(GameWordDrop, long, 10); err != nil {
		t.Fatalf("submit: %v", err)
	}
	top, err := store.Top(GameWordDrop, 1)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if top[0].Name != long[:20] {
		t.Fatalf("expected truncated name %q, got %q", long[:20], top[0].Name)
	}
}

func TestSubmitTruncatesNameByRunes(t *testing.T) {
	store := NewStore(nil, 100)
	cases := []struct {
		name string
		want string
	}{
		// 20 characters, 21 bytes: must survive untouched
		{"aaaaaaaaaaaaaaaaaaaé", "aaaaaaaaaaaaaaaaaaaé"},
		// 22 characters ending in multi-byte runes: cut at 20 characters
		{"aaaaaaaaaaaaaaaaaaééüü", "aaaaaaaaaaaaaaaaaaéé"},
	}
	for _, tc := range cases {
		if err := store.Submit(GameCoordSnap, tc.name, 10); err != nil {
			t.Fatalf("submit %q: %v", tc.name, err)
		}
	}
	top, err := store.Top(GameCoordSnap, len(cases))
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	for i, tc := range cases {
		if top[i].Name != tc.want {
			t.Errorf("submit %q: expected stored name %q, got %q", tc.name, tc.want, top[i].Name)
		}
		if !utf8.ValidString(top[i].Name) {
			t.Errorf("submit %q: stored name %q is not valid UTF-8", tc.name, top[i].Name)
		}
	}
}

func TestSubmitRejectsBadInput(t *testing.T) {
	store := NewStore(nil, 100)
	if err := store.Submit("tetris", "Ada", 10); err == nil {
		t.Error("expected unknown game to be rejected")
	}
	if err := store.Submit(GameWordDrop, "   ", 10); err == nil {
		t.Error("expected blank name to be rejected")
	}
	if err := store.Submit(GameWordDrop, "Ada", -1); err == nil {
		t.Error("expected negative score to be rejected")
	}
	if size, _ := store.Size(GameWordDrop); size != 0 {
		t.Errorf("rejected submissions must not be stored, size=%d", size)
	}
}

func TestGamesAreIsolated(t *testing.T) {
	store := NewStore(nil, 100)
	if err := store.Submit(GameWordDrop, "Ada", 300); err != nil {
		t.Fatalf("submit: %v", err)
	}
	top, err := store.Top(GameTypeRacer, 3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 0 {
		t.Fatalf("expected empty typeracer board, got %#v", top)
	}
}
