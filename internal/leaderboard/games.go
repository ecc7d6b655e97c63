package leaderboard

import "errors"

// Game identifies one of the arcade's ranked collections.
type Game string

const (
	GameWordDrop  Game = "worddrop"
	GameCoordSnap Game = "coordsnap"
	GameTypeRacer Game = "typeracer"
)

// DefaultGame is used when a request omits the game parameter.
const DefaultGame = GameWordDrop

var ErrUnknownGame = errors.New("unknown game")

func Games() []Game {
	return []Game{GameWordDrop, GameCoordSnap, GameTypeRacer}
}

// ParseGame validates a raw game identifier. An empty string resolves to
// DefaultGame; anything outside the fixed set is rejected before storage
// is touched.
func ParseGame(raw string) (Game, error) {
	if raw == "" {
		return DefaultGame, nil
	}
	switch Game(raw) {
	case GameWordDrop, GameCoordSnap, GameTypeRacer:
		return Game(raw), nil
	}
	return "", ErrUnknownGame
}

type GameInfo struct {
	ID         Game   `json:"id"`
	Title      string `json:"title"`
	Blurb      string `json:"blurb"`
	ScoreLabel string `json:"score_label"`
}

func GameCatalog() []GameInfo {
	return []GameInfo{
		{
			ID:         GameWordDrop,
			Title:      "Word Drop",
			Blurb:      "Type falling GIS terms before they hit the ground. One miss = game over.",
			ScoreLabel: "pts",
		},
		{
			ID:         GameCoordSnap,
			Title:      "Coord Snap",
			Blurb:      "Click where cities are on the world map. Closer = more points. 10 cities.",
			ScoreLabel: "pts",
		},
		{
			ID:         GameTypeRacer,
			Title:      "Type Racer",
			Blurb:      "Type GIS sentences as fast as possible. Score = average WPM over 3 rounds.",
			ScoreLabel: "wpm",
		},
	}
}
