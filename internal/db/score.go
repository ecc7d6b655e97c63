package db

import "time"

// Score is one leaderboard entry. Member combines the truncated player name
// with the submission timestamp so repeat plays by the same name stay distinct.
type Score struct {
	ID          uint      `gorm:"primaryKey"`
	Game        string    `gorm:"size:32;not null;index:idx_scores_game_score,priority:1;uniqueIndex:idx_scores_game_member,priority:1"`
	Member      string    `gorm:"size:64;not null;uniqueIndex:idx_scores_game_member,priority:2"`
	Name        string    `gorm:"size:20;not null"`
	Score       int       `gorm:"not null;index:idx_scores_game_score,priority:2"`
	SubmittedAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
