package config

import (
	"os"
	"strconv"
)

type Config struct {
	LeaderboardSize          int
	WordDropLives            int
	WordDropTickMillis       int
	WordDropSpawnMillis      int
	SessionTTLSeconds        int
	PruneIntervalSeconds     int
	ReaperIntervalSeconds    int
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
}

func Default() Config {
	return Config{
		LeaderboardSize:          100,
		WordDropLives:            1,
		WordDropTickMillis:       700,
		WordDropSpawnMillis:      2400,
		SessionTTLSeconds:        1800,
		PruneIntervalSeconds:     300,
		ReaperIntervalSeconds:    60,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("LEADERBOARD_SIZE"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.LeaderboardSize = value
		}
	}
	if raw := os.Getenv("WORDDROP_LIVES"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.WordDropLives = value
		}
	}
	if raw := os.Getenv("WORDDROP_TICK_MS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.WordDropTickMillis = value
		}
	}
	if raw := os.Getenv("WORDDROP_SPAWN_MS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.WordDropSpawnMillis = value
		}
	}
	if raw := os.Getenv("SESSION_TTL_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.SessionTTLSeconds = value
		}
	}
	if raw := os.Getenv("PRUNE_INTERVAL_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.PruneIntervalSeconds = value
		}
	}
	if raw := os.Getenv("REAPER_INTERVAL_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.ReaperIntervalSeconds = value
		}
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	return cfg
}
