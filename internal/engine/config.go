package engine

import (
	"time"

	"github.com/JSchwerberg/the-substrate-sub001/internal/domain"
)

// Config holds engine startup parameters.
type Config struct {
	// Seed is the master seed; every expedition derives from it, so two
	// servers started with the same seed produce the same sectors.
	Seed int64

	Difficulty domain.Difficulty

	// CatalogPath optionally overrides the embedded kind catalog.
	CatalogPath string
}

// NewConfig returns a default config with a random seed.
func NewConfig() Config {
	return Config{
		Seed:       time.Now().UnixNano(),
		Difficulty: domain.DifficultyNormal,
	}
}

// ParseDifficulty maps a flag/env string onto a difficulty tag, defaulting
// to normal for anything unknown.
func ParseDifficulty(s string) domain.Difficulty {
	switch domain.Difficulty(s) {
	case domain.DifficultyEasy, domain.DifficultyNormal, domain.DifficultyHard:
		return domain.Difficulty(s)
	default:
		return domain.DifficultyNormal
	}
}
