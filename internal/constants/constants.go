package constants

import "time"

const (
	// HistoryLimit bounds the stored game-result history. Oldest results are
	// dropped once the limit is reached.
	HistoryLimit = 100

	RecentGamesDefaultLimit = 10
	RecentGamesMaxLimit     = 100
)

const (
	QuizPointsPerCorrect    = 10
	PatternPointsPerCorrect = 15
)

const (
	CountdownInterval = 1 * time.Second

	QuizLockDelay = 1500 * time.Millisecond

	MemoryMatchDelay    = 600 * time.Millisecond
	MemoryMismatchDelay = 1200 * time.Millisecond
	MemoryCompleteDelay = 500 * time.Millisecond

	PatternCorrectDelay = 2 * time.Second
	PatternWrongDelay   = 1500 * time.Millisecond
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
