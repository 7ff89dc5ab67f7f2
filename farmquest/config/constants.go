package config

import "time"

// Application-wide constants organized by domain

// Scoring and Progression Constants
const (
	// Sustainability score
	MaxSustainabilityScore = 100
	ScorePointsDivisor     = 10 // score raise = quest points / divisor

	// Quest progress bounds
	MinQuestProgress = 0
	MaxQuestProgress = 100

	// Level ladder thresholds (total points)
	GreenFarmerPoints  = 1000
	EcoWarriorPoints   = 2000
	ChampionPoints     = 3000
)

// Session Constants
const (
	// Persisted session record key, kept from the original web client so an
	// existing mirror file survives the migration.
	SessionKey = "farmquest_user"

	SessionCookieTTL = 24 * time.Hour

	// Simulated out-of-process latency on auth actions.
	DefaultLoginDelay    = 1 * time.Second
	DefaultRegisterDelay = 1500 * time.Millisecond
)

// API and Rate Limiting Constants
const (
	DefaultPageSize = 10
	MaxPageSize     = 50

	GlobalRateLimit = 50
	UserRateLimit   = 20
	RateLimitWindow = 1 * time.Minute

	RequestTimeout  = 30 * time.Second
	ShutdownTimeout = 15 * time.Second
)

// Search and Leaderboard Constants
const (
	MaxSearchResults       = 25
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
	LeaderboardCacheSize   = 128
	TopDistrictCount       = 3
)

// Photo Storage Constants
const (
	MaxPhotosPerQuest    = 5
	MaxPhotoSize         = 10 * 1024 * 1024 // 10MB
	PhotoUploadTimeout   = 2 * time.Minute
	PhotoUploadParallel  = 3
	QuestPhotoRoot       = "quests/"
)
