package entity

import (
	"time"
)

// ProgressEvent is one recorded completion (or abandoned attempt) of a mini
// game. Events are immutable once written.
type ProgressEvent struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	GameType       string    `json:"game_type"`
	GameDate       time.Time `json:"game_date"`
	CompletionTime float64   `json:"completion_time"`
	Score          int       `json:"score"`
	Completed      bool      `json:"completed"`
	LivesRemaining int       `json:"lives_remaining"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserStats is the rolling per-user aggregate, one row per user_id. Created
// lazily on the first event and rewritten inside the record transaction.
// BestTime and the averages are nil until the user has played at least once.
type UserStats struct {
	UserID                string     `json:"user_id"`
	TotalGamesPlayed      int        `json:"total_games_played"`
	BestTime              *float64   `json:"best_time"`
	AverageTime           *float64   `json:"average_time"`
	AverageLivesRemaining *float64   `json:"average_lives_remaining"`
	TotalScore            int        `json:"total_score"`
	CurrentStreak         int        `json:"current_streak"`
	LongestStreak         int        `json:"longest_streak"`
	LastPlayed            *time.Time `json:"last_played,omitempty"`
}

// DailySummary aggregates a single user's events within one calendar day.
type DailySummary struct {
	Date           string   `json:"date"`
	GamesPlayed    int      `json:"games_played"`
	BestTime       *float64 `json:"best_time"`
	TotalScore     int      `json:"total_score"`
	CompletedGames int      `json:"completed_games"`
}

type LeaderboardEntry struct {
	UserID      string  `json:"user_id"`
	BestTime    float64 `json:"best_time"`
	TotalGames  int     `json:"total_games"`
	AverageTime float64 `json:"average_time"`
}

type Leaderboard struct {
	Entries    []*LeaderboardEntry `json:"entries"`
	TotalUsers int                 `json:"total_users"`
	// UserRank is only set by the demo leaderboard generator.
	UserRank *int `json:"user_rank,omitempty"`
}

// GameStats is the global aggregate across all events, optionally narrowed
// to a single game type. Averages and the completion rate are rounded to
// two decimal places by the service.
type GameStats struct {
	GameType              string  `json:"game_type,omitempty"`
	TotalPlayers          int     `json:"total_players"`
	TotalGamesPlayed      int     `json:"total_games_played"`
	AverageCompletionTime float64 `json:"average_completion_time"`
	AverageLivesRemaining float64 `json:"average_lives_remaining"`
	CompletionRate        float64 `json:"completion_rate"`
}
