package service

import (
	"context"
	"time"

	"github.com/shopmini/progress/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/shopmini/progress/internal/service ProgressServiceI,DemoLeaderboardServiceI

// RecordProgressRequest carries one finished (or abandoned) game attempt.
// Completed and LivesRemaining are pointers so an absent field is told apart
// from a submitted zero; defaults are true and 3 respectively.
type RecordProgressRequest struct {
	UserID         string  `validate:"required,min=1,max=100"`
	GameType       string  `validate:"omitempty,game_slug,max=50"`
	CompletionTime float64 `validate:"required,gt=0"`
	Score          int     `validate:"gte=0"`
	Completed      *bool
	LivesRemaining *int `validate:"omitempty,gte=0,lte=5"`
}

type ProgressServiceI interface {
	// Validates the request, persists the event and updates the user's
	// rolling stats atomically. Returns the persisted event.
	RecordProgress(ctx context.Context, req *RecordProgressRequest) (*entity.ProgressEvent, error)
	// Lists the user's events, most recent first, truncated to limit
	GetUserProgress(ctx context.Context, userID string, limit int) ([]*entity.ProgressEvent, error)
	// Returns the user's stats row or ErrStatsNotFound
	GetUserStats(ctx context.Context, userID string) (*entity.UserStats, error)
	// Summarizes the user's events for one calendar day
	GetDailyProgress(ctx context.Context, userID string, day time.Time) (*entity.DailySummary, error)
	// Ranks users by best completion time, fastest first
	GetLeaderboard(ctx context.Context, limit int) (*entity.Leaderboard, error)
	// Global aggregate across events; empty gameType means all game types
	GetGameStats(ctx context.Context, gameType string) (*entity.GameStats, error)
}

type DemoLeaderboardServiceI interface {
	// Builds a synthetic leaderboard for demos. When userID is set and a real
	// stats row exists, the caller is placed among the generated entries.
	Build(ctx context.Context, userID string, limit int) (*entity.Leaderboard, error)
}
