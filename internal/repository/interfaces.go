package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shopmini/progress/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/shopmini/progress/internal/repository ProgressRepositoryI,StatsRepositoryI

type ProgressRepositoryI interface {
	// Persists the event and updates the user's rolling stats in one transaction.
	// Fills server-assigned fields (id, game_date, created_at, updated_at) on event.
	Record(ctx context.Context, event *entity.ProgressEvent) (*entity.ProgressEvent, error)
	// Lists the user's events, most recent game_date first
	GetByUserID(ctx context.Context, userID string, limit int) ([]*entity.ProgressEvent, error)
	// Aggregates the user's events within [day 00:00 UTC, day+1 00:00 UTC)
	GetDailySummary(ctx context.Context, userID string, day time.Time) (*entity.DailySummary, error)
	// Aggregates all events, narrowed to gameType when non-empty
	GetGameStats(ctx context.Context, gameType string) (*entity.GameStats, error)
}

type StatsRepositoryI interface {
	// Returns the user's stats row. ErrStatsNotFound if the user never played
	GetByUserID(ctx context.Context, userID string) (*entity.UserStats, error)
	// Lists users with a non-null best_time, fastest first
	GetLeaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
