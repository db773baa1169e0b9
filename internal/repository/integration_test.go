package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	errorvalues "github.com/shopmini/progress/internal/error_values"
	"github.com/shopmini/progress/internal/repository"
	"github.com/shopmini/progress/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupProgressTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("minigames"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}

func TestProgressFlowIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg := setupProgressTestDB(t)
	progressRepo := repository.NewProgressRepo(cfg)
	statsRepo := repository.NewStatsRepo(cfg)
	ctx := context.Background()

	t.Run("empty store yields zero game stats, not an error", func(t *testing.T) {
		stats, err := progressRepo.GetGameStats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalPlayers)
		assert.Equal(t, 0, stats.TotalGamesPlayed)
		assert.Equal(t, 0.0, stats.CompletionRate)
	})
	t.Run("unknown user has no stats row", func(t *testing.T) {
		_, err := statsRepo.GetByUserID(ctx, "alice")
		assert.ErrorIs(t, err, errorvalues.ErrStatsNotFound)
	})
	t.Run("two same-day games accumulate into exact stats", func(t *testing.T) {
		_, err := progressRepo.Record(ctx, &entity.ProgressEvent{
			UserID: "alice", GameType: "default", CompletionTime: 30, Score: 10, Completed: true, LivesRemaining: 3,
		})
		require.NoError(t, err)
		_, err = progressRepo.Record(ctx, &entity.ProgressEvent{
			UserID: "alice", GameType: "default", CompletionTime: 20, Score: 5, Completed: true, LivesRemaining: 2,
		})
		require.NoError(t, err)

		stats, err := statsRepo.GetByUserID(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalGamesPlayed)
		require.NotNil(t, stats.BestTime)
		assert.Equal(t, 20.0, *stats.BestTime)
		require.NotNil(t, stats.AverageTime)
		assert.Equal(t, 25.0, *stats.AverageTime)
		require.NotNil(t, stats.AverageLivesRemaining)
		assert.Equal(t, 2.5, *stats.AverageLivesRemaining)
		assert.Equal(t, 15, stats.TotalScore)
		assert.Equal(t, 1, stats.CurrentStreak)
		assert.Equal(t, 1, stats.LongestStreak)
		require.NotNil(t, stats.LastPlayed)
	})
	t.Run("events are listed most recent first", func(t *testing.T) {
		events, err := progressRepo.GetByUserID(ctx, "alice", 50)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.False(t, events[0].GameDate.Before(events[1].GameDate))
	})
	t.Run("daily summary for today", func(t *testing.T) {
		summary, err := progressRepo.GetDailySummary(ctx, "alice", time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, 2, summary.GamesPlayed)
		require.NotNil(t, summary.BestTime)
		assert.Equal(t, 20.0, *summary.BestTime)
		assert.Equal(t, 15, summary.TotalScore)
		assert.Equal(t, 2, summary.CompletedGames)
	})
	t.Run("daily summary for an empty day", func(t *testing.T) {
		summary, err := progressRepo.GetDailySummary(ctx, "alice", time.Now().UTC().AddDate(0, 0, -3))
		require.NoError(t, err)
		assert.Equal(t, 0, summary.GamesPlayed)
		assert.Nil(t, summary.BestTime)
		assert.Equal(t, 0, summary.TotalScore)
		assert.Equal(t, 0, summary.CompletedGames)
	})
	t.Run("leaderboard ranks by best time", func(t *testing.T) {
		_, err := progressRepo.Record(ctx, &entity.ProgressEvent{
			UserID: "bob", GameType: "puzzle", CompletionTime: 45, Score: 3, Completed: false, LivesRemaining: 1,
		})
		require.NoError(t, err)

		entries, err := statsRepo.GetLeaderboard(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "alice", entries[0].UserID)
		assert.Equal(t, 20.0, entries[0].BestTime)
		assert.Equal(t, "bob", entries[1].UserID)
	})
	t.Run("game stats aggregate across users", func(t *testing.T) {
		stats, err := progressRepo.GetGameStats(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, 2, stats.TotalPlayers)
		assert.Equal(t, 3, stats.TotalGamesPlayed)
		assert.InDelta(t, 66.67, stats.CompletionRate, 0.01)

		puzzleStats, err := progressRepo.GetGameStats(ctx, "puzzle")
		require.NoError(t, err)
		assert.Equal(t, 1, puzzleStats.TotalPlayers)
		assert.Equal(t, 1, puzzleStats.TotalGamesPlayed)
		assert.Equal(t, 0.0, puzzleStats.CompletionRate)
	})
}
