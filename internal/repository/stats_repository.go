package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/shopmini/progress/internal/error_values"
	"github.com/shopmini/progress/pkg/cleanup"
	"github.com/shopmini/progress/pkg/entity"
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsRepository{
		conn: pool,
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) GetByUserID(ctx context.Context, userID string) (*entity.UserStats, error) {
	stats := entity.UserStats{UserID: userID}
	row := sr.conn.QueryRow(
		ctx,
		`SELECT total_games_played, best_time, average_time, average_lives_remaining, total_score, current_streak, longest_streak, last_played FROM user_stats WHERE user_id = $1;`,
		userID,
	)
	err := row.Scan(
		&stats.TotalGamesPlayed,
		&stats.BestTime,
		&stats.AverageTime,
		&stats.AverageLivesRemaining,
		&stats.TotalScore,
		&stats.CurrentStreak,
		&stats.LongestStreak,
		&stats.LastPlayed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("getting stats by user error: " + err.Error())
	}
	return &stats, nil
}

// GetLeaderboard lists stats rows with a recorded best time, fastest first.
// Users who never played have no stats row and never appear.
func (sr *StatsRepository) GetLeaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	entries := make([]*entity.LeaderboardEntry, 0)
	rows, err := sr.conn.Query(
		ctx,
		`SELECT user_id, best_time, total_games_played, COALESCE(average_time, 0) FROM user_stats WHERE best_time IS NOT NULL ORDER BY best_time ASC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.LeaderboardEntry{}
		err = rows.Scan(&e.UserID, &e.BestTime, &e.TotalGames, &e.AverageTime)
		if err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		entries = append(entries, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + rows.Err().Error())
	}
	return entries, nil
}
