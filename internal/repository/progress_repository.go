package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/shopmini/progress/internal/error_values"
	"github.com/shopmini/progress/pkg/cleanup"
	"github.com/shopmini/progress/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepo(cfg DBConfig) *ProgressRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for progressRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProgressRepository{
		conn: pool,
	}
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for progressRepo: " + err.Error())
	}
	return &ProgressRepository{
		conn: conn,
	}
}

// dayBounds gives the [00:00, next day 00:00) UTC window containing t.
// Both the streak checks and the daily summary share this window shape.
func dayBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// Record inserts the event and rewrites the user's stats row in a single
// transaction. The stats row is locked FOR UPDATE so concurrent submissions
// for the same user serialize; different users touch different rows and do
// not block each other. Averages are recomputed from the full event history
// on every write, which keeps them exact at the cost of an aggregate scan.
func (pr *ProgressRepository) Record(ctx context.Context, event *entity.ProgressEvent) (*entity.ProgressEvent, error) {
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting record transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(
		ctx,
		`INSERT INTO progress_events (user_id, game_type, completion_time, score, completed, lives_remaining) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, game_date, created_at, updated_at;`,
		event.UserID,
		event.GameType,
		event.CompletionTime,
		event.Score,
		event.Completed,
		event.LivesRemaining,
	)
	if err := row.Scan(&event.ID, &event.GameDate, &event.CreatedAt, &event.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Check violation
			case "23514":
				return nil, errorvalues.ErrInvalidInput
			}
		}
		return nil, errors.New("inserting progress event error: " + err.Error())
	}

	// Lazy stats row creation, then lock it for the read-modify-write.
	_, err = tx.Exec(ctx, `INSERT INTO user_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, event.UserID)
	if err != nil {
		return nil, errors.New("creating stats row error: " + err.Error())
	}
	stats := entity.UserStats{UserID: event.UserID}
	row = tx.QueryRow(
		ctx,
		`SELECT total_games_played, best_time, average_time, average_lives_remaining, total_score, current_streak, longest_streak FROM user_stats WHERE user_id = $1 FOR UPDATE;`,
		event.UserID,
	)
	err = row.Scan(
		&stats.TotalGamesPlayed,
		&stats.BestTime,
		&stats.AverageTime,
		&stats.AverageLivesRemaining,
		&stats.TotalScore,
		&stats.CurrentStreak,
		&stats.LongestStreak,
	)
	if err != nil {
		return nil, errors.New("locking stats row error: " + err.Error())
	}

	stats.TotalGamesPlayed++
	stats.TotalScore += event.Score
	if stats.BestTime == nil || event.CompletionTime < *stats.BestTime {
		best := event.CompletionTime
		stats.BestTime = &best
	}

	row = tx.QueryRow(
		ctx,
		`SELECT AVG(completion_time), AVG(lives_remaining) FROM progress_events WHERE user_id = $1;`,
		event.UserID,
	)
	if err := row.Scan(&stats.AverageTime, &stats.AverageLivesRemaining); err != nil {
		return nil, errors.New("recomputing averages error: " + err.Error())
	}

	// The day window comes from the row's game_date (DB clock), not the
	// application clock; around midnight the two can disagree and the event
	// must land inside its own day.
	stats.LastPlayed = &event.GameDate
	if err := pr.updateStreak(ctx, tx, &stats, event.GameDate); err != nil {
		return nil, err
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE user_stats SET total_games_played = $2, best_time = $3, average_time = $4, average_lives_remaining = $5, total_score = $6, current_streak = $7, longest_streak = $8, last_played = $9, updated_at = NOW() WHERE user_id = $1;`,
		stats.UserID,
		stats.TotalGamesPlayed,
		stats.BestTime,
		stats.AverageTime,
		stats.AverageLivesRemaining,
		stats.TotalScore,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.LastPlayed,
	)
	if err != nil {
		return nil, errors.New("updating stats row error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.New("committing record transaction error: " + err.Error())
	}
	return event, nil
}

// updateStreak applies the consecutive-day rule. The streak only moves on
// the user's first event of the calendar day: +1 if they played yesterday,
// back to 1 otherwise. Later events on the same day leave it untouched.
// A streak is never decayed to 0 for a user who simply stops playing.
func (pr *ProgressRepository) updateStreak(ctx context.Context, tx pgxQuerier, stats *entity.UserStats, played time.Time) error {
	todayStart, todayEnd := dayBounds(played)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var todayCount int
	row := tx.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM progress_events WHERE user_id = $1 AND game_date >= $2 AND game_date < $3;`,
		stats.UserID,
		todayStart,
		todayEnd,
	)
	if err := row.Scan(&todayCount); err != nil {
		return errors.New("counting today's events error: " + err.Error())
	}
	// The just-inserted event counts, so 1 means first game of the day.
	if todayCount == 1 {
		var playedYesterday bool
		row = tx.QueryRow(
			ctx,
			`SELECT EXISTS(SELECT 1 FROM progress_events WHERE user_id = $1 AND game_date >= $2 AND game_date < $3);`,
			stats.UserID,
			yesterdayStart,
			todayStart,
		)
		if err := row.Scan(&playedYesterday); err != nil {
			return errors.New("probing yesterday's events error: " + err.Error())
		}
		if playedYesterday {
			stats.CurrentStreak++
		} else {
			stats.CurrentStreak = 1
		}
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	return nil
}

// pgxQuerier is the slice of pgx.Tx that updateStreak needs.
type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (pr *ProgressRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*entity.ProgressEvent, error) {
	events := make([]*entity.ProgressEvent, 0)
	rows, err := pr.conn.Query(
		ctx,
		`SELECT id, user_id, game_type, game_date, completion_time, score, completed, lives_remaining, created_at, updated_at FROM progress_events WHERE user_id = $1 ORDER BY game_date DESC LIMIT $2;`,
		userID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting events by user error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		e := entity.ProgressEvent{}
		err = rows.Scan(&e.ID, &e.UserID, &e.GameType, &e.GameDate, &e.CompletionTime, &e.Score, &e.Completed, &e.LivesRemaining, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, errors.New("event row parsing error: " + err.Error())
		}
		events = append(events, &e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected event rows error: " + rows.Err().Error())
	}
	return events, nil
}

func (pr *ProgressRepository) GetDailySummary(ctx context.Context, userID string, day time.Time) (*entity.DailySummary, error) {
	dayStart, dayEnd := dayBounds(day)
	summary := entity.DailySummary{
		Date: dayStart.Format("2006-01-02"),
	}
	row := pr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*), MIN(completion_time), COALESCE(SUM(score), 0), COUNT(*) FILTER (WHERE completed) FROM progress_events WHERE user_id = $1 AND game_date >= $2 AND game_date < $3;`,
		userID,
		dayStart,
		dayEnd,
	)
	// An empty day is a zeroed summary with a null best time, not an error.
	if err := row.Scan(&summary.GamesPlayed, &summary.BestTime, &summary.TotalScore, &summary.CompletedGames); err != nil {
		return nil, errors.New("aggregating daily summary error: " + err.Error())
	}
	return &summary, nil
}

func (pr *ProgressRepository) GetGameStats(ctx context.Context, gameType string) (*entity.GameStats, error) {
	stats := entity.GameStats{GameType: gameType}
	var row pgx.Row
	if gameType == "" {
		row = pr.conn.QueryRow(
			ctx,
			`SELECT COUNT(DISTINCT user_id), COUNT(*), COALESCE(AVG(completion_time), 0), COALESCE(AVG(lives_remaining), 0), COALESCE(100.0 * COUNT(*) FILTER (WHERE completed) / NULLIF(COUNT(*), 0), 0) FROM progress_events;`,
		)
	} else {
		row = pr.conn.QueryRow(
			ctx,
			`SELECT COUNT(DISTINCT user_id), COUNT(*), COALESCE(AVG(completion_time), 0), COALESCE(AVG(lives_remaining), 0), COALESCE(100.0 * COUNT(*) FILTER (WHERE completed) / NULLIF(COUNT(*), 0), 0) FROM progress_events WHERE game_type = $1;`,
			gameType,
		)
	}
	err := row.Scan(
		&stats.TotalPlayers,
		&stats.TotalGamesPlayed,
		&stats.AverageCompletionTime,
		&stats.AverageLivesRemaining,
		&stats.CompletionRate,
	)
	if err != nil {
		return nil, errors.New("aggregating game stats error: " + err.Error())
	}
	return &stats, nil
}
