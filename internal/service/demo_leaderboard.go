package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"sync"

	errorvalues "github.com/shopmini/progress/internal/error_values"
	"github.com/shopmini/progress/internal/repository"
	"github.com/shopmini/progress/pkg/entity"
)

// DemoLeaderboardService produces a synthetic leaderboard for demos and
// frontend development. Entries are generated, never persisted, and the only
// real data consulted is the caller's stats row (to place them in the
// ranking). It is not part of the stats engine.
type DemoLeaderboardService struct {
	statsRepo repository.StatsRepositoryI

	// rand.Rand is not safe for concurrent use and Build serves
	// concurrent requests, so every draw goes through mu.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewDemoLeaderboardService(statsRepo repository.StatsRepositoryI, seed int64) *DemoLeaderboardService {
	if statsRepo == nil {
		log.Fatal("on demo leaderboard service provided nil stats repo")
	}
	return &DemoLeaderboardService{
		statsRepo: statsRepo,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (dls *DemoLeaderboardService) Build(ctx context.Context, userID string, limit int) (*entity.Leaderboard, error) {
	entries := make([]*entity.LeaderboardEntry, 0, limit)
	dls.mu.Lock()
	for i := 0; i < limit; i++ {
		games := 5 + dls.rng.Intn(95)
		avg := 20.0 + dls.rng.Float64()*100.0
		entries = append(entries, &entity.LeaderboardEntry{
			UserID:      fmt.Sprintf("player_%04d", dls.rng.Intn(10000)),
			BestTime:    avg * (0.5 + dls.rng.Float64()*0.4),
			TotalGames:  games,
			AverageTime: avg,
		})
	}
	dls.mu.Unlock()

	board := entity.Leaderboard{}
	if userID != "" {
		stats, err := dls.statsRepo.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			if stats.BestTime != nil {
				avgTime := 0.0
				if stats.AverageTime != nil {
					avgTime = *stats.AverageTime
				}
				entries = append(entries, &entity.LeaderboardEntry{
					UserID:      userID,
					BestTime:    *stats.BestTime,
					TotalGames:  stats.TotalGamesPlayed,
					AverageTime: avgTime,
				})
			}
		case errors.Is(err, errorvalues.ErrStatsNotFound):
			// Unknown users simply get no rank on the demo board.
		default:
			return nil, errors.New("stats repository error: " + err.Error())
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].BestTime < entries[j].BestTime
	})
	callerIdx := -1
	if userID != "" {
		for i, e := range entries {
			if e.UserID == userID {
				callerIdx = i
				rank := i + 1
				board.UserRank = &rank
				break
			}
		}
	}
	// A ranked caller stays on the board even when they sort past the cut,
	// so user_rank always points at a visible entry.
	if len(entries) > limit {
		overflow := entries[limit:]
		entries = entries[:limit]
		if callerIdx >= limit {
			entries = append(entries, overflow[callerIdx-limit])
		}
	}
	board.Entries = entries
	board.TotalUsers = len(entries)
	return &board, nil
}
