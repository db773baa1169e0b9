package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/shopmini/progress/internal/error_values"
	"github.com/shopmini/progress/internal/repository/mocks"
	"github.com/shopmini/progress/internal/service"
	"github.com/shopmini/progress/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoLeaderboardBuild(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	statsRepo := mocks.NewMockStatsRepositoryI(ctrl)
	serv := service.NewDemoLeaderboardService(statsRepo, 42)
	ctx := context.Background()

	t.Run("entries are sorted fastest first", func(t *testing.T) {
		board, err := serv.Build(ctx, "", 10)
		require.NoError(t, err)
		assert.Len(t, board.Entries, 10)
		assert.Equal(t, 10, board.TotalUsers)
		assert.Nil(t, board.UserRank)
		assert.True(t, sort.SliceIsSorted(board.Entries, func(i, j int) bool {
			return board.Entries[i].BestTime < board.Entries[j].BestTime
		}))
	})
	t.Run("known user with a best time gets a rank", func(t *testing.T) {
		best := 0.5 // faster than any synthetic entry
		avg := 25.0
		statsRepo.EXPECT().GetByUserID(gomock.Any(), "alice").Return(&entity.UserStats{
			UserID:           "alice",
			TotalGamesPlayed: 12,
			BestTime:         &best,
			AverageTime:      &avg,
		}, nil)
		board, err := serv.Build(ctx, "alice", 10)
		require.NoError(t, err)
		require.NotNil(t, board.UserRank)
		assert.Equal(t, 1, *board.UserRank)
		assert.Equal(t, "alice", board.Entries[0].UserID)
		assert.Len(t, board.Entries, 10)
	})
	t.Run("user slower than the whole board stays visible past the cut", func(t *testing.T) {
		best := 500.0 // slower than any synthetic entry
		statsRepo.EXPECT().GetByUserID(gomock.Any(), "bob").Return(&entity.UserStats{
			UserID:           "bob",
			TotalGamesPlayed: 3,
			BestTime:         &best,
		}, nil)
		board, err := serv.Build(ctx, "bob", 10)
		require.NoError(t, err)
		require.NotNil(t, board.UserRank)
		assert.Equal(t, 11, *board.UserRank)
		require.Len(t, board.Entries, 11)
		assert.Equal(t, "bob", board.Entries[10].UserID)
	})
	t.Run("user who never played gets no rank", func(t *testing.T) {
		statsRepo.EXPECT().GetByUserID(gomock.Any(), "ghost").Return(nil, errorvalues.ErrStatsNotFound)
		board, err := serv.Build(ctx, "ghost", 5)
		require.NoError(t, err)
		assert.Nil(t, board.UserRank)
		assert.Len(t, board.Entries, 5)
	})
	t.Run("user with a stats row but no best time gets no rank", func(t *testing.T) {
		statsRepo.EXPECT().GetByUserID(gomock.Any(), "fresh").Return(&entity.UserStats{UserID: "fresh"}, nil)
		board, err := serv.Build(ctx, "fresh", 5)
		require.NoError(t, err)
		assert.Nil(t, board.UserRank)
	})
	t.Run("repository error", func(t *testing.T) {
		statsRepo.EXPECT().GetByUserID(gomock.Any(), "alice").Return(nil, errors.New("db error"))
		_, err := serv.Build(ctx, "alice", 5)
		assert.EqualError(t, err, "stats repository error: db error")
	})
}

// The handler serves boards concurrently and the generator state is shared,
// so parallel builds must be safe (run with -race).
func TestDemoLeaderboardConcurrentBuild(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	statsRepo := mocks.NewMockStatsRepositoryI(ctrl)
	serv := service.NewDemoLeaderboardService(statsRepo, 42)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			board, err := serv.Build(ctx, "", 10)
			assert.NoError(t, err)
			assert.Len(t, board.Entries, 10)
		}()
	}
	wg.Wait()
}
