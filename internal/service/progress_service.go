package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/shopmini/progress/internal/error_values"
	"github.com/shopmini/progress/internal/repository"
	"github.com/shopmini/progress/pkg/entity"
)

const (
	defaultGameType       = "default"
	defaultLivesRemaining = 3
)

type ProgressService struct {
	progressRepo repository.ProgressRepositoryI
	statsRepo    repository.StatsRepositoryI
}

func NewProgressService(progressRepo repository.ProgressRepositoryI, statsRepo repository.StatsRepositoryI) *ProgressService {
	if progressRepo == nil || statsRepo == nil {
		log.Fatal("on progress service provided nil repos")
	}
	return &ProgressService{
		progressRepo: progressRepo,
		statsRepo:    statsRepo,
	}
}

func (ps *ProgressService) RecordProgress(ctx context.Context, req *RecordProgressRequest) (*entity.ProgressEvent, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			joined := errorvalues.ErrInvalidInput
			for _, fieldErr := range validationErrors {
				joined = errors.Join(joined, fieldErr)
			}
			return nil, joined
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	event := entity.ProgressEvent{
		UserID:         req.UserID,
		GameType:       req.GameType,
		CompletionTime: req.CompletionTime,
		Score:          req.Score,
		Completed:      true,
		LivesRemaining: defaultLivesRemaining,
	}
	if event.GameType == "" {
		event.GameType = defaultGameType
	}
	if req.Completed != nil {
		event.Completed = *req.Completed
	}
	if req.LivesRemaining != nil {
		event.LivesRemaining = *req.LivesRemaining
	}
	persisted, err := ps.progressRepo.Record(ctx, &event)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidInput) {
			return nil, err
		}
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return persisted, nil
}

func (ps *ProgressService) GetUserProgress(ctx context.Context, userID string, limit int) ([]*entity.ProgressEvent, error) {
	events, err := ps.progressRepo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return events, nil
}

func (ps *ProgressService) GetUserStats(ctx context.Context, userID string) (*entity.UserStats, error) {
	stats, err := ps.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return stats, nil
}

func (ps *ProgressService) GetDailyProgress(ctx context.Context, userID string, day time.Time) (*entity.DailySummary, error) {
	summary, err := ps.progressRepo.GetDailySummary(ctx, userID, day)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	return summary, nil
}

func (ps *ProgressService) GetLeaderboard(ctx context.Context, limit int) (*entity.Leaderboard, error) {
	entries, err := ps.statsRepo.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return &entity.Leaderboard{
		Entries:    entries,
		TotalUsers: len(entries),
	}, nil
}

func (ps *ProgressService) GetGameStats(ctx context.Context, gameType string) (*entity.GameStats, error) {
	stats, err := ps.progressRepo.GetGameStats(ctx, gameType)
	if err != nil {
		return nil, errors.New("progress repository error: " + err.Error())
	}
	stats.AverageCompletionTime = round2(stats.AverageCompletionTime)
	stats.AverageLivesRemaining = round2(stats.AverageLivesRemaining)
	stats.CompletionRate = round2(stats.CompletionRate)
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
