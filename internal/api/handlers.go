package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/shopmini/progress/internal/error_values"
	"github.com/shopmini/progress/internal/service"
	"github.com/shopmini/progress/pkg/entity"
	"github.com/shopmini/progress/pkg/httputil"
)

type CreateProgressRequest struct {
	UserID         string  `json:"user_id"`
	GameType       string  `json:"game_type"`
	CompletionTime float64 `json:"completion_time"`
	Score          int     `json:"score"`
	Completed      *bool   `json:"completed"`
	LivesRemaining *int    `json:"lives_remaining"`
}

type GetProgressResponse struct {
	UserID string                  `json:"user_id"`
	Limit  int                     `json:"limit"`
	Events []*entity.ProgressEvent `json:"events"`
}

func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"message": "Shop Mini Games API is running!",
	})
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) CreateProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateProgressRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create progress error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	event, err := s.progressService.RecordProgress(ctx, &service.RecordProgressRequest{
		UserID:         req.UserID,
		GameType:       req.GameType,
		CompletionTime: req.CompletionTime,
		Score:          req.Score,
		Completed:      req.Completed,
		LivesRemaining: req.LivesRemaining,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidInput) {
			logger.Error("create progress error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid progress entry", err)
			return
		}
		logger.Error("create progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, event)
	logger.Info("progress recorded", slog.String("user_id", event.UserID))
}

func (s *Server) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID := r.PathValue("user_id")
	if userID == "" {
		logger.Error("get progress error: empty user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "user id is required", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 50
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	events, err := s.progressService.GetUserProgress(ctx, userID, limit)
	if err != nil {
		logger.Error("getting progress list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting progress list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetProgressResponse{
		UserID: userID,
		Limit:  limit,
		Events: events,
	})
	logger.Info("progress list provided")
}

func (s *Server) GetUserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID := r.PathValue("user_id")
	if userID == "" {
		logger.Error("get stats error: empty user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "user id is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.progressService.GetUserStats(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			logger.Error("get stats error: user never played")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user stats not found", nil)
			return
		}
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting user stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("user stats provided")
}

func (s *Server) GetDailyProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID := r.PathValue("user_id")
	if userID == "" {
		logger.Error("get daily progress error: empty user id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "user id is required", nil)
		return
	}
	day := time.Now().UTC()
	if target := r.URL.Query().Get("target_date"); target != "" {
		parsed, err := time.ParseInLocation("2006-01-02", target, time.UTC)
		if err != nil {
			logger.Error("get daily progress error: malformed date", slog.String("target_date", target))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid target_date", errorvalues.ErrInvalidDate)
			return
		}
		day = parsed
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.progressService.GetDailyProgress(ctx, userID, day)
	if err != nil {
		logger.Error("get daily progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting daily progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("daily progress provided")
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	board, err := s.progressService.GetLeaderboard(ctx, limit)
	if err != nil {
		logger.Error("get leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
	logger.Info("leaderboard provided")
}

func (s *Server) GetGameStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	gameType := r.PathValue("game_type")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.progressService.GetGameStats(ctx, gameType)
	if err != nil {
		logger.Error("get game stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting game stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("game stats provided")
}

func (s *Server) GetMockLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	userID := r.URL.Query().Get("user_id")
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	board, err := s.demoService.Build(ctx, userID, limit)
	if err != nil {
		logger.Error("get mock leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building mock leaderboard", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, board)
	logger.Info("mock leaderboard provided")
}
