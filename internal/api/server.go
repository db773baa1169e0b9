package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopmini/progress/internal/service"
)

type Server struct {
	mx              *chi.Mux
	progressService service.ProgressServiceI
	demoService     service.DemoLeaderboardServiceI
	allowedOrigin   string
}

type ServicesList struct {
	ProgressService service.ProgressServiceI
	DemoService     service.DemoLeaderboardServiceI
	AllowedOrigin   string
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:              chi.NewMux(),
		progressService: servicesOptions.ProgressService,
		demoService:     servicesOptions.DemoService,
		allowedOrigin:   servicesOptions.AllowedOrigin,
	}
}

func (s *Server) Run(addr string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.CORSMiddleware)
	s.mx.Get("/", s.Root)
	s.mx.Get("/health", s.Health)
	s.mx.Route("/api/progress", func(r chi.Router) {
		r.Post("/", s.CreateProgress)
		r.Get("/user/{user_id}", s.GetUserProgress)
		r.Get("/user/{user_id}/stats", s.GetUserStats)
		r.Get("/user/{user_id}/daily", s.GetDailyProgress)
		r.Get("/leaderboard", s.GetLeaderboard)
		r.Get("/game-stats", s.GetGameStats)
		r.Get("/game-stats/{game_type}", s.GetGameStats)
		r.Get("/mock-leaderboard", s.GetMockLeaderboard)
	})
	return http.ListenAndServe(addr, s.mx)
}
