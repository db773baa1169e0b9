// @title Shop Mini Games API
// @description API for tracking user progress and completion times in shop mini games
// @BasePath /api/progress
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/shopmini/progress/internal/api"
	"github.com/shopmini/progress/internal/repository"
	"github.com/shopmini/progress/internal/service"
	"github.com/shopmini/progress/pkg/cleanup"
	"github.com/shopmini/progress/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	statsRepo := repository.NewStatsRepo(&dbCfg)
	progressService := service.NewProgressService(repository.NewProgressRepo(&dbCfg), statsRepo)
	demoService := service.NewDemoLeaderboardService(statsRepo, time.Now().UnixNano())
	serv := api.New(&api.ServicesList{
		ProgressService: progressService,
		DemoService:     demoService,
		AllowedOrigin:   cfg.GetStringOr("CORS_ALLOWED_ORIGIN", "*"),
	})
	defer cleanup.CleanUp()
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
