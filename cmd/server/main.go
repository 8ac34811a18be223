package main

import (
	"log"
	"log/slog"

	"wakescroll/backend/internal/config"
	"wakescroll/backend/internal/db"
	"wakescroll/backend/internal/handler"
	"wakescroll/backend/internal/repository"
	"wakescroll/backend/internal/router"
	"wakescroll/backend/internal/service"
	"wakescroll/backend/internal/store"
)

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	storeCfg := store.DefaultConfig(cfg.DataDir)
	storeCfg.Logger = slog.Default()
	kv, err := store.Open(storeCfg)
	if err != nil {
		log.Fatalf("open ledger store: %v", err)
	}
	defer kv.Close()

	loc := cfg.Location()

	userRepo := repository.NewUserRepository(database)
	xpRepo := repository.NewXPRepository(kv)
	journalRepo := repository.NewJournalRepository(kv)
	timerRepo := repository.NewTimerRepository(kv)
	goalRepo := repository.NewGoalRepository(kv)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		XP:      handler.NewXPHandler(service.NewXPService(xpRepo, loc)),
		Journal: handler.NewJournalHandler(service.NewJournalService(journalRepo, loc)),
		Timer:   handler.NewTimerHandler(service.NewTimerService(timerRepo, loc)),
		Goal:    handler.NewGoalHandler(service.NewGoalService(goalRepo)),
		Rating:  handler.NewRatingHandler(),
	}

	engine := router.New(authService, handlers, cfg.CORSOrigins)
	log.Printf("backend listening on :%s (timezone %s)", cfg.Port, loc)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
