package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clientportal/project-portal/internal/api"
	"github.com/clientportal/project-portal/internal/core/service"
	"github.com/clientportal/project-portal/internal/core/token"
	"github.com/clientportal/project-portal/internal/infrastructure/config"
	mongodb "github.com/clientportal/project-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/clientportal/project-portal/internal/infrastructure/db/redis"
	"github.com/clientportal/project-portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWT.InsecureSecret() {
		log.Warn().Msg("JWT_SECRET is unset; using the insecure development default; do not run this in production")
	}

	tokens, err := token.NewService(token.Config{
		Secret:    cfg.JWT.Secret,
		Algorithm: cfg.JWT.Algorithm,
		Lifetime:  cfg.JWT.TokenLifetime(),
	})
	if err != nil {
		log.Fatal().Err(err).Str("algorithm", cfg.JWT.Algorithm).Msg("invalid token configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	milestoneRepo := mongodb.NewMilestoneRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{userRepo, projectRepo, commentRepo, milestoneRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index bootstrap failed")
		}
	}

	ownerCache := redisdb.NewOwnerCache(rdb, log)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokens, log)
	svcs := api.Services{
		Auth:       authService,
		Projects:   service.NewProjectService(projectRepo, userRepo, log),
		Comments:   service.NewCommentService(commentRepo, projectRepo, ownerCache, log),
		Milestones: service.NewMilestoneService(milestoneRepo, projectRepo, ownerCache, log),
	}

	// One-time bootstrap; check-then-insert, racy only across concurrent
	// startups of multiple instances.
	if err := authService.SeedAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	e := api.NewRouter(db, rdb, tokens, svcs, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
