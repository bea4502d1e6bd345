package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"liga/backend/internal/config"
	"liga/backend/internal/httpserver"
	"liga/backend/internal/infrastructure/postgres"
	"liga/backend/internal/infrastructure/token"
	"liga/backend/internal/infrastructure/upload"
	authusecase "liga/backend/internal/usecase/auth"
	leagueusecase "liga/backend/internal/usecase/league"
	postusecase "liga/backend/internal/usecase/post"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rootCtx := context.Background()
	db, err := postgres.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(rootCtx); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	imageStore, err := upload.NewDiskStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	tokenManager := token.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)

	authService := authusecase.NewService(postgres.NewUserRepository(db.Pool), tokenManager)
	leagueService := leagueusecase.NewService(postgres.NewLeagueRepository(db.Pool))
	postService := postusecase.NewService(postgres.NewPostRepository(db.Pool), imageStore)

	server := httpserver.NewServer(cfg, authService, leagueService, postService)
	log.Printf("HTTP server listening on %s", server.Addr())

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server closed: %v", err)
				return
			}
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	} else {
		log.Printf("graceful shutdown completed")
	}
}
