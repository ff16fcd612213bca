package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spotifaux/spotifaux-go/internal/config"
	"github.com/spotifaux/spotifaux-go/internal/handler"
	"github.com/spotifaux/spotifaux-go/internal/middleware"
	"github.com/spotifaux/spotifaux-go/internal/repository"
	"github.com/spotifaux/spotifaux-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	tracksPath := filepath.Join(cfg.DataDir, "tracks.json")
	catalog, err := repository.LoadCatalog(tracksPath)
	if err != nil {
		slog.Error("cannot load catalog", "path", tracksPath, "error", err)
		os.Exit(1)
	}
	slog.Info("loaded tracks", "count", catalog.Len(), "path", tracksPath)

	usersPath := filepath.Join(cfg.DataDir, "users.json")
	userRepo, err := repository.LoadUserRepository(usersPath)
	if err != nil {
		slog.Error("cannot load users", "path", usersPath, "error", err)
		os.Exit(1)
	}
	slog.Info("loaded users", "count", userRepo.Count(), "path", usersPath)

	playlistsPath := filepath.Join(cfg.DataDir, "playlists.json")
	playlistRepo, err := repository.LoadPlaylistRepository(playlistsPath, catalog)
	if err != nil {
		slog.Error("cannot load playlists", "path", playlistsPath, "error", err)
		os.Exit(1)
	}
	slog.Info("loaded playlists", "count", playlistRepo.Count(), "path", playlistsPath)

	catalogService := service.NewCatalogService(catalog)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	playlistService := service.NewPlaylistService(playlistRepo, catalogService)

	r := handler.NewRouter(handler.Handlers{
		Auth: handler.NewAuthHandler(authService, handler.CookieConfig{
			SameSite: cfg.CookieSameSite,
			Secure:   cfg.CookieSecure,
			MaxAge:   cfg.JWTExpiry,
		}),
		Tracks:    handler.NewTrackHandler(catalogService),
		Playlists: handler.NewPlaylistHandler(playlistService),
	}, middleware.SessionAuth(cfg.JWTSecret, userRepo), cfg.AudioDir)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
