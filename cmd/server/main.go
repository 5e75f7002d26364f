package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnsmart-backend/cmd"
	"learnsmart-backend/internal/api"
	"learnsmart-backend/internal/config"
	"learnsmart-backend/internal/database"
	"learnsmart-backend/internal/tutor"
	"learnsmart-backend/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func createServer(cfg config.Config, service *api.LearnService) *http.Server {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(api.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", service.AddRoutes)
	r.Handle("/*", web.Handler(cfg.StaticDir))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
}

func main() {
	cmd.LoadEnvFile()

	cfg, err := config.Load(nil)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	level, _ := cfg.SlogLevel()
	logCloser := cmd.SetupLogging(cfg.LogFile, level)
	defer logCloser.Close()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := database.NewQuestionStore(db)

	completer, err := tutor.NewCompleter(cfg.Completer())
	if err != nil {
		log.Fatalf("Failed to create llm client: %v", err)
	}

	generator := tutor.NewGenerator(completer, cfg.LLMTimeout)
	if generator.DemoMode() {
		slog.Warn("OPENAI_API_KEY not set, answers will use demo responses")
	}

	server := createServer(cfg, api.NewLearnService(store, generator))

	done := make(chan struct{})
	go func() {
		defer close(done)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	slog.Info("server started", "port", cfg.Port, "llm_provider", cfg.LLMProvider, "demo_mode", generator.DemoMode())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %d: %v\n", cfg.Port, err)
	}

	<-done

	if err := store.Close(); err != nil {
		slog.Error("error closing database", "error", err)
	}

	slog.Info("server stopped")
}
