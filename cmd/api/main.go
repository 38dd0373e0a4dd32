package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dormpack/dormpack-backend/api/controllers"
	"github.com/dormpack/dormpack-backend/api/routes"
	"github.com/dormpack/dormpack-backend/internal/auth"
	"github.com/dormpack/dormpack-backend/internal/lists"
	"github.com/dormpack/dormpack-backend/internal/profiles"
	"github.com/dormpack/dormpack-backend/internal/sharing"
	"github.com/dormpack/dormpack-backend/internal/suggestions"
	"github.com/dormpack/dormpack-backend/internal/users"
	"github.com/dormpack/dormpack-backend/pkg/auth/session"
	"github.com/dormpack/dormpack-backend/pkg/config"
	"github.com/dormpack/dormpack-backend/pkg/db"
	"github.com/dormpack/dormpack-backend/pkg/logger"
	"github.com/dormpack/dormpack-backend/pkg/metrics"
	"github.com/dormpack/dormpack-backend/pkg/migrate"
	"github.com/dormpack/dormpack-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	usersRepo := users.NewRepository(dbClient.DB())
	profilesRepo := profiles.NewRepository(dbClient.DB())
	listsRepo := lists.NewRepository(dbClient.DB())
	sharingRepo := sharing.NewRepository(dbClient.DB())
	suggestionsRepo := suggestions.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       usersRepo,
		ProfileRepo:    profilesRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		TxRunner:       dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	profileService, err := profiles.NewService(profiles.ServiceParams{ProfileRepo: profilesRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create profile service", err)
		os.Exit(1)
	}

	sharingService, err := sharing.NewService(sharing.ServiceParams{
		Repo:  sharingRepo,
		Cache: redisClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create sharing service", err)
		os.Exit(1)
	}

	listService, err := lists.NewService(lists.ServiceParams{
		ListRepo:    listsRepo,
		Cache:       redisClient,
		Resolver:    sharingService,
		ShareConfig: cfg.Share,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create list service", err)
		os.Exit(1)
	}

	suggestionService, err := suggestions.NewService(suggestions.ServiceParams{
		Repo:     suggestionsRepo,
		ListRepo: listsRepo,
		Resolver: sharingService,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create suggestion service", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	healthDeps := map[string]controllers.Pinger{
		"postgres": dbClient,
		"redis":    redisClient,
	}

	router := routes.NewRouter(
		cfg,
		logg,
		healthDeps,
		redisClient,
		promRegistry,
		httpMetrics,
		sessionManager,
		authService,
		registerService,
		profileService,
		listService,
		sharingService,
		suggestionService,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
