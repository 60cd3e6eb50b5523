package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/protektiq/lifeflow/internal/config"
	"github.com/protektiq/lifeflow/internal/handler"
	"github.com/protektiq/lifeflow/internal/health"
	"github.com/protektiq/lifeflow/internal/infra/dispatch"
	"github.com/protektiq/lifeflow/internal/infra/embedding"
	"github.com/protektiq/lifeflow/internal/infra/gentext"
	"github.com/protektiq/lifeflow/internal/infra/ingestion"
	"github.com/protektiq/lifeflow/internal/infra/planner"
	"github.com/protektiq/lifeflow/internal/infra/repository"
	"github.com/protektiq/lifeflow/internal/infra/runrecorder"
	"github.com/protektiq/lifeflow/internal/observability"
	"github.com/protektiq/lifeflow/internal/observability/logging"
	"github.com/protektiq/lifeflow/internal/observability/metrics"
	"github.com/protektiq/lifeflow/internal/observability/middleware"
	"github.com/protektiq/lifeflow/internal/service/learning"
	"github.com/protektiq/lifeflow/internal/service/normalize"
	"github.com/protektiq/lifeflow/internal/service/nudge"
	"github.com/protektiq/lifeflow/internal/service/pipeline"
	"github.com/protektiq/lifeflow/internal/service/score"
	"github.com/protektiq/lifeflow/internal/service/synthesis"
	"github.com/protektiq/lifeflow/internal/worker"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logging.Setup(os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "lifeflow"
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName:  serviceName,
		Version:      Version,
		Environment:  cfg.Environment,
		SamplingRate: 1.0,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	pipelineMetrics, err := metrics.NewPipelineMetrics()
	if err != nil {
		slog.Error("failed to initialize pipeline metrics", slog.String("error", err.Error()))
		return 1
	}

	nudgeMetrics, err := metrics.NewNudgeMetrics()
	if err != nil {
		slog.Error("failed to initialize nudge metrics", slog.String("error", err.Error()))
		return 1
	}

	recorder, err := runrecorder.NewRecorder(ctx, runrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize run recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close run recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		slog.Error("failed to connect postgres",
			slog.String("event", "postgres.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Warn("failed to close postgres connection", slog.String("error", err.Error()))
			}
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		return 1
	}

	slog.Info("postgres connected",
		slog.String("host", cfg.Postgres.Host),
		slog.String("database", cfg.Postgres.Database),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	taskRepo := repository.NewTaskRepository(db)
	planRepo := repository.NewPlanRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	energyRepo := repository.NewEnergyRepository(db)
	nudgeGuard := repository.NewRedisNudgeGuard(redisClient)

	ingestionClient := ingestion.NewClient(cfg.Services.IngestionURL)
	plannerClient := planner.NewClient(cfg.Planner.URL)
	dispatchClient := dispatch.NewClient(cfg.Services.DispatchURL)

	var generator gentext.Generator
	if cfg.Services.GentextURL != "" {
		generator = gentext.NewClient(cfg.Services.GentextURL)
	} else {
		slog.Warn("GENTEXT_URL not set, text personalization disabled")
	}

	var embedder embedding.Store
	if cfg.Services.EmbeddingURL != "" {
		embedder = embedding.NewClient(cfg.Services.EmbeddingURL)
	} else {
		slog.Warn("EMBEDDING_URL not set, task context encoding disabled")
	}

	scorer := score.NewEngine()
	analyzer := learning.NewAnalyzer(feedbackRepo)
	adjuster := learning.NewAdjuster(feedbackRepo, analyzer)
	normalizer := normalize.NewNormalizer()

	synthesizer := synthesis.NewSynthesizer(
		planRepo,
		energyRepo,
		scorer,
		analyzer,
		adjuster,
		plannerClient,
		generator,
		cfg.Planner.PrimaryProfile,
		cfg.Planner.FallbackProfile,
		pipelineMetrics,
	)

	runner := pipeline.NewRunner(
		ingestionClient,
		taskRepo,
		embedder,
		normalizer,
		synthesizer,
		recorder,
		pipelineMetrics,
		cfg.Pipeline.EmailIngestionEnabled,
	)

	trigger := nudge.NewTrigger(
		planRepo,
		taskRepo,
		notifRepo,
		nudgeGuard,
		dispatchClient,
		generator,
		recorder,
		nudgeMetrics,
	).WithWindow(cfg.Nudge.Window)

	syncHandler := handler.NewSyncHandler(runner)
	planHandler := handler.NewPlanHandler(taskRepo, planRepo, normalizer, synthesizer)
	reminderHandler := handler.NewReminderHandler(taskRepo, normalizer)
	taskHandler := handler.NewTaskHandler(taskRepo, feedbackRepo)
	nudgeHandler := handler.NewNudgeHandler(trigger)
	energyHandler := handler.NewEnergyHandler(energyRepo)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(db, redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/sync", syncHandler.HandleSync)
		v1.POST("/plans/generate", planHandler.HandleGeneratePlan)
		v1.GET("/plans/:date", planHandler.HandleGetPlan)
		v1.GET("/reminders/:date", reminderHandler.HandleGetReminders)
		v1.POST("/tasks/:id/done", taskHandler.HandleDone)
		v1.POST("/tasks/:id/snooze", taskHandler.HandleSnooze)
		v1.POST("/nudges/sweep", nudgeHandler.HandleSweep)
		v1.PUT("/energy", energyHandler.HandleSetEnergy)
	}

	workerCtx, workerCancel := context.WithCancel(ctx)
	defer workerCancel()

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		planWorker := worker.NewPlanWorker(runner, taskRepo, cfg.Pipeline.GenerationHour, cfg.Pipeline.WorkerConcurrency)
		planWorker.Run(workerCtx)
	}()

	nudgeDone := make(chan struct{})
	if cfg.Nudge.Disabled {
		close(nudgeDone)
		slog.Info("nudge worker disabled")
	} else {
		go func() {
			defer close(nudgeDone)
			nudgeWorker := worker.NewNudgeWorker(trigger, cfg.Nudge.SweepInterval)
			nudgeWorker.Run(workerCtx)
		}()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Bool("email_ingestion", cfg.Pipeline.EmailIngestionEnabled),
			slog.Int("plan_generation_hour", cfg.Pipeline.GenerationHour),
			slog.Duration("nudge_sweep_interval", cfg.Nudge.SweepInterval),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		workerCancel()
		<-workerDone
		<-nudgeDone

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
