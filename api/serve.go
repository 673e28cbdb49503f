package main

import (
	"context"
	"errors"
	"fmt"
	grpcserver "leaguecatalog/api/grpc"
	"leaguecatalog/api/modules"
	"leaguecatalog/api/routes"
	"leaguecatalog/pkg/config"
	"leaguecatalog/pkg/database"
	"leaguecatalog/pkg/logger"
	"leaguecatalog/pkg/redis"
	"leaguecatalog/pkg/scheduler"
	"leaguecatalog/pkg/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	healthInterval  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the champion catalog API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger, err := logger.CreateLogger()
	if err != nil {
		return fmt.Errorf("couldn't create the logger: %w", err)
	}
	defer appLogger.Close()

	if cfg.Environment == "docker" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Champion writes are locked on redis.
	redisClient := redis.GetClient(&cfg.Redis)
	defer redisClient.Close()

	if err := redisClient.Ping(ctx); err != nil {
		return fmt.Errorf("couldn't reach redis at %s: %w", cfg.RedisAddr(), err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("couldn't get the sql connection: %w", err)
	}

	if err := database.RunMigrations(ctx, sqlDB); err != nil {
		return err
	}

	s3Client := storage.NewS3Client(&cfg.Bucket)
	blobStore := storage.NewS3Store(s3Client, cfg.Bucket.Name, storage.PublicBaseURL(&cfg.Bucket, cfg.Bucket.Name))

	module := modules.NewModule(&modules.ModuleDependencies{
		Config:    cfg,
		DB:        db,
		Redis:     redisClient,
		BlobStore: blobStore,
		Logger:    appLogger,
	})

	router := routes.NewRouter(module.Router)
	if module.WriteGuard != nil {
		router.ProtectWrites(module.WriteGuard)
	}
	router.SetupRoutes(
		module.ChampionHandler,
		module.AuthHandler,
		module.UserHandler,
	)

	healthServer := grpcserver.NewHealthServer(appLogger, map[string]grpcserver.Probe{
		"database": sqlDB.PingContext,
		"redis":    redisClient.Ping,
	})
	if err := healthServer.Start(cfg.Server.HealthAddr); err != nil {
		return err
	}
	defer healthServer.Shutdown()

	jobs := []scheduler.Job{
		{Name: "health-refresh", Interval: healthInterval, Task: healthServer.Refresh},
	}
	if cfg.Bucket.LogBucket != "" {
		jobs = append(jobs, scheduler.Job{
			Name:     "log-shipping",
			Interval: cfg.Bucket.LogUploadInterval,
			Task: func(ctx context.Context) {
				shipLogs(ctx, appLogger, s3Client, &cfg.Bucket)
			},
		})
	}

	backgroundJobs, err := scheduler.New(ctx, jobs...)
	if err != nil {
		return err
	}
	backgroundJobs.Start()

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Infof("Running API on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		appLogger.Infof("Shutting down")
	case err := <-serverErr:
		appLogger.Errorf("API stopped: %v", err)
		backgroundJobs.Shutdown()
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := backgroundJobs.Shutdown(); err != nil {
		appLogger.Errorf("Couldn't stop the background jobs: %v", err)
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Couldn't shutdown the API gracefully: %v", err)
	}

	shipLogs(shutdownCtx, appLogger, s3Client, &cfg.Bucket)
	return nil
}

// Upload what was logged since the last upload to the log bucket, if there's one.
func shipLogs(ctx context.Context, appLogger *logger.NewLogger, client *s3.Client, cfg *config.BucketConfiguration) {
	if cfg.LogBucket == "" {
		return
	}

	logStore := storage.NewS3Store(client, cfg.LogBucket, storage.PublicBaseURL(cfg, cfg.LogBucket))
	objectKey := fmt.Sprintf("api/%s.log", time.Now().UTC().Format("2006-01-02T15-04-05"))

	if err := appLogger.UploadTo(ctx, logStore, objectKey); err != nil {
		appLogger.Errorf("Couldn't upload the logs: %v", err)
	}
}
