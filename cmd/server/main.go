package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"online_tuition/internal/config"
	"online_tuition/internal/handler"
	"online_tuition/internal/logger"
	"online_tuition/internal/middleware"
	"online_tuition/internal/model"
	"online_tuition/internal/repository"
	"online_tuition/internal/repository/mongorepo"
	"online_tuition/internal/service"
	"online_tuition/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// storage bundles the repositories of one backend with its health probe and shutdown hook
type storage struct {
	students  repository.StudentRepository
	admins    repository.AdminRepository
	timetable repository.TimetableRepository
	ping      func(ctx context.Context) error
	close     func()
}

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(config.EnvDev)
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Env)
	if envErr != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	// --- Storage ---
	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to open storage")
	}
	defer store.close()

	// --- Initialize Services ---
	authService := service.NewAuthService(store.students, store.admins, log)
	accountService := service.NewAccountService(store.students, store.admins, log)
	timetableService := service.NewTimetableService(store.timetable, log)

	// --- Initialize Handlers ---
	accountHandler := handler.NewAccountHandler(accountService)
	authHandler := handler.NewAuthHandler(authService)
	timetableHandler := handler.NewTimetableHandler(timetableService)
	healthHandler := handler.NewHealthHandler(cfg.Storage.Driver, store.ping)

	// --- Setup Gin Router ---
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	tmpl, err := view.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}
	router.SetHTMLTemplate(tmpl)

	// --- Initialize Middlewares ---
	adminAuthMW := middleware.CredentialsMiddleware(authService, model.KindAdmin)
	adminKindMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	accountHandler.RegisterAccountRoutes(router)
	authHandler.RegisterAuthRoutes(router)
	timetableHandler.RegisterTimetableRoutes(router, adminAuthMW, adminKindMW)
	router.GET("/health", healthHandler.Health)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.Storage.Driver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := config.ConnectPostgres(ctx, cfg.Storage.Postgres, log)
		if err != nil {
			return nil, err
		}
		if err := config.EnsureSchema(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &storage{
			students:  repository.NewStudentRepository(pool),
			admins:    repository.NewAdminRepository(pool),
			timetable: repository.NewTimetableRepository(pool),
			ping:      pool.Ping,
			close:     pool.Close,
		}, nil
	default:
		client, db, err := config.ConnectMongo(ctx, cfg.Storage.Mongo, log)
		if err != nil {
			return nil, err
		}
		return &storage{
			students:  mongorepo.NewStudentRepository(db),
			admins:    mongorepo.NewAdminRepository(db),
			timetable: mongorepo.NewTimetableRepository(db),
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error().Err(err).Msg("failed to disconnect from MongoDB")
				}
			},
		}, nil
	}
}
