package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transhub/shuttletrack/internal/pkg/config"
	"github.com/transhub/shuttletrack/internal/pkg/database"
	"github.com/transhub/shuttletrack/internal/pkg/geocode"
	"github.com/transhub/shuttletrack/internal/pkg/health"
	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/middleware"
	internalnsq "github.com/transhub/shuttletrack/internal/pkg/nsq"
	"github.com/transhub/shuttletrack/internal/pkg/server"
	"github.com/transhub/shuttletrack/services/tracker"
	nsqgw "github.com/transhub/shuttletrack/services/tracker/gateway/nsq"
	"github.com/transhub/shuttletrack/services/tracker/handler"
	trackerhttp "github.com/transhub/shuttletrack/services/tracker/handler/http"
	"github.com/transhub/shuttletrack/services/tracker/repository"
	"github.com/transhub/shuttletrack/services/tracker/usecase"
)

const appName = "trackerd"

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		FilePath:    cfg.Logger.FilePath,
		ServiceName: appName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	shutdownMgr := server.NewShutdownManager(zapLogger)

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to Postgres", logger.Err(err))
	}
	shutdownMgr.Register(func(context.Context) error { return db.Close() })

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdownMgr.Register(func(context.Context) error { return redisClient.Close() })

	var gw tracker.TrackerGW = nsqgw.NoopGateway{}
	if cfg.NSQ.Enabled {
		producer, err := internalnsq.NewProducer(cfg.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdownMgr.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
		gw = nsqgw.NewGateway(producer)
	}

	var geocoder geocode.Geocoder = geocode.Noop{}
	if cfg.Tracking.GeocodeEnabled {
		geocoder = geocode.NewNominatimClient(cfg.Tracking.GeocodeURL, 5*time.Second)
	}

	locationRepo := repository.NewLocationRepository(redisClient)
	accountRepo := repository.NewAccountRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	authUC := usecase.NewAuthUsecase(accountRepo, cfg)
	locationUC := usecase.NewLocationUsecase(locationRepo, assignmentRepo, gw, geocoder, cfg)
	assignmentUC := usecase.NewAssignmentUsecase(assignmentRepo, accountRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	health.RegisterHealthEndpoints(e, appName)

	trackerHandler := handler.NewTrackerHandler(
		trackerhttp.NewAuthHandler(authUC),
		trackerhttp.NewLocationHandler(locationUC),
		trackerhttp.NewAssignmentHandler(assignmentUC),
		cfg.JWT,
	)
	trackerHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownMgr.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown finished with errors", logger.Err(err))
	}
}
