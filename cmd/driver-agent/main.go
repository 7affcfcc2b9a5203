package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/transhub/shuttletrack/internal/pkg/apiclient"
	"github.com/transhub/shuttletrack/internal/pkg/config"
	"github.com/transhub/shuttletrack/internal/pkg/geolocation"
	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/session"
	agenthttp "github.com/transhub/shuttletrack/services/agent/gateway/http"
	"github.com/transhub/shuttletrack/services/agent/usecase"
)

const appName = "driver-agent"

func main() {
	configPath := flag.String("config", "", "path to config file")
	email := flag.String("email", "", "driver email (skipped when a saved session exists)")
	password := flag.String("password", "", "driver password")
	replayFile := flag.String("replay", "", "replay fixes from a JSON file instead of simulating")
	startLat := flag.Float64("lat", -6.2000, "simulated start latitude")
	startLon := flag.Float64("lon", 106.8167, "simulated start longitude")
	logout := flag.Bool("logout", false, "clear the saved session and exit")
	flag.Parse()

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		ServiceName: appName,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	store, err := session.NewStore(cfg.API.SessionPath)
	if err != nil {
		logger.Fatal("Failed to open session store", logger.Err(err))
	}

	if *logout {
		if err := store.Clear(); err != nil {
			logger.Fatal("Failed to clear session", logger.Err(err))
		}
		logger.Info("Session cleared")
		return
	}

	client := apiclient.New(cfg.API.BaseURL, time.Duration(cfg.API.Timeout)*time.Second)
	client.SetTokenSource(func() string {
		return store.Load().Token
	})
	gw := agenthttp.NewGateway(client)

	ctx := context.Background()

	sess := store.Load()
	if sess.Authenticated && sess.ExpiresWithin(time.Minute) {
		logger.Info("Saved session expired; sign-in required")
		sess = session.Default()
	}
	if !sess.Authenticated {
		if *email == "" || *password == "" {
			logger.Fatal("No saved session; -email and -password are required")
		}
		resp, err := gw.Login(ctx, *email, *password)
		if err != nil {
			logger.Fatal("Login failed", logger.Err(err))
		}
		sess = session.Session{
			Authenticated: true,
			Token:         resp.Token,
			Role:          resp.Account.Role,
			Account:       &resp.Account,
		}
		if err := store.Save(sess); err != nil {
			logger.Warn("Failed to persist session", logger.Err(err))
		}
		logger.Info("Signed in", logger.String("email", resp.Account.Email))
	}

	provider, err := buildProvider(*replayFile, *startLat, *startLon)
	if err != nil {
		logger.Fatal("Failed to build location provider", logger.Err(err))
	}

	source := geolocation.NewSource(provider, geolocation.Options{
		AcquisitionTimeout: cfg.Tracking.AcquisitionTimeout,
		OneShotMaxFixAge:   cfg.Tracking.OneShotMaxFixAge,
		TrackingMaxFixAge:  cfg.Tracking.TrackingMaxFixAge,
	})

	pub := usecase.NewPublisher(gw, source, cfg.Tracking.PublishInterval)

	if assignment, err := gw.ActiveAssignment(ctx); err == nil {
		logger.Info("Active assignment",
			logger.String("pickup", assignment.Pickup.Label),
			logger.String("drop", assignment.Drop.Label),
			logger.Int("riders", len(assignment.AssignedRiders)))
	} else if apiclient.IsNotFound(err) {
		logger.Info("No active assignment yet; sharing location anyway")
	} else {
		logger.Warn("Failed to fetch assignment", logger.Err(err))
	}

	if err := pub.Start(ctx); err != nil {
		logger.Fatal("Failed to start sharing", logger.Err(err))
	}
	logger.Info("Sharing location", logger.Duration("interval", cfg.Tracking.PublishInterval))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// SIGUSR1 refreshes the GPS fix without publishing, SIGUSR2 forces an
	// immediate publish
	refresh := make(chan os.Signal, 1)
	signal.Notify(refresh, syscall.SIGUSR1)
	publish := make(chan os.Signal, 1)
	signal.Notify(publish, syscall.SIGUSR2)

loop:
	for {
		select {
		case <-refresh:
			fix, err := pub.RefreshFix(ctx)
			if err != nil {
				logger.Warn("GPS refresh failed", logger.Err(err))
				continue
			}
			logger.Info("GPS fix refreshed",
				logger.Float64("latitude", fix.Latitude),
				logger.Float64("longitude", fix.Longitude),
				logger.Float64("accuracy", fix.AccuracyMeters))
		case <-publish:
			if err := pub.PublishNow(ctx); err != nil {
				logger.Warn("Manual publish failed", logger.Err(err))
				continue
			}
			logger.Info("Location published")
		case <-quit:
			break loop
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pub.Stop(stopCtx); err != nil {
		logger.Error("Failed to stop cleanly", logger.Err(err))
		os.Exit(1)
	}
	logger.Info("Stopped sharing, driver marked offline")
}

func buildProvider(replayFile string, lat, lon float64) (geolocation.Provider, error) {
	if replayFile != "" {
		return geolocation.LoadReplayFile(replayFile, 5*time.Second)
	}
	return geolocation.NewSimulatedProvider(lat, lon, time.Now().UnixNano()), nil
}
