package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/transhub/shuttletrack/internal/pkg/apiclient"
	"github.com/transhub/shuttletrack/internal/pkg/config"
	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/session"
	riderhttp "github.com/transhub/shuttletrack/services/rider/gateway/http"
	"github.com/transhub/shuttletrack/services/rider/usecase"
)

const appName = "rider-watch"

func main() {
	configPath := flag.String("config", "", "path to config file")
	email := flag.String("email", "", "rider email (skipped when a saved session exists)")
	password := flag.String("password", "", "rider password")
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
	gw := riderhttp.NewGateway(client)

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

	monitor := usecase.NewMonitor(gw, cfg.Tracking.AssignmentInterval, cfg.Tracking.LocationInterval)
	monitor.Start(ctx)
	defer monitor.Stop()

	render(monitor.View())

	displayTicker := time.NewTicker(5 * time.Second)
	defer displayTicker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-displayTicker.C:
			render(monitor.View())
		case <-quit:
			return
		}
	}
}

func render(view usecase.View) {
	switch view.State {
	case usecase.StateLoading:
		fmt.Println("Loading assignment...")
	case usecase.StateNoAssignment:
		fmt.Println("No active assignment.")
	case usecase.StateError:
		fmt.Printf("Problem reaching the service: %s\n", view.StatusMessage)
	case usecase.StateHasAssignment:
		a := view.Assignment
		fmt.Printf("Bus %s driven by %s: %s -> %s\n",
			a.BusNumber, a.DriverName, a.Pickup.Label, a.Drop.Label)
		if !view.LocationKnown {
			fmt.Printf("  %s\n", view.StatusMessage)
			return
		}
		loc := view.DriverLocation
		status := "online"
		if !loc.IsOnline {
			status = "offline"
		}
		fmt.Printf("  Driver is %s at (%.5f, %.5f), updated %s\n",
			status, loc.Latitude, loc.Longitude, loc.LastUpdated.Format(time.Kitchen))
		fmt.Printf("  Distance to pickup: %s, to drop: %s\n",
			view.DistanceToPickup, view.DistanceToDrop)
		if loc.ResolvedAddress != "" {
			fmt.Printf("  Near: %s\n", loc.ResolvedAddress)
		}
	}
}
