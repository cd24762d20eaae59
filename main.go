package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"route-evaluator/locations"
	"route-evaluator/logger"
	"route-evaluator/server"
	"route-evaluator/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)
	notifier := utils.NewNotifier(cfg.NtfyServer, cfg.NtfyTopic)

	table, err := locations.LoadOrDefault(cfg.LocationsFile)
	if err != nil {
		if nerr := notifier.SendNotification(utils.FormatErrorNotification(err, "Startup")); nerr != nil {
			log.Error(nerr, "startup notification failed")
		}
		log.Fatal(err, "failed to load locations", "file", cfg.LocationsFile)
	}
	if _, ok := table.Lookup(cfg.Trip.HomeBase); !ok {
		log.Fatal(nil, "home base missing from location table", "home_base", cfg.Trip.HomeBase)
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(server.New(table, cfg.Trip, cfg.RadiusMiles, log, notifier)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("route evaluator listening", "addr", srv.Addr, "locations", len(table), "home_base", cfg.Trip.HomeBase)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "server error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, "shutdown")
	}
}
