package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robertarktes/cinema-booking-manager/internal/adapters/jsonstore"
	"github.com/robertarktes/cinema-booking-manager/internal/booking"
	"github.com/robertarktes/cinema-booking-manager/internal/cli"
	"github.com/robertarktes/cinema-booking-manager/internal/config"
	"github.com/robertarktes/cinema-booking-manager/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := observability.NewLogger()
	store := jsonstore.New(cfg.DataDir, cfg.DefaultRows, cfg.DefaultCols, logger)

	state, err := store.Load()
	if err != nil {
		log.Fatalf("failed to load state: %v", err)
	}
	logger.WithField("showtimes", len(state.Showtimes)).WithField("bookings", len(state.Bookings)).Info("state loaded")

	svc := booking.NewService(logger)
	menu := cli.New(os.Stdin, os.Stdout, cfg, store, svc, state, logger)

	done := make(chan error, 1)
	go func() {
		done <- menu.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("menu: %v", err)
		}
	case <-quit:
		// The menu goroutine may still be mutating state; SaveState takes
		// the same lock as every mutation, so the snapshot is consistent.
		logger.Info("interrupted, saving state")
		if err := menu.SaveState(); err != nil {
			log.Fatalf("save on shutdown: %v", err)
		}
	}
}
