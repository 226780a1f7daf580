// Standalone snapshot utility: copies every JSON data file into a
// timestamped backup without opening the interactive menu.
package main

import (
	"log"

	"github.com/robertarktes/cinema-booking-manager/internal/adapters/jsonstore"
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

	files, err := store.Backup(cfg.BackupDir)
	if err != nil {
		log.Fatalf("backup failed: %v", err)
	}
	for _, f := range files {
		logger.WithField("file", f).Info("copied")
	}
	logger.WithField("count", len(files)).Info("backup complete")
}
