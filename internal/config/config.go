package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every runtime setting. All values have defaults so the
// application runs with no environment at all; a .env file or exported
// variables override them.
type Config struct {
	DataDir       string
	BackupDir     string
	TicketDir     string
	TaxRate       float64
	StandardPrice float64
	DefaultRows   []string
	DefaultCols   int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		DataDir:       getString("CINEMA_DATA_DIR", "data"),
		BackupDir:     getString("CINEMA_BACKUP_DIR", "backups"),
		TicketDir:     getString("CINEMA_TICKET_DIR", "tickets"),
		TaxRate:       getFloat("CINEMA_TAX_RATE", 0.18),
		StandardPrice: getFloat("CINEMA_STANDARD_PRICE", 100.0),
		DefaultRows:   getRows("CINEMA_DEFAULT_ROWS", []string{"A", "B", "C", "D"}),
		DefaultCols:   getInt("CINEMA_DEFAULT_COLS", 10),
	}, nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getRows parses a comma-separated list of row labels ("A,B,C").
func getRows(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var rows []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			rows = append(rows, part)
		}
	}
	if len(rows) == 0 {
		return fallback
	}
	return rows
}
