package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config captures process-level configuration. Catalogue paths are read
// once at startup; empty paths select the built-in demo catalogues.
type Config struct {
	Addr            string
	DBPath          string
	OutputDir       string
	SurnameCatalog  string
	CenterCatalog   string
	DefaultCellSize float64
}

// FromEnv builds a Config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:            getEnv("DENSITY_ADDR", ":8080"),
		DBPath:          getEnv("DENSITY_DB", "density.db"),
		OutputDir:       getEnv("DENSITY_OUTPUT_DIR", "output"),
		SurnameCatalog:  os.Getenv("DENSITY_SURNAME_CATALOG"),
		CenterCatalog:   os.Getenv("DENSITY_CENTER_CATALOG"),
		DefaultCellSize: 0.005, // ~500m at mid-latitudes
	}

	if raw := os.Getenv("DENSITY_CELL_SIZE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			cfg.DefaultCellSize = v
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
