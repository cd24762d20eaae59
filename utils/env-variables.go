package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"route-evaluator/logger"
	"route-evaluator/trip"
)

type Config struct {
	Port             string
	Trip             trip.Params
	RadiusMiles      float64
	LocationsFile    string
	GoogleMapsAPIKey string
	NtfyServer       string
	NtfyTopic        string
	Log              logger.Config
}

// LoadConfig reads settings from the process environment, falling back to
// values in ./.env.
func LoadConfig() (Config, error) {
	envFile, _ := godotenv.Read(".env")
	return loadConfig(envFile, os.Getenv)
}

func loadConfig(envFile map[string]string, getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		if v := strings.TrimSpace(envFile[key]); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:             get("PORT", "8080"),
		LocationsFile:    get("LOCATIONS_FILE", ""),
		GoogleMapsAPIKey: get("GOOGLE_MAPS_API_KEY", ""),
		NtfyServer:       get("NTFY_SERVER", "https://ntfy.sh"),
		NtfyTopic:        get("NTFY_TOPIC", ""),
		Log: logger.Config{
			Level:  get("LOG_LEVEL", "info"),
			Format: get("LOG_FORMAT", "text"),
		},
	}
	cfg.Trip = trip.DefaultParams()
	cfg.Trip.HomeBase = get("HOME_BASE", trip.DefaultHomeBase)

	floats := []struct {
		key string
		dst *float64
		def float64
	}{
		{"FUEL_PRICE", &cfg.Trip.FuelPricePerGallon, trip.DefaultFuelPricePerGallon},
		{"GALLONS_PER_HOUR", &cfg.Trip.GallonsPerHour, trip.DefaultGallonsPerHour},
		{"AVG_SPEED_MPH", &cfg.Trip.AverageSpeedMPH, trip.DefaultAverageSpeedMPH},
		{"HOURLY_RATE", &cfg.Trip.HourlyLaborRate, trip.DefaultHourlyLaborRate},
		{"RADIUS_MILES", &cfg.RadiusMiles, trip.DefaultRadiusMiles},
	}
	for _, f := range floats {
		raw := get(f.key, "")
		if raw == "" {
			*f.dst = f.def
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", f.key, err)
		}
		*f.dst = v
	}

	if err := cfg.Trip.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RequireMapsKey fails when no Google Maps API key is configured.
func (c Config) RequireMapsKey() error {
	if c.GoogleMapsAPIKey == "" {
		return fmt.Errorf("set GOOGLE_MAPS_API_KEY environment variable")
	}
	return nil
}
