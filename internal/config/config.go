package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// TheMovieDb
	TMDBAPIKey   string
	TMDBAPIHost  string // e.g. https://api.themoviedb.org/3
	TMDBLanguage string // e.g. en-US, appended to detail requests

	// Server
	ServerPort string

	// Reachability probe
	ProbeSchedule string // cron spec, e.g. "@every 30s"

	// Paths
	DatabaseFile string // $CONFIG_DIR/favorites.db

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("TMDB_API_HOST", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_LANGUAGE", "en-US")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("PROBE_SCHEDULE", "@every 30s")
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read CONFIG_DIR from viper (which has loaded .env file)
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "moviebrowse")
	} else {
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{
		TMDBAPIKey:   viper.GetString("TMDB_API_KEY"),
		TMDBAPIHost:  viper.GetString("TMDB_API_HOST"),
		TMDBLanguage: viper.GetString("TMDB_LANGUAGE"),

		ServerPort:    viper.GetString("SERVER_PORT"),
		ProbeSchedule: viper.GetString("PROBE_SCHEDULE"),

		DatabaseFile: filepath.Join(configDir, "favorites.db"),

		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	// Validate required fields
	if config.TMDBAPIKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is required")
	}

	return config, nil
}
