package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported values for Config.DatabaseType
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

type Config struct {
	Host         string
	Port         int
	DatabaseURL  string
	DatabaseType string
	LogFormat    string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	flags := flag.NewFlagSet("equb-registry", flag.ContinueOnError)

	flags.StringVar(&cfg.Host, "host", "", "Listen address")
	flags.IntVar(&cfg.Port, "p", 0, "Server port")
	flags.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	flags.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	flags.StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if cfg.Host == "" {
		cfg.Host = os.Getenv("HOST")
		if cfg.Host == "" {
			cfg.Host = "0.0.0.0"
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 10000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabasePostgres
		}
	}
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, errors.New("database type must be postgres or sqlite")
	}

	cfg.LogFormat = os.Getenv("LOG_FORMAT")

	return cfg, nil
}

// loadEnvFile reads KEY=VALUE pairs into the process environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
