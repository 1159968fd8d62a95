package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultDatabasePath      = "musicmaps.db"
	defaultGeocodeQueueSize  = 20
	defaultNumGeocodeWorkers = 2
	defaultGeocodeTimeout    = 10 * time.Second
)

type Config struct {
	// database path for the catalog's SQLite file
	DatabasePath string

	// drop and re-seed the catalog on initialization
	ResetDatabase bool

	// geocode worker settings
	GeocodeQueueSize  int
	NumGeocodeWorkers int
	GeocodeTimeout    time.Duration

	// logrus level name (debug, info, warn, error)
	LogLevel string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		logrus.WithField("var", envVar).Warnf("invalid value %q, using default %d", valStr, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvBoolOrDefault(envVar string, defaultVal bool) bool {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		logrus.WithField("var", envVar).Warnf("invalid value %q, using default %t", valStr, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvDurationOrDefault(envVar string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		logrus.WithField("var", envVar).Warnf("invalid value %q, using default %s", valStr, defaultVal)
		return defaultVal
	}
	return val
}

// LoadConfig reads configuration from the environment, consulting an
// optional .env file first. The library has no main of its own, so
// the config layer owns dotenv loading.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	cfg := Config{
		DatabasePath:      getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		ResetDatabase:     getEnvBoolOrDefault("DATABASE_RESET", false),
		GeocodeQueueSize:  getEnvIntOrDefault("GEOCODE_QUEUE_SIZE", defaultGeocodeQueueSize),
		NumGeocodeWorkers: getEnvIntOrDefault("NUM_GEOCODE_WORKERS", defaultNumGeocodeWorkers),
		GeocodeTimeout:    getEnvDurationOrDefault("GEOCODE_TIMEOUT", defaultGeocodeTimeout),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

// ApplyLogLevel sets the global logrus level from cfg, falling back
// to info on an unknown name.
func (c Config) ApplyLogLevel() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
