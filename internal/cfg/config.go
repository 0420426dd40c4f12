package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/vrischmann/envconfig"

	"github.com/scriptwatch/exporter.git/pkg/log"
)

// Config holds the exporter settings. Values come from the environment
// (after loading an optional .env file); command-line flags may override
// them afterwards, see cmd/exporter.
type Config struct {
	Logger         *log.Config
	Script         string        `envconfig:"SCRIPT,optional"`
	Port           int           `envconfig:"PORT"`
	ScrapeInterval time.Duration `envconfig:"SCRAPE_INTERVAL"`
	CommandTimeout time.Duration `envconfig:"COMMAND_TIMEOUT,optional"`
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Logger: &log.Config{},
	}

	defaults := map[string]string{
		"PORT":            "8000",
		"SCRAPE_INTERVAL": "5s",
	}

	for key, value := range defaults {
		if os.Getenv(key) == "" {
			os.Setenv(key, value)
		}
	}

	// Accept bare-second values for durations.
	for _, key := range []string{"SCRAPE_INTERVAL", "COMMAND_TIMEOUT"} {
		if val := os.Getenv(key); val != "" {
			if sec, err := strconv.Atoi(val); err == nil {
				os.Setenv(key, strconv.Itoa(sec)+"s")
			}
		}
	}

	if err := envconfig.Init(config); err != nil {
		return nil, err
	}

	config.Logger.SetDefault()

	return config, nil
}

// ListenAddr returns the HTTP bind address. The exporter always listens on
// all interfaces.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
