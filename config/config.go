package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"os-scheduler/internal/logging"
)

type SchedulerConfig struct {
	Port                             int
	RoundRobinTimeQuantum            int
	MultilevelQueueHighPriorityBelow int
	RequestTimeout                   time.Duration
	StoragePath                      string
	LogLevel                         string
	LogFormat                        string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.multilevel_queue.high_priority_below", 2)
	v.SetDefault("scheduler.request_timeout", "5s")
	v.SetDefault("storage.path", "scheduler.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load reads config.yaml from the working directory, or configFile when it
// is set. Variables from a .env file and the environment override the file,
// e.g. SCHEDULER_ROUND_ROBIN_TIME_QUANTUM for scheduler.round_robin.time_quantum.
// A missing config.yaml is not an error; a missing explicit configFile is.
func Load(configFile string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                             v.GetInt("port"),
		RoundRobinTimeQuantum:            v.GetInt("scheduler.round_robin.time_quantum"),
		MultilevelQueueHighPriorityBelow: v.GetInt("scheduler.multilevel_queue.high_priority_below"),
		RequestTimeout:                   v.GetDuration("scheduler.request_timeout"),
		StoragePath:                      v.GetString("storage.path"),
		LogLevel:                         v.GetString("log.level"),
		LogFormat:                        v.GetString("log.format"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("scheduler.request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if err := logging.ValidateFormat(c.LogFormat); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	return nil
}
