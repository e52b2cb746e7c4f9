package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"aid-gap-analyzer/internal/dashboard/core/pipeline"
	"aid-gap-analyzer/internal/dashboard/core/usecase"
)

//go:embed default.yaml
var DefaultConfigYAML []byte

// MaxRecordCount bounds dataset.record_count; every session holds its own
// copy of the dataset.
const MaxRecordCount = 100000

// EnvPath names the environment variable the server reads its config path from.
const EnvPath = "AIDGAP_CONFIG"

type Config struct {
	Server    Server    `yaml:"server"`
	Dataset   Dataset   `yaml:"dataset"`
	Sessions  Sessions  `yaml:"sessions"`
	Dashboard Dashboard `yaml:"dashboard"`
}

type Server struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RequestLog      bool          `yaml:"request_log"`
}

type Dataset struct {
	Seed        uint64 `yaml:"seed"`
	RecordCount int    `yaml:"record_count"`
	WindowDays  int    `yaml:"window_days"`
}

type Sessions struct {
	Capacity int           `yaml:"capacity"`
	TTL      time.Duration `yaml:"ttl"`
}

type Dashboard struct {
	RecentLimit int `yaml:"recent_limit"`
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default config is invalid: %v", err))
	}
	return cfg
}

// Load reads a YAML config file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

// FromEnv loads the file named by AIDGAP_CONFIG, if set.
func FromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPath))
}

// parse parses YAML bytes into a Config, applying defaults first.
func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Server: Server{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
			RequestLog:      true,
		},
		Dataset: Dataset{
			Seed:        pipeline.DefaultSeed,
			RecordCount: pipeline.DefaultRecordCount,
			WindowDays:  pipeline.DefaultWindowDays,
		},
		Sessions: Sessions{
			Capacity: 1024,
			TTL:      30 * time.Minute,
		},
		Dashboard: Dashboard{RecentLimit: pipeline.DefaultRecentLimit},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Dataset.RecordCount < 0 || c.Dataset.RecordCount > MaxRecordCount {
		errs = append(errs, fmt.Errorf("dataset.record_count must be in [0, %d], got %d", MaxRecordCount, c.Dataset.RecordCount))
	}
	if c.Dataset.WindowDays <= 0 {
		errs = append(errs, fmt.Errorf("dataset.window_days must be positive, got %d", c.Dataset.WindowDays))
	}
	if c.Sessions.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("sessions.capacity must be positive, got %d", c.Sessions.Capacity))
	}
	if c.Sessions.TTL <= 0 {
		errs = append(errs, fmt.Errorf("sessions.ttl must be positive, got %s", c.Sessions.TTL))
	}
	if c.Dashboard.RecentLimit <= 0 || c.Dashboard.RecentLimit > usecase.MaxRecordsLimit {
		errs = append(errs, fmt.Errorf("dashboard.recent_limit must be in [1, %d], got %d", usecase.MaxRecordsLimit, c.Dashboard.RecentLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// DatasetSettings converts the dataset and dashboard sections for the usecases.
func (c *Config) DatasetSettings() usecase.DatasetSettings {
	return usecase.DatasetSettings{
		Seed:        c.Dataset.Seed,
		RecordCount: c.Dataset.RecordCount,
		WindowDays:  c.Dataset.WindowDays,
		RecentLimit: c.Dashboard.RecentLimit,
	}
}
