package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/pricewalk/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config is the structure of pricewalk.yaml.
type Config struct {
	LogLevel   string     `yaml:"log_level" json:"log_level"`
	Server     Server     `yaml:"server" json:"server"`
	Store      Store      `yaml:"store" json:"store"`
	Simulation Simulation `yaml:"simulation" json:"simulation"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr        string `yaml:"addr" json:"addr"`
	MetricsPath string `yaml:"metrics_path" json:"metrics_path"`
}

// Store selects where generated simulations are kept.
type Store struct {
	Driver string `yaml:"driver" json:"driver"`
	Redis  Redis  `yaml:"redis" json:"redis"`
}

// Redis configures the redis store driver.
type Redis struct {
	Addr     string   `yaml:"addr" json:"addr"`
	Password string   `yaml:"password" json:"password"`
	DB       int      `yaml:"db" json:"db"`
	Prefix   string   `yaml:"prefix" json:"prefix"`
	TTL      Duration `yaml:"ttl" json:"ttl"`
}

// Simulation holds the defaults for the simulate command.
type Simulation struct {
	Process     string         `yaml:"process" json:"process"`
	StartPrice  int            `yaml:"start_price" json:"start_price"`
	TimeSteps   int            `yaml:"time_steps" json:"time_steps"`
	NumTraces   int            `yaml:"num_traces" json:"num_traces"`
	Seed        *uint64        `yaml:"seed" json:"seed"`
	Parallelism int            `yaml:"parallelism" json:"parallelism"`
	Params      map[string]any `yaml:"params" json:"params"`
}

// Request converts the simulation section into an engine request.
func (s Simulation) Request() domain.SimulationRequest {
	return domain.SimulationRequest{
		Process:    domain.ProcessKind(s.Process),
		StartPrice: s.StartPrice,
		TimeSteps:  s.TimeSteps,
		NumTraces:  s.NumTraces,
		Params:     s.Params,
		Seed:       s.Seed,
	}
}

// Duration accepts "30s"-style strings in YAML and JSON.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Server: Server{
			Addr:        ":8080",
			MetricsPath: "/metrics",
		},
		Store: Store{
			Driver: DriverMemory,
			Redis: Redis{
				Addr:   "localhost:6379",
				Prefix: "pricewalk:simulation:",
			},
		},
		Simulation: Simulation{
			Process:     string(domain.ProcessLevel),
			StartPrice:  100,
			TimeSteps:   100,
			NumTraces:   1000,
			Parallelism: 1,
		},
	}
}

// Load reads a configuration file (YAML or JSON) on top of Default.
// An empty path, or a missing file at the default location, yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings that would only fail later at runtime.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("store driver %q: %w", c.Store.Driver, domain.ErrInvalidArgument)
	}
	if c.Simulation.TimeSteps < 0 {
		return fmt.Errorf("simulation.time_steps %d: %w", c.Simulation.TimeSteps, domain.ErrInvalidArgument)
	}
	if c.Simulation.NumTraces < 1 {
		return fmt.Errorf("simulation.num_traces %d: %w", c.Simulation.NumTraces, domain.ErrInvalidArgument)
	}
	return nil
}
