// Package config holds the uxengine runtime configuration: adaptation
// thresholds, intent tuning, session-store sizing, and logging. Scoring weight
// tables live in code; only thresholds and capacities are configurable.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all uxengine configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Engine/session settings
	Engine EngineConfig `yaml:"engine"`

	// Real-time adaptation thresholds
	Budgets BudgetsConfig `yaml:"budgets"`

	// Intent recognition tuning
	Intent IntentConfig `yaml:"intent"`

	// Metrics exposition
	Metrics MetricsConfig `yaml:"metrics"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig configures the orchestrator.
type EngineConfig struct {
	// SessionCapacity bounds the persona session store; least-recently-used
	// sessions are evicted beyond it.
	SessionCapacity int `yaml:"session_capacity"`
}

// BudgetsConfig configures the real-time adapter thresholds.
type BudgetsConfig struct {
	LoadTimeMS          float64 `yaml:"load_time_ms"`
	RenderTimeMS        float64 `yaml:"render_time_ms"`
	InteractionDelayMS  float64 `yaml:"interaction_delay_ms"`
	ScrollDepthFloor    float64 `yaml:"scroll_depth_floor"`
	TimeOnPageFloor     float64 `yaml:"time_on_page_floor"`
	BounceRateCeil      float64 `yaml:"bounce_rate_ceil"`
	ConversionRateFloor float64 `yaml:"conversion_rate_floor"`
	AbandonmentRateCeil float64 `yaml:"abandonment_rate_ceil"`
}

// IntentConfig configures intent recognition.
type IntentConfig struct {
	// HighUrgencyVelocity is the interactions-per-minute threshold that
	// escalates urgency to high.
	HighUrgencyVelocity float64 `yaml:"high_urgency_velocity"`
}

// MetricsConfig configures Prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "uxengine",
		Version: "1.0.0",

		Engine: EngineConfig{
			SessionCapacity: 10000,
		},

		Budgets: BudgetsConfig{
			LoadTimeMS:          3000,
			RenderTimeMS:        800,
			InteractionDelayMS:  300,
			ScrollDepthFloor:    25,
			TimeOnPageFloor:     20,
			BounceRateCeil:      0.55,
			ConversionRateFloor: 0.02,
			AbandonmentRateCeil: 0.70,
		},

		Intent: IntentConfig{
			HighUrgencyVelocity: 5.0,
		},

		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "uxengine",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file, applies environment overrides,
// and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("UXENGINE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if capacity := os.Getenv("UXENGINE_SESSION_CAPACITY"); capacity != "" {
		if n, err := strconv.Atoi(capacity); err == nil && n > 0 {
			c.Engine.SessionCapacity = n
		}
	}
	if enabled := os.Getenv("UXENGINE_METRICS_ENABLED"); enabled != "" {
		c.Metrics.Enabled = enabled == "true" || enabled == "1"
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Engine.SessionCapacity <= 0 {
		return fmt.Errorf("engine.session_capacity must be positive, got %d", c.Engine.SessionCapacity)
	}
	if c.Budgets.LoadTimeMS <= 0 || c.Budgets.RenderTimeMS <= 0 || c.Budgets.InteractionDelayMS <= 0 {
		return fmt.Errorf("performance budgets must be positive")
	}
	if c.Budgets.BounceRateCeil <= 0 || c.Budgets.BounceRateCeil > 1 {
		return fmt.Errorf("budgets.bounce_rate_ceil must be in (0,1], got %v", c.Budgets.BounceRateCeil)
	}
	if c.Budgets.AbandonmentRateCeil <= 0 || c.Budgets.AbandonmentRateCeil > 1 {
		return fmt.Errorf("budgets.abandonment_rate_ceil must be in (0,1], got %v", c.Budgets.AbandonmentRateCeil)
	}
	if c.Intent.HighUrgencyVelocity <= 0 {
		return fmt.Errorf("intent.high_urgency_velocity must be positive, got %v", c.Intent.HighUrgencyVelocity)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}
