package common

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.json"
)

// Config represents the application configuration
type Config struct {
	// Server configuration for the planning HTTP service
	Server ServerConfig `json:"server,omitempty"`
	// Solver configuration shared by both solver stages
	Solver SolverConfig `json:"solver,omitempty"`
	// Logging configuration
	Logging LoggingConfig `json:"logging,omitempty"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	// Address to listen on (e.g., ":8080")
	Address string `json:"address,omitempty"`
	// Shutdown timeout in seconds for graceful shutdown (default: 10)
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds,omitempty"`
}

// SolverConfig holds tuning knobs for the two solver stages
type SolverConfig struct {
	// Wall-clock limit in seconds for one order-to-line solve (default: 30)
	ScheduleTimeLimitSeconds int `json:"schedule_time_limit_seconds,omitempty"`
	// Wall-clock limit in seconds for one worker-allocation solve (default: 30)
	AllocationTimeLimitSeconds int `json:"allocation_time_limit_seconds,omitempty"`
	// Objective weight on the makespan term (default: 1)
	MakespanWeight int `json:"makespan_weight,omitempty"`
	// Objective weight on the total-tardiness term (default: 1)
	TardinessWeight int `json:"tardiness_weight,omitempty"`
	// Objective weight on the worker-preference term (default: 1)
	PreferenceWeight int `json:"preference_weight,omitempty"`
	// Objective weight on the worker-experience term (default: 1)
	ExperienceWeight int `json:"experience_weight,omitempty"`
	// Objective weight on the worker-resilience term (default: 1)
	ResilienceWeight int `json:"resilience_weight,omitempty"`
	// Objective weight on the staffing-offset term (default: 1)
	StaffingWeight int `json:"staffing_weight,omitempty"`
	// Use the coarse whole-horizon allocation model instead of the
	// interval-based one (default: false)
	CoarseAllocation bool `json:"coarse_allocation,omitempty"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `json:"level,omitempty"`
}

// LoadConfig reads the configuration from a JSON file. A missing file is not
// an error; it yields the zero Config so every field falls back to its default.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}
	var cfg Config
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return &cfg, nil
}

// SaveConfig writes the configuration to a JSON file
func SaveConfig(config *Config, filename string) error {
	data, err := sonic.ConfigDefault.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", filename, err)
	}
	return nil
}

// ParseLogLevel converts a config log level string to a LogLevel
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
