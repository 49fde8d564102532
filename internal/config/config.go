package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// EngineConfig represents Monte Carlo engine configuration
type EngineConfig struct {
	ExecutionMode string `yaml:"execution_mode"` // auto, sequential, parallel
	Workers       int    `yaml:"workers"`        // 0 = one per CPU
	NSimulations  uint   `yaml:"n_simulations"`  // independent sample paths per run
	NSteps        uint   `yaml:"n_steps"`        // default time steps per path
	Seed          uint64 `yaml:"seed"`           // deterministic seed for the random source
	RetainPaths   bool   `yaml:"retain_paths"`   // keep the simulated grid on results
}

type Config struct {
	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
	// Engine settings
	Engine EngineConfig `yaml:"engine"`
}

type YAMLConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Engine  struct {
		ExecutionMode string `yaml:"execution_mode"`
		Workers       int    `yaml:"workers"`
		NSimulations  uint   `yaml:"n_simulations"`
		NSteps        uint   `yaml:"n_steps"`
		// Pointer so an explicit seed: 0 is distinguishable from absent.
		Seed        *uint64 `yaml:"seed"`
		RetainPaths bool    `yaml:"retain_paths"`
	} `yaml:"engine"`
}

func Load() *Config {
	cfg := &Config{
		Logging: LoggingConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", "swordfish.log"),
		},
		Engine: EngineConfig{
			ExecutionMode: getEnv("ENGINE_EXECUTION_MODE", "auto"),
			Workers:       getEnvInt("ENGINE_WORKERS", 0),
			NSimulations:  getEnvUint("ENGINE_N_SIMULATIONS", 10000),
			NSteps:        getEnvUint("ENGINE_N_STEPS", 252),
			Seed:          getEnvUint64("ENGINE_SEED", 42),
			RetainPaths:   getEnvBool("ENGINE_RETAIN_PATHS", false),
		},
	}

	// Try to load from YAML file
	if yamlCfg := loadYAMLConfig(); yamlCfg != nil {
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}

		if yamlCfg.Engine.ExecutionMode != "" {
			cfg.Engine.ExecutionMode = yamlCfg.Engine.ExecutionMode
		}
		if yamlCfg.Engine.Workers > 0 {
			cfg.Engine.Workers = yamlCfg.Engine.Workers
		}
		if yamlCfg.Engine.NSimulations > 0 {
			cfg.Engine.NSimulations = yamlCfg.Engine.NSimulations
		}
		if yamlCfg.Engine.NSteps > 0 {
			cfg.Engine.NSteps = yamlCfg.Engine.NSteps
		}
		if yamlCfg.Engine.Seed != nil {
			cfg.Engine.Seed = *yamlCfg.Engine.Seed
		}
		if yamlCfg.Engine.RetainPaths {
			cfg.Engine.RetainPaths = true
		}
	}

	return cfg
}

func loadYAMLConfig() *YAMLConfig {
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		// Could not read config.yaml - silently return nil
		return nil
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		// Could not parse config.yaml - silently return nil
		return nil
	}

	return &yamlCfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvUint(key string, defaultValue uint) uint {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uint(parsed)
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseUint(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
