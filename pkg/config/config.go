package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full benchmark configuration, loadable from config.yaml
// and overridable through GENEBENCH_* environment variables.
type Config struct {
	Dataset    DatasetConfig
	Evaluation EvaluationConfig
	Tools      ToolsConfig
	Serve      ServeConfig
	Logging    LoggingConfig
}

// DatasetConfig controls the synthetic dataset generator.
type DatasetConfig struct {
	SimpleGenes   int
	ModerateGenes int
	ComplexGenes  int
	Seed          int64
	GCContent     float64
	FlankLength   int
}

// EvaluationConfig controls the evaluation stage.
type EvaluationConfig struct {
	IoUThreshold float64
	Workers      int
}

// ToolsConfig selects which simulated tools run.
type ToolsConfig struct {
	Enabled []string
}

// ServeConfig controls the dashboard server.
type ServeConfig struct {
	Host string
	Port int
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

// Load reads configuration from config.yaml (working directory or
// ./config), applies environment overrides, and fills in defaults.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("GENEBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// Dataset distribution from the published benchmark protocol:
	// 10 simple, 25 moderate, 15 complex regions.
	viper.SetDefault("dataset.simpleGenes", 10)
	viper.SetDefault("dataset.moderateGenes", 25)
	viper.SetDefault("dataset.complexGenes", 15)
	viper.SetDefault("dataset.seed", 42)
	viper.SetDefault("dataset.gcContent", 0.42)
	viper.SetDefault("dataset.flankLength", 1500)

	viper.SetDefault("evaluation.iouThreshold", 0.5)
	viper.SetDefault("evaluation.workers", 0)

	viper.SetDefault("tools.enabled", []string{"AUGUSTUS", "SNAP", "GlimmerHMM", "Genscan"})

	viper.SetDefault("serve.host", "127.0.0.1")
	viper.SetDefault("serve.port", 8080)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("logging.outputPath", "stdout")
}
