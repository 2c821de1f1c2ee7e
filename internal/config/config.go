// Package config loads covergrade's runtime configuration from rc files,
// environment variables, and flags via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/policyatlas/covergrade/internal/product"
)

// Config represents the covergrade configuration.
type Config struct {
	Root        string       `mapstructure:"root"`
	Exclude     []string     `mapstructure:"exclude"`
	Format      string       `mapstructure:"format"`
	Output      string       `mapstructure:"output"`
	FailBelow   string       `mapstructure:"failBelow"`
	Quiet       bool         `mapstructure:"quiet"`
	Verbose     bool         `mapstructure:"verbose"`
	Concurrency int          `mapstructure:"concurrency"`
	Schemas     SchemaConfig `mapstructure:"schemas"`
}

// SchemaConfig controls canonical-contract validation in the pipeline.
type SchemaConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var grades = map[string]bool{
	product.GradeD:     true,
	product.GradeC:     true,
	product.GradeB:     true,
	product.GradeA:     true,
	product.GradeAPlus: true,
}

// LoadConfig loads configuration from defaults, rc files, environment, and
// any previously-bound flags.
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", ".")
	viper.SetDefault("format", "console")
	viper.SetDefault("failBelow", product.GradeD)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("concurrency", 8)
	viper.SetDefault("schemas.enabled", true)

	configPaths := []string{".covergraderc.json", ".covergraderc.yaml", ".covergraderc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	viper.SetEnvPrefix("COVERGRADE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rootPath != "" {
		config.Root = rootPath
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}
	if !grades[config.FailBelow] {
		return fmt.Errorf("invalid fail-below grade: %s. Must be one of D, C, B, A, A+", config.FailBelow)
	}
	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	return nil
}

// GradeMeets reports whether a grade is at least the configured floor.
func GradeMeets(grade, floor string) bool {
	return gradeRank(grade) >= gradeRank(floor)
}

func gradeRank(g string) int {
	switch g {
	case product.GradeAPlus:
		return 4
	case product.GradeA:
		return 3
	case product.GradeB:
		return 2
	case product.GradeC:
		return 1
	default:
		return 0
	}
}
