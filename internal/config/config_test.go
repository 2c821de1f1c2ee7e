package config

import (
	"testing"

	"github.com/policyatlas/covergrade/internal/product"
)

func TestValidateConfig(t *testing.T) {
	valid := Config{Format: "console", FailBelow: product.GradeD, Concurrency: 8}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"json format", func(c *Config) { c.Format = "json" }, false},
		{"markdown format", func(c *Config) { c.Format = "markdown" }, false},
		{"unknown format", func(c *Config) { c.Format = "xml" }, true},
		{"fail below B", func(c *Config) { c.FailBelow = product.GradeB }, false},
		{"unknown grade", func(c *Config) { c.FailBelow = "F" }, true},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := validateConfig(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGradeMeets(t *testing.T) {
	tests := []struct {
		grade, floor string
		want         bool
	}{
		{product.GradeAPlus, product.GradeA, true},
		{product.GradeA, product.GradeA, true},
		{product.GradeB, product.GradeA, false},
		{product.GradeD, product.GradeD, true},
		{product.GradeC, product.GradeB, false},
	}
	for _, tt := range tests {
		if got := GradeMeets(tt.grade, tt.floor); got != tt.want {
			t.Errorf("GradeMeets(%q, %q) = %v, want %v", tt.grade, tt.floor, got, tt.want)
		}
	}
}
