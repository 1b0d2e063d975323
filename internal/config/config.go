package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectName string `yaml:"project_name"`
	ProjectPath string `yaml:"-"`
	TestsDir    string `yaml:"tests_dir"`

	// Test execution settings
	Interpreter   string        `yaml:"interpreter"`
	IncludeDir    string        `yaml:"include_dir"`
	TestPrefix    string        `yaml:"test_prefix"`
	TestExtension string        `yaml:"test_extension"`
	Timeout       time.Duration `yaml:"timeout"`

	// Output settings
	LogLevel string `yaml:"log_level"`

	Bench Bench `yaml:"bench"`
}

// Bench holds benchmark settings
type Bench struct {
	// Label names the implementation on every report line
	Label string `yaml:"label"`
	// Iterations overrides scenario iteration counts by scenario ID (e.g. "parse/simple")
	Iterations map[string]int `yaml:"iterations"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectName:   DefaultProjectName,
		ProjectPath:   ".",
		TestsDir:      DefaultTestsDir,
		Interpreter:   DefaultInterpreter,
		IncludeDir:    DefaultIncludeDir,
		TestPrefix:    DefaultTestPrefix,
		TestExtension: DefaultTestExtension,
		Timeout:       DefaultTimeout,
		LogLevel:      DefaultLogLevel,
		Bench: Bench{
			Label:      DefaultBenchLabel,
			Iterations: map[string]int{},
		},
	}
}

// Load creates a config rooted at projectPath and applies the optional
// iniharness.yaml found there.
func Load(projectPath string) (*Config, error) {
	cfg := New()
	cfg.ProjectPath = projectPath

	path := filepath.Join(projectPath, ConfigFileName)
	if err := cfg.LoadFile(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto the config.
// Keys missing from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if c.Bench.Iterations == nil {
		c.Bench.Iterations = map[string]int{}
	}
	return c.Validate()
}

// Validate rejects values the harness cannot run with
func (c *Config) Validate() error {
	if c.Interpreter == "" {
		return fmt.Errorf("interpreter must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if !strings.HasPrefix(c.TestExtension, ".") {
		return fmt.Errorf("test extension must start with a dot, got %q", c.TestExtension)
	}
	for id, n := range c.Bench.Iterations {
		if n <= 0 {
			return fmt.Errorf("bench iterations for %s must be positive, got %d", id, n)
		}
	}
	return nil
}

// GetTestPath returns the directory that is scanned for test files
func (c *Config) GetTestPath() string {
	if filepath.IsAbs(c.TestsDir) {
		return c.TestsDir
	}
	return filepath.Join(c.ProjectPath, c.TestsDir)
}

// GetIncludePath returns the source root handed to the interpreter
func (c *Config) GetIncludePath() string {
	return c.IncludeDir
}

// Iterations returns the configured iteration count for a scenario,
// falling back to def.
func (c *Config) Iterations(scenarioID string, def int) int {
	if n, ok := c.Bench.Iterations[scenarioID]; ok && n > 0 {
		return n
	}
	return def
}

// SlogLevel parses the configured log level, defaulting to warn
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
