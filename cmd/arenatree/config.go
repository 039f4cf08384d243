package main

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/arenatree"
	"github.com/npillmayer/arenatree/alloc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidCapacity = errors.New("capacity must not be negative")
	ErrInvalidChunk    = errors.New("chunk must not be negative")
	ErrInvalidBenchN   = errors.New("bench size must be positive")
)

// Default configuration values.
const (
	defaultKind   = "redblack"
	defaultChunk  = arenatree.DefaultChunk
	defaultTrace  = "Error"
	defaultBenchN = 100000
)

// Config holds all configuration for the arenatree CLI.
type Config struct {
	Kind     string      `mapstructure:"kind"`
	Capacity int         `mapstructure:"capacity"`
	Chunk    int         `mapstructure:"chunk"`
	Budget   string      `mapstructure:"budget"`
	Trace    string      `mapstructure:"trace"`
	Bench    BenchConfig `mapstructure:"bench"`
}

// BenchConfig holds settings of the bench command.
type BenchConfig struct {
	N     int      `mapstructure:"n"`
	Seed  int64    `mapstructure:"seed"`
	Kinds []string `mapstructure:"kinds"`
	Serve string   `mapstructure:"serve"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"kind":     "kind",
	"capacity": "capacity",
	"chunk":    "chunk",
	"budget":   "budget",
	"trace":    "trace",
	"n":        "bench.n",
	"seed":     "bench.seed",
	"kinds":    "bench.kinds",
	"serve":    "bench.serve",
}

// LoadConfig loads configuration from defaults, an optional YAML file,
// ARENATREE_* environment variables and the flags of cmd (if non-nil), in
// increasing order of precedence.
func LoadConfig(configPath string, cmd *cobra.Command) (*Config, error) {
	viperCfg := viper.New()
	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("arenatree")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix("ARENATREE")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				if err := viperCfg.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config
	if err := viperCfg.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("kind", defaultKind)
	viperCfg.SetDefault("capacity", 0)
	viperCfg.SetDefault("chunk", defaultChunk)
	viperCfg.SetDefault("budget", "")
	viperCfg.SetDefault("trace", defaultTrace)
	viperCfg.SetDefault("bench.n", defaultBenchN)
	viperCfg.SetDefault("bench.seed", 1)
	viperCfg.SetDefault("bench.kinds", []string{"bst", "redblack", "avl"})
	viperCfg.SetDefault("bench.serve", "")
}

func validateConfig(config *Config) error {
	if _, err := arenatree.ParseKind(config.Kind); err != nil {
		return err
	}
	for _, k := range config.Bench.Kinds {
		if _, err := arenatree.ParseKind(k); err != nil {
			return err
		}
	}
	if config.Capacity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, config.Capacity)
	}
	if config.Chunk < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChunk, config.Chunk)
	}
	if config.Bench.N <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBenchN, config.Bench.N)
	}
	if config.Budget != "" {
		if _, err := alloc.ParseBudget(config.Budget); err != nil {
			return err
		}
	}
	return nil
}

// Allocator creates the allocator the configuration asks for: a budget if
// one is configured, the heap otherwise.
func (c *Config) Allocator() (alloc.Allocator, error) {
	if c.Budget == "" {
		return alloc.Heap{}, nil
	}
	return alloc.ParseBudget(c.Budget)
}

// TreeConfig creates a tree configuration for int elements.
func (c *Config) TreeConfig(kind arenatree.Kind, a alloc.Allocator) arenatree.Config[int] {
	return arenatree.Config[int]{
		Kind:      kind,
		Compare:   cmp.Compare[int],
		Capacity:  c.Capacity,
		Chunk:     c.Chunk,
		Allocator: a,
	}
}
