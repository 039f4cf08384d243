// Command arenatree exercises arena-backed search trees from the command
// line: it benchmarks the balancing disciplines, runs YAML scripts of tree
// operations and renders trees as Graphviz DOT.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "arenatree",
		Short: "Arena-backed binary search trees",
		Long: `arenatree exercises arena-backed binary search trees.

Commands:
  bench     Time insert, lookup and remove for each tree kind
  run       Run a YAML script of tree operations
  dot       Print a tree of integers in Graphviz DOT format`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ./arenatree.yaml)")
	flags.String("trace", defaultTrace, "trace level [Debug|Info|Error]")
	flags.String("kind", defaultKind, "tree kind [bst|redblack|avl]")
	flags.Int("capacity", 0, "fixed capacity, 0 for a growable arena")
	flags.Int("chunk", defaultChunk, "growth step of growable arenas")
	flags.String("budget", "", "memory budget, e.g. 64MiB")

	rootCmd.AddCommand(newBenchCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newDotCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration for cmd and sets up tracing.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig(configPath, cmd)
	if err != nil {
		return nil, err
	}
	setupTracing(cfg.Trace)
	return cfg, nil
}

// setupTracing routes all trace keys to a Go log adapter writing to stderr.
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	for _, key := range []string{"arenatree", "arenatree.alloc"} {
		t := tracing.Select(key)
		t.SetOutput(os.Stderr)
		t.SetTraceLevel(tracing.TraceLevelFromString(level))
	}
}
