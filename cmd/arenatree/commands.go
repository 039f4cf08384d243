package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/npillmayer/arenatree"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time insert, lookup and remove for each tree kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return bench(cmd.Context(), cfg)
		},
	}
	cmd.Flags().Int("n", defaultBenchN, "number of elements")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().StringSlice("kinds", []string{"bst", "redblack", "avl"}, "tree kinds to compare")
	cmd.Flags().String("serve", "", "serve allocator metrics on this address after the run")
	return cmd
}

func bench(ctx context.Context, cfg *Config) error {
	var reg *prometheus.Registry
	if cfg.Bench.Serve != "" {
		reg = prometheus.NewRegistry()
	}
	var results []benchResult
	for _, name := range cfg.Bench.Kinds {
		kind, err := arenatree.ParseKind(name)
		if err != nil {
			return err
		}
		a, err := cfg.Allocator()
		if err != nil {
			return err
		}
		var r prometheus.Registerer
		if reg != nil {
			r = reg
		}
		results = append(results, runBench(cfg, kind, a, r))
	}
	renderBench(os.Stdout, results)
	if reg == nil {
		return nil
	}
	return serveMetrics(ctx, cfg.Bench.Serve, reg)
}

// serveMetrics exposes reg on addr until interrupted.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	fmt.Fprintf(os.Stderr, "serving metrics on http://%s/metrics, interrupt to stop\n", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a YAML script of tree operations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			script, err := LoadScript(f)
			if err != nil {
				return err
			}
			tree, err := newScriptTree(script, cfg)
			if err != nil {
				return err
			}
			defer tree.Destroy(nil)
			return script.Run(tree, os.Stdout, arenatree.PrintConfigFromTerminal())
		},
	}
}

// newScriptTree creates the tree a script runs against.
func newScriptTree(script *Script, cfg *Config) (*scriptTree, error) {
	c, kind, err := script.treeConfig(cfg)
	if err != nil {
		return nil, err
	}
	a, err := c.Allocator()
	if err != nil {
		return nil, err
	}
	return arenatree.New(c.TreeConfig(kind, a))
}

func newDotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <int>...",
		Short: "Print a tree of integers in Graphviz DOT format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			kind, err := arenatree.ParseKind(cfg.Kind)
			if err != nil {
				return err
			}
			a, err := cfg.Allocator()
			if err != nil {
				return err
			}
			tree, err := arenatree.New(cfg.TreeConfig(kind, a))
			if err != nil {
				return err
			}
			defer tree.Destroy(nil)
			for _, arg := range args {
				x, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("not an integer: %q", arg)
				}
				if err := tree.Insert(x); err != nil {
					return err
				}
			}
			return tree.Dot(cmd.OutOrStdout(), strconv.Itoa)
		},
	}
}
