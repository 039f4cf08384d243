package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/arenatree"
	"github.com/npillmayer/arenatree/alloc"
	"github.com/prometheus/client_golang/prometheus"
)

// benchResult holds the measurements of one benchmark run.
type benchResult struct {
	kind     arenatree.Kind
	bounded  bool
	n        int
	inserted int
	insert   time.Duration
	lookup   time.Duration
	remove   time.Duration
	height   int
	stats    alloc.Stats
	err      error
}

// runBench inserts n pseudo-random ints into a tree of the given kind, looks
// each of them up and removes them again. Allocations pass through a
// Counting allocator wrapped around next; if reg is non-nil, they are also
// exported to Prometheus under namespace "arenatree_<kind>".
func runBench(cfg *Config, kind arenatree.Kind, next alloc.Allocator, reg prometheus.Registerer) (res benchResult) {
	res = benchResult{kind: kind, bounded: cfg.Capacity > 0, n: cfg.Bench.N}
	counting := alloc.NewCounting(next)
	defer func() { res.stats = counting.Stats() }()
	var a alloc.Allocator = counting
	if reg != nil {
		in, err := alloc.NewInstrumented(counting, reg, "arenatree_"+kind.String())
		if err != nil {
			res.err = err
			return res
		}
		a = in
	}
	tree, err := arenatree.New(cfg.TreeConfig(kind, a))
	if err != nil {
		res.err = err
		return res
	}
	defer tree.Destroy(nil)

	r := rand.New(rand.NewSource(cfg.Bench.Seed))
	xs := r.Perm(cfg.Bench.N)

	start := time.Now()
	for _, x := range xs {
		if err := tree.Insert(x); err != nil {
			res.err = err
			break
		}
		res.inserted++
	}
	res.insert = time.Since(start)
	res.height = tree.Height()

	start = time.Now()
	for _, x := range xs[:res.inserted] {
		if !tree.Contains(x) {
			res.err = fmt.Errorf("lost element %d", x)
			return res
		}
	}
	res.lookup = time.Since(start)

	r.Shuffle(res.inserted, func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	start = time.Now()
	for _, x := range xs[:res.inserted] {
		if _, err := tree.Remove(x); err != nil {
			res.err = err
			return res
		}
	}
	res.remove = time.Since(start)
	return res
}

// perOp formats the average duration of an operation.
func perOp(d time.Duration, n int) string {
	if n == 0 {
		return "-"
	}
	return (d / time.Duration(n)).String()
}

// renderBench writes results as a table.
func renderBench(w io.Writer, results []benchResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Kind", "Arena", "N", "Height", "Insert/op", "Lookup/op", "Remove/op",
		"Peak", "Allocs", "Reallocs", "Failures", "Error"})
	for _, res := range results {
		arena := "growable"
		if res.bounded {
			arena = "bounded"
		}
		errText := ""
		if res.err != nil {
			errText = res.err.Error()
		}
		tw.AppendRow(table.Row{
			res.kind, arena, humanize.Comma(int64(res.n)), res.height,
			perOp(res.insert, res.inserted), perOp(res.lookup, res.inserted), perOp(res.remove, res.inserted),
			humanize.IBytes(uint64(res.stats.Peak)), res.stats.Allocs, res.stats.Reallocs, res.stats.Failures,
			errText,
		})
	}
	tw.Render()
}
