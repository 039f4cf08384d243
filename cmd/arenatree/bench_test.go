package main

import (
	"bytes"
	"testing"

	"github.com/npillmayer/arenatree"
	"github.com/npillmayer/arenatree/alloc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func benchConfig(capacity int) *Config {
	return &Config{Capacity: capacity, Chunk: 16, Bench: BenchConfig{N: 200, Seed: 7}}
}

func TestRunBench(t *testing.T) {
	reg := prometheus.NewRegistry()
	var results []benchResult
	for _, kind := range []arenatree.Kind{arenatree.BST, arenatree.RedBlack, arenatree.AVL} {
		res := runBench(benchConfig(0), kind, alloc.Heap{}, reg)
		require.NoError(t, res.err)
		assert.Equal(t, 200, res.inserted)
		assert.Positive(t, res.stats.Peak)
		assert.Equal(t, 0, res.stats.Live, "%s arena must be released", kind)
		results = append(results, res)
	}
	// random insertion keeps the balanced trees within their height bounds
	assert.LessOrEqual(t, results[1].height, 16)
	assert.LessOrEqual(t, results[2].height, 11)

	n, err := testutil.GatherAndCount(reg, "arenatree_avl_alloc_live_bytes")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var out bytes.Buffer
	renderBench(&out, results)
	assert.Contains(t, out.String(), "redblack")
	assert.Contains(t, out.String(), "growable")
}

func TestRunBenchBudgetExhausted(t *testing.T) {
	res := runBench(benchConfig(0), arenatree.RedBlack, alloc.NewBudget(1024), nil)
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, arenatree.ErrAllocation)
	assert.Less(t, res.inserted, 200)
	assert.Positive(t, res.stats.Failures)
}

func TestRunBenchBounded(t *testing.T) {
	res := runBench(benchConfig(100), arenatree.AVL, alloc.Heap{}, nil)
	assert.ErrorIs(t, res.err, arenatree.ErrCapacityExceeded)
	assert.Equal(t, 100, res.inserted)
	assert.True(t, res.bounded)
}
