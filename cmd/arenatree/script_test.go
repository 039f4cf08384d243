package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/arenatree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `
kind: bst
chunk: 8
ops:
  - op: insert
    values: [5, 3, 8]
  - op: contains
    values: [3, 4]
  - op: remove
    values: [3, 42]
  - op: list
  - op: min
  - op: floor
    values: [7]
  - op: successor
    values: [8]
  - op: check
  - op: hibernate
  - op: min
  - op: boot
  - op: remove-max
  - op: clear
  - op: max
`

func TestScriptRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arenatree")
	defer teardown()

	script, err := LoadScript(strings.NewReader(sampleScript))
	require.NoError(t, err)
	cfg := &Config{Kind: "redblack", Chunk: arenatree.DefaultChunk}
	tree, err := newScriptTree(script, cfg)
	require.NoError(t, err)
	defer tree.Destroy(nil)
	assert.Equal(t, arenatree.BST, tree.Kind())

	var out bytes.Buffer
	require.NoError(t, script.Run(tree, &out, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"insert: len=3 cap=8",
		"contains 3 = true",
		"contains 4 = false",
		"remove 3 = 3",
		"remove 42: " + arenatree.ErrNotFound.Error(),
		"list: [5 8]",
		"min = 5",
		"floor 7 = 5",
		"successor 8: " + arenatree.ErrNotFound.Error(),
		"check: ok",
		"hibernate: ok",
		"min: " + arenatree.ErrHibernated.Error(),
		"boot: ok",
		"remove-max = 8",
		"clear: cap=8",
		"max: " + arenatree.ErrEmpty.Error(),
	}
	assert.Equal(t, want, lines)
}

func TestScriptPrintAndDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arenatree")
	defer teardown()

	script, err := LoadScript(strings.NewReader("ops:\n  - op: insert\n    values: [2, 1, 3]\n  - op: print\n  - op: dot\n"))
	require.NoError(t, err)
	tree, err := newScriptTree(script, &Config{Kind: "avl", Capacity: 4})
	require.NoError(t, err)
	defer tree.Destroy(nil)

	var out bytes.Buffer
	require.NoError(t, script.Run(tree, &out, &arenatree.PrintConfig{}))
	s := out.String()
	assert.Contains(t, s, "insert: len=3 cap=4")
	assert.Contains(t, s, "    ┌── 3 (h=1)\n2 (h=2)\n    └── 1 (h=1)\n")
	assert.Contains(t, s, "strict digraph {")
}

func TestScriptOverridesConfig(t *testing.T) {
	capacity := 16
	script := &Script{Kind: "avl", Capacity: &capacity}
	cfg := &Config{Kind: "bst", Chunk: 4}
	c, kind, err := script.treeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, arenatree.AVL, kind)
	assert.Equal(t, 16, c.Capacity)
	assert.Equal(t, 4, c.Chunk)
	assert.Equal(t, "bst", cfg.Kind, "CLI configuration must stay untouched")
}

func TestLoadScriptRejectsUnknown(t *testing.T) {
	_, err := LoadScript(strings.NewReader("ops:\n  - op: rotate\n"))
	assert.ErrorIs(t, err, ErrUnknownOp)

	_, err = LoadScript(strings.NewReader("ops: []\ncolour: red\n"))
	assert.Error(t, err)
}

func TestScriptCapacityExceeded(t *testing.T) {
	script, err := LoadScript(strings.NewReader("capacity: 2\nops:\n  - op: insert\n    values: [1, 2, 3]\n"))
	require.NoError(t, err)
	tree, err := newScriptTree(script, &Config{Kind: "rb", Chunk: 8})
	require.NoError(t, err)
	defer tree.Destroy(nil)

	var out bytes.Buffer
	require.NoError(t, script.Run(tree, &out, nil))
	assert.Contains(t, out.String(), "insert 3: "+arenatree.ErrCapacityExceeded.Error())
	assert.Contains(t, out.String(), "insert: len=2 cap=2")
}
