package arenatree

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arenatree")
	defer teardown()
	//
	tree := newIntTree(t, RedBlack, 0, 0)
	insertAll(t, tree, 2, 1, 3, 4)
	var buf bytes.Buffer
	require.NoError(t, tree.Dot(&buf, strconv.Itoa))
	dot := buf.String()
	t.Logf("\n%s", dot)
	tassert.True(t, strings.HasPrefix(dot, "strict digraph {"))
	tassert.True(t, strings.HasSuffix(dot, "}\n"))
	tassert.Contains(t, dot, `"0" -> "1";`)
	tassert.Contains(t, dot, `fillcolor="#e4573d"`, "node 4 is red")
	tassert.Equal(t, 5, strings.Count(dot, "shape=circle,fixedsize=true"), "one NIL leaf per free child slot")
}

func TestDotEscapesLabels(t *testing.T) {
	tree, err := New(Config[string]{Kind: AVL, Compare: strings.Compare})
	require.NoError(t, err)
	require.NoError(t, tree.Insert(`say "hi"`))
	var buf bytes.Buffer
	require.NoError(t, tree.Dot(&buf, nil))
	tassert.Contains(t, buf.String(), `say \"hi\"`)
	tassert.Contains(t, buf.String(), "h=1")
}

func TestFprint(t *testing.T) {
	tree := newIntTree(t, BST, 0, 0)
	insertAll(t, tree, 4, 2, 6, 1)
	var buf bytes.Buffer
	require.NoError(t, tree.Fprint(&buf, nil, nil))
	want := "" +
		"    ┌── 6\n" +
		"4\n" +
		"    └── 2\n" +
		"        └── 1\n"
	tassert.Equal(t, want, buf.String())

	buf.Reset()
	empty := newIntTree(t, AVL, 0, 0)
	require.NoError(t, empty.Fprint(&buf, nil, nil))
	tassert.Equal(t, "(empty)\n", buf.String())
}

func TestFprintTruncatesAndColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()
	//
	tree, err := New(Config[string]{Kind: RedBlack, Compare: strings.Compare})
	require.NoError(t, err)
	require.NoError(t, tree.Insert("a rather long label"))
	require.NoError(t, tree.Insert("b"))
	var buf bytes.Buffer
	cfg := &PrintConfig{LabelWidth: 6, Colors: true}
	require.NoError(t, tree.Fprint(&buf, nil, cfg))
	out := buf.String()
	t.Logf("\n%s", out)
	tassert.Contains(t, out, "a ra")
	tassert.NotContains(t, out, "label")
	tassert.Contains(t, out, "\x1b[", "colored output carries escape sequences")
}
