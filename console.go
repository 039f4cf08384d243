package arenatree

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PrintConfig controls console output of trees.
type PrintConfig struct {
	// LabelWidth truncates node labels to this many display cells (en).
	// Zero means no limit.
	LabelWidth int
	// Context determines the display width of East Asian characters.
	// Nil selects uax11.LatinContext.
	Context *uax11.Context
	// Colors enables coloring of nodes.
	Colors bool
}

// PrintConfigFromTerminal is a simple helper for creating a PrintConfig.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and limits labels to a quarter of it. Colors are enabled for
// terminals only.
func PrintConfigFromTerminal() *PrintConfig {
	config := &PrintConfig{LabelWidth: 16, Context: uax11.ContextFromEnvironment()}
	if term.IsTerminal(0) {
		config.Colors = true
		if w, _, err := term.GetSize(0); err == nil && w > 40 {
			config.LabelWidth = w / 4
		}
	}
	tracer().Debugf("arenatree: setting label width to %d en", config.LabelWidth)
	return config
}

// palette colors nodes by kind: red and black nodes of red-black trees,
// AVL nodes by balance, plain BST nodes uniformly.
var palette = struct {
	red, black, balanced, leaning, plain, edge *color.Color
}{
	red:      color.New(color.FgRed, color.Bold),
	black:    color.New(color.FgHiWhite, color.Bold),
	balanced: color.New(color.FgGreen),
	leaning:  color.New(color.FgYellow),
	plain:    color.New(color.FgBlue),
	edge:     color.New(color.FgHiBlack),
}

var setupGraphemes sync.Once

// Fprint prints the tree sideways to w: the root is at the left margin,
// right subtrees are printed above and left subtrees below their parent.
// label renders elements; nil prints them with %v. If cfg is nil, a plain
// configuration without colors is used.
func (t *Tree[T]) Fprint(w io.Writer, label func(T) string, cfg *PrintConfig) error {
	if err := t.usable(); err != nil {
		return err
	}
	if cfg == nil {
		cfg = &PrintConfig{}
	}
	if label == nil {
		label = func(x T) string { return fmt.Sprintf("%v", x) }
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	p := printer[T]{t: t, label: label, cfg: cfg, w: bufio.NewWriter(w)}
	if t.root == nilIndex {
		p.line("", "", "(empty)", nil)
	} else {
		p.subtree(t.root, "", "")
	}
	return p.w.Flush()
}

type printer[T any] struct {
	t     *Tree[T]
	label func(T) string
	cfg   *PrintConfig
	w     *bufio.Writer
}

// subtree prints the subtree at n. prefix is the indentation inherited from
// ancestors, connector is drawn in front of n's own label.
func (p *printer[T]) subtree(n index, prefix, connector string) {
	t := p.t
	upper, lower := prefix+"    ", prefix+"    "
	switch connector {
	case "┌── ":
		lower = prefix + "│   "
	case "└── ":
		upper = prefix + "│   "
	}
	if r := t.right[n]; r != nilIndex {
		p.subtree(r, upper, "┌── ")
	}
	p.line(prefix, connector, p.text(n), p.colorOf(n))
	if l := t.left[n]; l != nilIndex {
		p.subtree(l, lower, "└── ")
	}
}

func (p *printer[T]) line(prefix, connector, text string, c *color.Color) {
	edges := prefix + connector
	if p.cfg.Colors {
		edges = palette.edge.Sprint(edges)
		if c != nil {
			text = c.Sprint(text)
		}
	}
	p.w.WriteString(edges)
	p.w.WriteString(text)
	p.w.WriteByte('\n')
}

func (p *printer[T]) text(n index) string {
	s := p.truncate(p.label(p.t.elems[n]))
	if p.t.cfg.Kind == AVL {
		s += fmt.Sprintf(" (h=%d)", p.t.meta[n])
	}
	return s
}

func (p *printer[T]) colorOf(n index) *color.Color {
	switch p.t.cfg.Kind {
	case RedBlack:
		if p.t.meta[n] == red {
			return palette.red
		}
		return palette.black
	case AVL:
		if p.t.balanceOf(n) == 0 {
			return palette.balanced
		}
		return palette.leaning
	}
	return palette.plain
}

// truncate shortens s to at most LabelWidth display cells, marking the cut
// with an ellipsis.
func (p *printer[T]) truncate(s string) string {
	if p.cfg.LabelWidth <= 0 || p.width(s) <= p.cfg.LabelWidth {
		return s
	}
	runes := []rune(s)
	for k := len(runes) - 1; k > 0; k-- {
		cut := string(runes[:k]) + "…"
		if p.width(cut) <= p.cfg.LabelWidth {
			return cut
		}
	}
	return "…"
}

// width is the display width of s in en.
func (p *printer[T]) width(s string) int {
	context := p.cfg.Context
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}
