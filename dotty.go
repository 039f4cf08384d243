package arenatree

import (
	"fmt"
	"io"
	"strings"
)

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with label(element) and
// their arena slot. A nil label prints elements with %v.
func (t *Tree[T]) Dot(w io.Writer, label func(T) string) error {
	if err := t.usable(); err != nil {
		return err
	}
	if label == nil {
		label = func(x T) string { return fmt.Sprintf("%v", x) }
	}
	var nodelist, edgelist strings.Builder
	nilid := t.length
	t.eachNode(func(n index) {
		styles := t.nodeDotStyles(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\\n#%d%s\" %s];\n", n,
			dotEscape(label(t.elems[n])), n, t.metaLabel(n), styles)
		for _, c := range [2]index{t.left[n], t.right[n]} {
			if c == nilIndex {
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n, nilid)
				nilid++
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n, c)
			}
		}
	})
	_, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

// eachNode calls fn for every node index in pre-order.
func (t *Tree[T]) eachNode(fn func(n index)) {
	if t.root == nilIndex {
		return
	}
	stack := []index{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n)
		if r := t.right[n]; r != nilIndex {
			stack = append(stack, r)
		}
		if l := t.left[n]; l != nilIndex {
			stack = append(stack, l)
		}
	}
}

func (t *Tree[T]) metaLabel(n index) string {
	if t.cfg.Kind == AVL {
		return fmt.Sprintf(" h=%d", t.meta[n])
	}
	return ""
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func (t *Tree[T]) nodeDotStyles(n index) string {
	s := ",style=filled,shape=circle"
	switch t.cfg.Kind {
	case RedBlack:
		if t.meta[n] == red {
			s += ",color=black,fillcolor=\"#e4573d\",fontcolor=white"
		} else {
			s += ",color=black,fillcolor=black,fontcolor=white"
		}
	case AVL:
		s += ",color=black,fillcolor=\"" + hexcolors[min(int(t.meta[n]), len(hexcolors)-1)] + "\""
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}
