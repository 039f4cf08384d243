package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/arenatree"
	"gopkg.in/yaml.v3"
)

// Script is a sequence of tree operations read from YAML:
//
//	kind: redblack
//	capacity: 0
//	chunk: 8
//	ops:
//	  - op: insert
//	    values: [5, 3, 8, 1, 4, 7, 9]
//	  - op: remove
//	    values: [3]
//	  - op: print
//
// Fields left out fall back to the CLI configuration.
type Script struct {
	Kind     string `yaml:"kind"`
	Capacity *int   `yaml:"capacity"`
	Chunk    *int   `yaml:"chunk"`
	Ops      []Op   `yaml:"ops"`
}

// Op is a single scripted operation. Values are its arguments; operations
// without arguments ignore them.
type Op struct {
	Op     string `yaml:"op"`
	Values []int  `yaml:"values"`
}

// ErrUnknownOp is returned for operations a script may not use.
var ErrUnknownOp = errors.New("unknown script operation")

// LoadScript decodes a script, rejecting unknown fields.
func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	for i, op := range s.Ops {
		if _, ok := scriptOps[op.Op]; !ok {
			return nil, fmt.Errorf("%w: ops[%d] %q", ErrUnknownOp, i, op.Op)
		}
	}
	return &s, nil
}

type scriptTree = arenatree.Tree[int]

// Operations taking one value and producing a result.
var valueOps = map[string]func(t *scriptTree, x int) (int, error){
	"remove":             (*scriptTree).Remove,
	"floor":              (*scriptTree).Floor,
	"ceil":               (*scriptTree).Ceil,
	"successor":          (*scriptTree).Successor,
	"predecessor":        (*scriptTree).Predecessor,
	"remove-floor":       (*scriptTree).RemoveFloor,
	"remove-ceil":        (*scriptTree).RemoveCeil,
	"remove-successor":   (*scriptTree).RemoveSuccessor,
	"remove-predecessor": (*scriptTree).RemovePredecessor,
}

// Operations without arguments producing a result.
var nullaryOps = map[string]func(t *scriptTree) (int, error){
	"min":        (*scriptTree).Min,
	"max":        (*scriptTree).Max,
	"remove-min": (*scriptTree).RemoveMin,
	"remove-max": (*scriptTree).RemoveMax,
}

var scriptOps = func() map[string]struct{} {
	ops := map[string]struct{}{
		"insert": {}, "contains": {}, "print": {}, "list": {}, "check": {},
		"clear": {}, "hibernate": {}, "boot": {}, "dot": {},
	}
	for op := range valueOps {
		ops[op] = struct{}{}
	}
	for op := range nullaryOps {
		ops[op] = struct{}{}
	}
	return ops
}()

// Run executes the script against tree, reporting each step to w. Failing
// lookups are reported and do not stop the script; an inconsistent tree or
// a write error does.
func (s *Script) Run(tree *scriptTree, w io.Writer, printCfg *arenatree.PrintConfig) error {
	for _, op := range s.Ops {
		if err := s.step(tree, op, w, printCfg); err != nil {
			return err
		}
	}
	return nil
}

func (s *Script) step(tree *scriptTree, op Op, w io.Writer, printCfg *arenatree.PrintConfig) error {
	report := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format+"\n", args...)
		return err
	}
	if fn, ok := valueOps[op.Op]; ok {
		for _, x := range op.Values {
			y, err := fn(tree, x)
			if err != nil {
				if e := report("%s %d: %v", op.Op, x, err); e != nil {
					return e
				}
				continue
			}
			if e := report("%s %d = %d", op.Op, x, y); e != nil {
				return e
			}
		}
		return nil
	}
	if fn, ok := nullaryOps[op.Op]; ok {
		y, err := fn(tree)
		if err != nil {
			return report("%s: %v", op.Op, err)
		}
		return report("%s = %d", op.Op, y)
	}
	switch op.Op {
	case "insert":
		for _, x := range op.Values {
			if err := tree.Insert(x); err != nil {
				if e := report("insert %d: %v", x, err); e != nil {
					return e
				}
			}
		}
		return report("insert: len=%d cap=%d", tree.Len(), tree.Cap())
	case "contains":
		for _, x := range op.Values {
			if err := report("contains %d = %v", x, tree.Contains(x)); err != nil {
				return err
			}
		}
		return nil
	case "list":
		return report("list: %v", tree.Slice())
	case "print":
		return tree.Fprint(w, strconv.Itoa, printCfg)
	case "dot":
		return tree.Dot(w, strconv.Itoa)
	case "check":
		if err := tree.Check(); err != nil {
			return err
		}
		return report("check: ok")
	case "clear":
		if err := tree.Clear(nil); err != nil {
			return report("clear: %v", err)
		}
		return report("clear: cap=%d", tree.Cap())
	case "hibernate":
		if err := tree.Hibernate(); err != nil {
			return report("hibernate: %v", err)
		}
		return report("hibernate: ok")
	case "boot":
		if err := tree.Boot(); err != nil {
			return report("boot: %v", err)
		}
		return report("boot: ok")
	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
}

// treeConfig overlays the script's settings onto the CLI configuration.
func (s *Script) treeConfig(cfg *Config) (*Config, arenatree.Kind, error) {
	c := *cfg
	if s.Kind != "" {
		c.Kind = s.Kind
	}
	if s.Capacity != nil {
		c.Capacity = *s.Capacity
	}
	if s.Chunk != nil {
		c.Chunk = *s.Chunk
	}
	kind, err := arenatree.ParseKind(c.Kind)
	return &c, kind, err
}
