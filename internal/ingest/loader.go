package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"

	"eltype-inspector/value"
)

const (
	tagTuple     = "!tuple"
	tagSet       = "!set"
	tagFrozenSet = "!frozenset"
	tagYAMLSet   = "!!set"
	tagMerge     = "!!merge"
)

// ErrUnhashable is returned when a set member cannot be compared.
var ErrUnhashable = errors.New("set member is not hashable")

// LoadFile loads and parses a record document from the given path.
func LoadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}
	defer f.Close()

	docs, err := ParseStream(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return collapse(docs), nil
}

// Parse parses YAML or JSON data. A single document is returned as is,
// several documents are returned as a []any of records.
func Parse(data []byte) (any, error) {
	docs, err := ParseStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return collapse(docs), nil
}

// ParseStream decodes every document of r, in order.
func ParseStream(r io.Reader) ([]any, error) {
	dec := yaml.NewDecoder(r)

	docs := []any{}
	for {
		var node yaml.Node

		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse records YAML: %w", err)
		}

		v, err := convert(&node)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(docs)+1, err)
		}

		docs = append(docs, v)
	}
}

func collapse(docs []any) any {
	if len(docs) == 1 {
		return docs[0]
	}

	return docs
}

func convert(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}

		return convert(n.Content[0])
	case yaml.AliasNode:
		return convert(n.Alias)
	case yaml.SequenceNode:
		return convertSequence(n)
	case yaml.MappingNode:
		return convertMapping(n)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}

		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func convertSequence(n *yaml.Node) (any, error) {
	items := make([]any, 0, len(n.Content))
	for _, c := range n.Content {
		v, err := convert(c)
		if err != nil {
			return nil, err
		}

		items = append(items, v)
	}

	switch n.Tag {
	case tagTuple:
		return value.Tuple(items), nil
	case tagSet:
		return newSet(n, items)
	case tagFrozenSet:
		s, err := newSet(n, items)
		if err != nil {
			return nil, err
		}

		return s.Freeze(), nil
	default:
		return items, nil
	}
}

func convertMapping(n *yaml.Node) (any, error) {
	switch n.Tag {
	case tagYAMLSet, tagSet, tagFrozenSet:
		keys := make([]any, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := convert(n.Content[i])
			if err != nil {
				return nil, err
			}

			keys = append(keys, k)
		}

		s, err := newSet(n, keys)
		if err != nil {
			return nil, err
		}

		if n.Tag == tagFrozenSet {
			return s.Freeze(), nil
		}

		return s, nil
	}

	m := value.NewMapping()
	if err := fill(m, n); err != nil {
		return nil, err
	}

	return m, nil
}

// fill copies the entries of the mapping node n into m. Merge keys pull in
// the entries of the referenced mappings first so that explicit keys win.
func fill(m *value.Mapping, n *yaml.Node) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]

		if kn.Tag == tagMerge {
			if err := merge(m, vn); err != nil {
				return err
			}

			continue
		}

		k, err := convert(kn)
		if err != nil {
			return err
		}

		v, err := convert(vn)
		if err != nil {
			return err
		}

		m.Set(k, v)
	}

	return nil
}

func merge(m *value.Mapping, n *yaml.Node) error {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.MappingNode:
		return fill(m, n)
	case yaml.SequenceNode:
		for _, c := range n.Content {
			if err := merge(m, c); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("line %d: map merge requires a mapping or a list of mappings", n.Line)
	}
}

func newSet(n *yaml.Node, items []any) (*value.Set, error) {
	s := value.NewSet()
	for _, item := range items {
		if !hashable(item) {
			return nil, fmt.Errorf("line %d: %w: %T", n.Line, ErrUnhashable, item)
		}

		s.Add(item)
	}

	return s, nil
}

// hashable reports whether v can be used as a Go map key. Decoded scalars
// always can, collections cannot.
func hashable(v any) bool {
	if v == nil {
		return true
	}

	rt := reflect.TypeOf(v)

	return rt.Comparable() && rt.Kind() != reflect.Pointer
}
