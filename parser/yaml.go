package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// errYAMLExpansion reports YAML whose aliases expand past the output limit.
var errYAMLExpansion = errors.New("yaml: expanded document exceeds the maximum size")

// yamlToJSON converts a YAML document to JSON text so that it can go through
// the same decoder as JSON input. Mapping keys keep their source order;
// aliases are expanded and "<<" merge keys are applied. The JSON text may not
// grow past limit bytes; a non-positive limit disables the check.
func yamlToJSON(data []byte, limit int64) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, nil
	}
	w := &jsonWriter{limit: limit}
	if err := w.node(&root, 0); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// maxAliasDepth bounds alias expansion so that self-referencing anchors fail
// instead of recursing forever.
const maxAliasDepth = 100

// jsonWriter emits a node tree as JSON. Alias expansion is bounded both in
// nesting depth and in the number of bytes written.
type jsonWriter struct {
	buf   bytes.Buffer
	limit int64
}

func (w *jsonWriter) node(node *yaml.Node, depth int) error {
	if w.limit > 0 && int64(w.buf.Len()) > w.limit {
		return errYAMLExpansion
	}
	if depth > maxAliasDepth {
		return fmt.Errorf("yaml: alias nesting exceeds %d levels", maxAliasDepth)
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return w.node(node.Content[0], depth)

	case yaml.AliasNode:
		return w.node(node.Alias, depth+1)

	case yaml.MappingNode:
		pairs, err := mappingPairs(node, depth)
		if err != nil {
			return err
		}
		w.buf.WriteByte('{')
		for i, pair := range pairs {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			key, err := json.Marshal(pair.key)
			if err != nil {
				return err
			}
			w.buf.Write(key)
			w.buf.WriteByte(':')
			if err := w.node(pair.value, depth); err != nil {
				return err
			}
		}
		w.buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		w.buf.WriteByte('[')
		for i, child := range node.Content {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			if err := w.node(child, depth); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return writeScalarJSON(&w.buf, node)

	default:
		return fmt.Errorf("yaml: unsupported node kind %v at line %d", node.Kind, node.Line)
	}
}

type nodePair struct {
	key   string
	value *yaml.Node
}

// mappingPairs lists a mapping's members in source order. Members pulled in by
// a merge key come after the explicit ones and never override them.
func mappingPairs(node *yaml.Node, depth int) ([]nodePair, error) {
	var explicit, merged []nodePair
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := resolveAlias(node.Content[i]), node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("yaml: non-scalar mapping key at line %d", keyNode.Line)
		}
		if keyNode.ShortTag() == "!!merge" {
			more, err := mergeSources(valNode, depth)
			if err != nil {
				return nil, err
			}
			merged = append(merged, more...)
			continue
		}
		if !seen[keyNode.Value] {
			seen[keyNode.Value] = true
			explicit = append(explicit, nodePair{key: keyNode.Value, value: valNode})
		}
	}
	for _, pair := range merged {
		if !seen[pair.key] {
			seen[pair.key] = true
			explicit = append(explicit, pair)
		}
	}
	return explicit, nil
}

func mergeSources(node *yaml.Node, depth int) ([]nodePair, error) {
	if depth > maxAliasDepth {
		return nil, fmt.Errorf("yaml: alias nesting exceeds %d levels", maxAliasDepth)
	}
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		return mappingPairs(node, depth+1)
	case yaml.SequenceNode:
		var out []nodePair
		for _, child := range node.Content {
			pairs, err := mergeSources(child, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, pairs...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("yaml: merge value at line %d is not a mapping", node.Line)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for i := 0; node.Kind == yaml.AliasNode && node.Alias != nil && i < maxAliasDepth; i++ {
		node = node.Alias
	}
	return node
}

func writeScalarJSON(buf *bytes.Buffer, node *yaml.Node) error {
	var v any
	switch node.ShortTag() {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool", "!!int", "!!float":
		if err := node.Decode(&v); err != nil {
			return err
		}
	default:
		// Strings, timestamps and binary stay as written.
		v = node.Value
	}
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml: value %q at line %d has no JSON form: %w", node.Value, node.Line, err)
	}
	buf.Write(out)
	return nil
}
