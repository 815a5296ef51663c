// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

package compattab

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BackendStatus is one back-end support record for a compiler. Pointer
// fields distinguish absent keys from empty values.
type BackendStatus struct {
	// State is the raw support state value; nil when the key is absent.
	State *string `yaml:"state"`
	// Comment is optional free text appended to the rendered cell.
	Comment *string `yaml:"comment"`
}

// Compiler is one compiler row: name plus back-end support records keyed by
// back-end identifier. Unknown keys are kept but ignored by the renderer.
type Compiler struct {
	Name     string
	Backends map[string]BackendStatus
}

// Configuration is the list of compiler entries in declaration order.
type Configuration []Compiler

// ParseConfig decodes the JSON or YAML configuration document. The
// declaration order of compiler entries is preserved, it becomes the table
// row order.
func ParseConfig(data []byte) (Configuration, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeConfig, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Configuration{}, nil
	}

	mapping := root.Content[0]
	if mapping.Kind == yaml.ScalarNode && mapping.Tag == "!!null" {
		return Configuration{}, nil
	}

	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: got %s", ErrConfigRoot, nodeKindName(mapping))
	}

	conf := make(Configuration, 0, len(mapping.Content)/2)
	seen := make(map[string]struct{}, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w %q", ErrDuplicateCompiler, name)
		}

		seen[name] = struct{}{}

		compiler, err := parseCompiler(name, mapping.Content[i+1])
		if err != nil {
			return nil, err
		}

		conf = append(conf, compiler)
	}

	return conf, nil
}

// parseCompiler decodes one compiler mapping value into back-end records.
func parseCompiler(name string, node *yaml.Node) (Compiler, error) {
	if node.Kind != yaml.MappingNode {
		return Compiler{}, fmt.Errorf("%w: compiler %q is not a mapping (line %d)", ErrDecodeConfig, name, node.Line)
	}

	out := Compiler{
		Name:     name,
		Backends: make(map[string]BackendStatus, len(node.Content)/2),
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		var status BackendStatus
		if err := node.Content[i+1].Decode(&status); err != nil {
			return Compiler{}, fmt.Errorf("%w: %s/%s: %w", ErrDecodeConfig, name, key, err)
		}

		out.Backends[key] = status
	}

	return out, nil
}

// nodeKindName returns a human-readable YAML node kind for error text.
func nodeKindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
