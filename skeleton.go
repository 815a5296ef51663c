// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/compattab

package compattab

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// SkeletonFormatJSON encodes the skeleton configuration as JSON.
	SkeletonFormatJSON SkeletonFormat = "json"
	// SkeletonFormatYAML encodes the skeleton configuration as YAML.
	SkeletonFormatYAML SkeletonFormat = "yaml"
)

// SkeletonFormat configures the output format of a generated skeleton
// configuration.
type SkeletonFormat string

// Skeleton generates a starter configuration for the given compiler names
// with every expected back-end present and set to the "none" state. Compiler
// and back-end order in the output follows the input and column order.
func Skeleton(compilers []string, format SkeletonFormat) ([]byte, error) {
	switch normalizeSkeletonFormat(format) {
	case SkeletonFormatJSON:
		return skeletonJSON(compilers)
	case SkeletonFormatYAML:
		return skeletonYAML(compilers)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownSkeletonFormat, format)
	}
}

// normalizeSkeletonFormat maps the empty format to the JSON default.
func normalizeSkeletonFormat(format SkeletonFormat) SkeletonFormat {
	if format == "" {
		return SkeletonFormatJSON
	}

	return format
}

// skeletonJSON writes the skeleton with two-space indentation and stable key
// order.
func skeletonJSON(compilers []string) ([]byte, error) {
	var out bytes.Buffer
	out.WriteString("{")

	for i, name := range compilers {
		if i > 0 {
			out.WriteString(",")
		}

		encodedName, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeSkeletonJSON, err)
		}

		out.WriteString("\n  ")
		out.Write(encodedName)
		out.WriteString(": {")

		for j, backend := range expectedBackends {
			if j > 0 {
				out.WriteString(",")
			}

			encodedKey, err := json.Marshal(backend.Key)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrEncodeSkeletonJSON, err)
			}

			out.WriteString("\n    ")
			out.Write(encodedKey)
			out.WriteString(`: { "state": "none" }`)
		}

		out.WriteString("\n  }")
	}

	if len(compilers) > 0 {
		out.WriteString("\n")
	}

	out.WriteString("}\n")
	return out.Bytes(), nil
}

// skeletonYAML builds the skeleton from explicit YAML nodes so mapping key
// order survives encoding.
func skeletonYAML(compilers []string) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range compilers {
		entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, backend := range expectedBackends {
			state := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			state.Content = append(state.Content, scalarNode("state"), scalarNode("none"))
			entry.Content = append(entry.Content, scalarNode(backend.Key), state)
		}

		root.Content = append(root.Content, scalarNode(name), entry)
	}

	document := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeSkeletonYAML, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeSkeletonYAML, err)
	}

	return out.Bytes(), nil
}

// scalarNode builds one string scalar YAML node.
func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
