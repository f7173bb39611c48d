// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// yamlNodeForValue builds a deterministic yaml.Node tree from a schema value,
// preserving Node key insertion order.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case json.Number:
		if intValue, err := typed.Int64(); err == nil {
			return yamlScalarNode("!!int", strconv.FormatInt(intValue, 10)), nil
		}

		floatValue, err := typed.Float64()
		if err != nil {
			return nil, err
		}

		return yamlScalarNode("!!float", strconv.FormatFloat(floatValue, 'g', -1, 64)), nil

	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil

	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil

	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil

	case *Node:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range typed.Keys() {
			item, _ := typed.Get(key)
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil

	default:
		return nil, fmt.Errorf("unsupported schema value type %T", value)
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}

// yamlText serializes a schema value as YAML without a trailing newline.
func yamlText(value any) (string, error) {
	node, err := yamlNodeForValue(value)
	if err != nil {
		return "", err
	}

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return "", err
	}

	if err := encoder.Close(); err != nil {
		return "", err
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

// mustYAMLText serializes a schema value as compact YAML text, falling back
// to fmt formatting when encoding is impossible.
func mustYAMLText(value any) string {
	text, err := yamlText(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return text
}
