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

// schemaDocument is the parsed top-level schema with its metadata keywords.
type schemaDocument struct {
	Root    *Node
	ID      string
	Schema  string
	Title   string
	RootKey string
	Draft   DraftInfo
}

// parseDocument decodes schema bytes and extracts top-level metadata.
func parseDocument(schemaBytes []byte) (schemaDocument, error) {
	root, err := ParseNode(schemaBytes)
	if err != nil {
		return schemaDocument{}, err
	}

	doc := schemaDocument{
		Root:    root,
		ID:      stringValue(root, "$id"),
		Schema:  stringValue(root, "$schema"),
		Title:   stringValue(root, "title"),
		RootKey: stringValue(root, "root_key"),
	}
	doc.Draft = DetectDraft(doc.Schema)

	return doc, nil
}

// ParseNode decodes a schema document in JSON or YAML into an ordered Node.
// JSON is detected by a leading '{'; everything else is parsed as YAML.
func ParseNode(data []byte) (*Node, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return ParseJSONNode(data)
	}

	return ParseYAMLNode(data)
}

// ParseJSONNode decodes JSON schema bytes into an ordered Node. Numbers are
// kept as json.Number to survive serialization round trips.
func ParseJSONNode(data []byte) (*Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeJSONValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	root, ok := value.(*Node)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", ErrSchemaRootType, value)
	}

	return root, nil
}

// decodeJSONValue decodes one JSON value from the token stream.
func decodeJSONValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		// string, bool, json.Number or nil scalar.
		return token, nil
	}

	switch delim {
	case '{':
		node := NewNode()
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}

			key, ok := keyToken.(string)
			if !ok {
				return nil, fmt.Errorf("object key must be a string, got %T", keyToken)
			}

			value, err := decodeJSONValue(decoder)
			if err != nil {
				return nil, err
			}

			node.Set(key, value)
		}

		// Consume closing '}'.
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}

		return node, nil

	case '[':
		items := make([]any, 0, 4)
		for decoder.More() {
			value, err := decodeJSONValue(decoder)
			if err != nil {
				return nil, err
			}

			items = append(items, value)
		}

		if _, err := decoder.Token(); err != nil {
			return nil, err
		}

		return items, nil

	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
}

// ParseYAMLNode decodes YAML schema bytes into an ordered Node.
func ParseYAMLNode(data []byte) (*Node, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, fmt.Errorf("%w, document is empty", ErrSchemaRootType)
	}

	value, err := decodeYAMLValue(document.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	root, ok := value.(*Node)
	if !ok {
		return nil, fmt.Errorf("%w, got %T", ErrSchemaRootType, value)
	}

	return root, nil
}

// decodeYAMLValue converts one yaml.Node subtree to Node/[]any/scalar values.
func decodeYAMLValue(source *yaml.Node) (any, error) {
	switch source.Kind {
	case yaml.MappingNode:
		node := NewNode()
		for index := 0; index+1 < len(source.Content); index += 2 {
			value, err := decodeYAMLValue(source.Content[index+1])
			if err != nil {
				return nil, err
			}

			node.Set(source.Content[index].Value, value)
		}

		return node, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(source.Content))
		for _, item := range source.Content {
			value, err := decodeYAMLValue(item)
			if err != nil {
				return nil, err
			}

			items = append(items, value)
		}

		return items, nil

	case yaml.ScalarNode:
		return decodeYAMLScalar(source)

	case yaml.AliasNode:
		return decodeYAMLValue(source.Alias)

	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", source.Kind, source.Line)
	}
}

// decodeYAMLScalar maps YAML scalar tags onto the Node value types.
func decodeYAMLScalar(source *yaml.Node) (any, error) {
	switch source.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		value, err := strconv.ParseBool(strings.ToLower(source.Value))
		if err != nil {
			return nil, fmt.Errorf("invalid bool %q at line %d", source.Value, source.Line)
		}

		return value, nil
	case "!!int", "!!float":
		return json.Number(source.Value), nil
	default:
		return source.Value, nil
	}
}
