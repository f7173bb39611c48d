// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"fmt"

	"github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is one JSON-Schema-like mapping with preserved key insertion order.
// Values are nil, bool, string, json.Number, *Node or []any.
type Node struct {
	fields *orderedmap.OrderedMap[string, any]
}

// structuralKeywords lists sub-schema-introducing keys in fixed check order.
var structuralKeywords = []string{
	"properties",
	"additionalProperties",
	"items",
	"not",
	"if",
	"then",
	"else",
	"anyOf",
	"oneOf",
	"allOf",
}

// complexKeywords make a type-less schema render as `complex` instead of `any`.
var complexKeywords = []string{"anyOf", "oneOf", "allOf", "not", "if"}

// docMetadataKeys are descriptive keys stripped by CleanSchema.
var docMetadataKeys = map[string]struct{}{
	"title":        {},
	"description":  {},
	"examples":     {},
	"root_key":     {},
	"default_auto": {},
	"default":      {},
}

// NewNode returns an empty schema node.
func NewNode() *Node {
	return &Node{fields: orderedmap.New[string, any]()}
}

// Set stores value under key, appending the key to the iteration order when new.
// It returns the node to allow fixture-style chaining.
func (node *Node) Set(key string, value any) *Node {
	node.fields.Set(key, value)
	return node
}

// Get returns the value stored under key.
func (node *Node) Get(key string) (any, bool) {
	if node == nil {
		return nil, false
	}

	return node.fields.Get(key)
}

// Has reports whether key is present.
func (node *Node) Has(key string) bool {
	_, ok := node.Get(key)
	return ok
}

// Len returns the number of keys.
func (node *Node) Len() int {
	if node == nil {
		return 0
	}

	return node.fields.Len()
}

// Keys returns all keys in insertion order.
func (node *Node) Keys() []string {
	if node == nil {
		return nil
	}

	out := make([]string, 0, node.fields.Len())
	for pair := node.fields.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// MarshalJSON encodes the node as a JSON object in key insertion order.
func (node *Node) MarshalJSON() ([]byte, error) {
	if node == nil || node.fields == nil {
		return []byte("{}"), nil
	}

	return node.fields.MarshalJSON()
}

// stringValue returns the string stored under key, or "" for absent or non-string values.
func stringValue(node *Node, key string) string {
	value, ok := node.Get(key)
	if !ok {
		return ""
	}

	return asString(value)
}

// nodeValue returns the mapping stored under key.
func nodeValue(node *Node, key string) (*Node, bool) {
	value, ok := node.Get(key)
	if !ok {
		return nil, false
	}

	sub, ok := value.(*Node)
	return sub, ok
}

// sliceValue returns the sequence stored under key, or nil.
func sliceValue(node *Node, key string) []any {
	value, ok := node.Get(key)
	if !ok {
		return nil
	}

	return asSlice(value)
}

// asString converts a scalar value to string, or "" for non-strings.
func asString(value any) string {
	text, _ := value.(string)
	return text
}

// asSlice converts a value to []any, or nil.
func asSlice(value any) []any {
	items, _ := value.([]any)
	return items
}

// asBool converts a value to bool with an ok flag.
func asBool(value any) (bool, bool) {
	typed, ok := value.(bool)
	return typed, ok
}

// asStringSlice converts a sequence value to its string elements.
func asStringSlice(value any) []string {
	items := asSlice(value)
	if len(items) == 0 {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := item.(string); ok {
			out = append(out, text)
		}
	}

	return out
}

// hasComplexKeywords reports whether any composition/conditional keyword is present.
func hasComplexKeywords(node *Node) bool {
	for _, key := range complexKeywords {
		if node.Has(key) {
			return true
		}
	}

	return false
}

// CleanSchema returns a copy of a schema container with documentation metadata
// (title, description, examples, root_key, default and default_auto) removed
// recursively. Keys of a `properties` mapping are property names, not
// metadata, so they survive even when they collide with a metadata key.
// Containers other than mappings and sequences are rejected.
func CleanSchema(container any) (any, error) {
	switch typed := container.(type) {
	case *Node:
		return cleanNode(typed, false), nil
	case []any:
		return cleanSlice(typed), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedContainer, container)
	}
}

// cleanNode strips metadata keys from one mapping level.
func cleanNode(node *Node, isPropertyMap bool) *Node {
	clean := NewNode()
	for pair := node.fields.Oldest(); pair != nil; pair = pair.Next() {
		if !isPropertyMap {
			if _, drop := docMetadataKeys[pair.Key]; drop {
				continue
			}
		}

		switch value := pair.Value.(type) {
		case *Node:
			clean.Set(pair.Key, cleanNode(value, pair.Key == "properties"))
		case []any:
			clean.Set(pair.Key, cleanSlice(value))
		default:
			clean.Set(pair.Key, value)
		}
	}

	return clean
}

// cleanSlice strips metadata from mapping elements of one sequence.
func cleanSlice(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		switch value := item.(type) {
		case *Node:
			out = append(out, cleanNode(value, false))
		case []any:
			out = append(out, cleanSlice(value))
		default:
			out = append(out, value)
		}
	}

	return out
}

// numberValue parses a numeric schema value (json.Number or int) as float64.
func numberValue(value any) (float64, bool) {
	switch typed := value.(type) {
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}

		return parsed, true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case float64:
		return typed, true
	default:
		return 0, false
	}
}
