// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"fmt"
	"slices"
)

// DefaultMaxNesting is the nesting budget a schema may use before it is
// rendered as a standalone documentation section.
const DefaultMaxNesting = 2

// Subschemas returns parallel path labels and sub-schema nodes for one
// structural keyword of node:
//
//   - properties: property names in insertion order and their schemas
//   - additionalProperties: ("*", schema) for a mapping value, nothing for booleans
//   - items: ("[i]", schema); tuple-style items arrays carry no sub-schemas
//   - not/if/then/else: the keyword itself and the nested schema
//   - anyOf/oneOf/allOf: 1-indexed "key[n]" labels and the sequence elements
//
// The keyword must be present in node; boolean sub-schemas are skipped since
// they introduce no nested structure.
func Subschemas(node *Node, key string) ([]string, []*Node, error) {
	value, ok := node.Get(key)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrMissingKeyword, key)
	}

	switch key {
	case "properties":
		properties, ok := value.(*Node)
		if !ok {
			return nil, nil, nil
		}

		labels := make([]string, 0, properties.Len())
		subs := make([]*Node, 0, properties.Len())
		for _, name := range properties.Keys() {
			sub, ok := nodeValue(properties, name)
			if !ok {
				continue
			}

			labels = append(labels, name)
			subs = append(subs, sub)
		}

		return labels, subs, nil

	case "additionalProperties", "items":
		sub, ok := value.(*Node)
		if !ok {
			return nil, nil, nil
		}

		label := "*"
		if key == "items" {
			label = "[i]"
		}

		return []string{label}, []*Node{sub}, nil

	case "not", "if", "then", "else":
		sub, ok := value.(*Node)
		if !ok {
			return nil, nil, nil
		}

		return []string{key}, []*Node{sub}, nil

	case "anyOf", "oneOf", "allOf":
		items := asSlice(value)
		labels := make([]string, 0, len(items))
		subs := make([]*Node, 0, len(items))
		for index, item := range items {
			sub, ok := item.(*Node)
			if !ok {
				continue
			}

			labels = append(labels, fmt.Sprintf("%s[%d]", key, index+1))
			subs = append(subs, sub)
		}

		return labels, subs, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedKeyword, key)
	}
}

// NeedsSeparateSection reports whether a schema is too complex to render
// inline: it nests structural keywords deeper than maxNesting levels, or
// carries composition/conditional keywords below the limit. A schema with
// $ref is never complex on its own; the reference target is documented where
// it is defined.
func NeedsSeparateSection(node *Node, maxNesting int) bool {
	return needsSeparateSection(node, maxNesting, 0)
}

func needsSeparateSection(node *Node, maxNesting, depth int) bool {
	if node == nil || node.Has("$ref") {
		return false
	}

	for _, key := range structuralKeywords {
		if !node.Has(key) {
			continue
		}

		if depth >= maxNesting {
			return true
		}

		_, subs, err := Subschemas(node, key)
		if err != nil {
			continue
		}

		for _, sub := range subs {
			if needsSeparateSection(sub, maxNesting, depth+1) {
				return true
			}
		}
	}

	return false
}

// SubschemaIsRequired reports whether the sub-schema reached through key is
// mandatory in its parent: a property listed in the parent's required
// sequence, or array items with a positive minItems. Composition and
// conditional sub-schemas are never required in this sense.
func SubschemaIsRequired(node *Node, key, subKey string) bool {
	switch key {
	case "properties":
		required, ok := node.Get("required")
		if !ok {
			return false
		}

		return slices.Contains(asStringSlice(required), subKey)

	case "items":
		return ArrayItemsAreRequired(node)

	default:
		return false
	}
}

// ArrayItemsAreRequired reports whether the schema declares minItems > 0.
func ArrayItemsAreRequired(node *Node) bool {
	value, ok := node.Get("minItems")
	if !ok {
		return false
	}

	minItems, ok := numberValue(value)
	return ok && minItems > 0
}
