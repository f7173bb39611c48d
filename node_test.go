// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"errors"
	"strings"
	"testing"
)

func TestNodePreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	node := NewNode().
		Set("zebra", 1).
		Set("alpha", 2).
		Set("mango", 3)

	got := strings.Join(node.Keys(), ",")
	if got != "zebra,alpha,mango" {
		t.Fatalf("key order = %q", got)
	}

	node.Set("zebra", 9)
	got = strings.Join(node.Keys(), ",")
	if got != "zebra,alpha,mango" {
		t.Fatalf("key order after overwrite = %q", got)
	}
}

func TestNodeNilSafety(t *testing.T) {
	t.Parallel()

	var node *Node
	if node.Has("type") || node.Len() != 0 || node.Keys() != nil {
		t.Fatal("nil node must behave as empty")
	}
}

func TestCleanSchemaStripsMetadata(t *testing.T) {
	t.Parallel()

	node := NewNode().
		Set("title", "Config").
		Set("examples", []any{"a"}).
		Set("default_auto", "derived").
		Set("root_key", "cfg").
		Set("type", "object").
		Set("anyOf", []any{
			NewNode().Set("description", "branch").Set("type", "string"),
		})

	cleaned, err := CleanSchema(node)
	if err != nil {
		t.Fatalf("CleanSchema: %v", err)
	}

	clean := cleaned.(*Node)
	got := strings.Join(clean.Keys(), ",")
	if got != "type,anyOf" {
		t.Fatalf("cleaned keys = %q", got)
	}

	branch := asSlice(mustGet(clean, "anyOf"))[0].(*Node)
	if branch.Has("description") {
		t.Fatal("nested description should be stripped")
	}
}

func TestCleanSchemaKeepsPropertyNames(t *testing.T) {
	t.Parallel()

	node := NewNode().Set("properties", NewNode().
		Set("default", NewNode().Set("type", "string").Set("title", "prop")).
		Set("title", NewNode().Set("type", "integer")))

	cleaned, err := CleanSchema(node)
	if err != nil {
		t.Fatalf("CleanSchema: %v", err)
	}

	properties, ok := nodeValue(cleaned.(*Node), "properties")
	if !ok {
		t.Fatal("properties missing after clean")
	}

	if !properties.Has("default") || !properties.Has("title") {
		t.Fatalf("property names dropped: %v", properties.Keys())
	}

	prop, _ := nodeValue(properties, "default")
	if prop.Has("title") {
		t.Fatal("metadata inside property schema should be stripped")
	}
}

func TestCleanSchemaRejectsScalars(t *testing.T) {
	t.Parallel()

	if _, err := CleanSchema("not a container"); !errors.Is(err, ErrUnsupportedContainer) {
		t.Fatalf("scalar container error = %v, want ErrUnsupportedContainer", err)
	}
}
