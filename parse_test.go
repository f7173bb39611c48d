// SPDX-License-Identifier: MIT
// Copyright (c) 2026 mdocgen
// Source: github.com/mdocgen/schemamd

package schemamd

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseNodeJSONKeyOrder(t *testing.T) {
	t.Parallel()

	node, err := ParseNode([]byte(`{"zulu": 1, "alpha": {"beta": true}, "mike": [1, "x", null]}`))
	if err != nil {
		t.Fatalf("ParseNode: %v", err)
	}

	if got := strings.Join(node.Keys(), ","); got != "zulu,alpha,mike" {
		t.Fatalf("key order = %q", got)
	}

	number, _ := node.Get("zulu")
	if _, ok := number.(json.Number); !ok {
		t.Fatalf("number decoded as %T, want json.Number", number)
	}

	nested, ok := nodeValue(node, "alpha")
	if !ok || !nested.Has("beta") {
		t.Fatal("nested mapping not decoded as Node")
	}

	items := sliceValue(node, "mike")
	if len(items) != 3 || items[2] != nil {
		t.Fatalf("sequence decoded as %#v", items)
	}
}

func TestParseNodeYAML(t *testing.T) {
	t.Parallel()

	node, err := ParseNode([]byte("zulu: 1\nalpha:\n  beta: true\nmike:\n  - 1\n  - x\n  - null\n"))
	if err != nil {
		t.Fatalf("ParseNode: %v", err)
	}

	if got := strings.Join(node.Keys(), ","); got != "zulu,alpha,mike" {
		t.Fatalf("key order = %q", got)
	}

	number, _ := node.Get("zulu")
	if number != json.Number("1") {
		t.Fatalf("yaml int decoded as %#v", number)
	}

	nested, _ := nodeValue(node, "alpha")
	flag, _ := nested.Get("beta")
	if flag != true {
		t.Fatalf("yaml bool decoded as %#v", flag)
	}
}

func TestParseNodeYAMLAliases(t *testing.T) {
	t.Parallel()

	node, err := ParseNode([]byte("base: &anchor\n  type: string\ncopy: *anchor\n"))
	if err != nil {
		t.Fatalf("ParseNode: %v", err)
	}

	clone, ok := nodeValue(node, "copy")
	if !ok || stringValue(clone, "type") != "string" {
		t.Fatal("alias node not resolved")
	}
}

func TestParseNodeSniffsJSONWithLeadingSpace(t *testing.T) {
	t.Parallel()

	node, err := ParseNode([]byte("\n\t {\"type\": \"object\"}"))
	if err != nil {
		t.Fatalf("ParseNode: %v", err)
	}

	if stringValue(node, "type") != "object" {
		t.Fatal("leading whitespace broke JSON detection")
	}
}

func TestParseNodeRejectsNonMappingRoot(t *testing.T) {
	t.Parallel()

	if _, err := ParseNode([]byte(`["a", "b"]`)); !errors.Is(err, ErrSchemaRootType) {
		t.Fatalf("sequence root error = %v, want ErrSchemaRootType", err)
	}
}

func TestParseDocumentMetadata(t *testing.T) {
	t.Parallel()

	doc, err := parseDocument([]byte(`{
		"$id": "urn:cfg",
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"title": "Config",
		"root_key": "cfg",
		"type": "object"
	}`))
	if err != nil {
		t.Fatalf("parseDocument: %v", err)
	}

	if doc.ID != "urn:cfg" || doc.Title != "Config" || doc.RootKey != "cfg" {
		t.Fatalf("metadata = %+v", doc)
	}

	if !doc.Draft.Supported || doc.Draft.Canonical != "2020-12" {
		t.Fatalf("draft = %+v", doc.Draft)
	}
}
