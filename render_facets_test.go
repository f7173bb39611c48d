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

func TestTypeToMarkdownString(t *testing.T) {
	t.Parallel()

	fragment, err := TypeToMarkdown(NewNode().Set("type", "string"), "")
	if err != nil {
		t.Fatalf("TypeToMarkdown: %v", err)
	}

	if fragment.Text != "`string`" || !fragment.Inline {
		t.Fatalf("type fragment = %+v", fragment)
	}
}

func TestTypeToMarkdownList(t *testing.T) {
	t.Parallel()

	fragment, err := TypeToMarkdown(NewNode().Set("type", []any{"string", "null"}), "")
	if err != nil {
		t.Fatalf("TypeToMarkdown: %v", err)
	}

	if fragment.Text != "`string` or `null`" {
		t.Fatalf("type list fragment = %q", fragment.Text)
	}
}

func TestTypeToMarkdownAbsent(t *testing.T) {
	t.Parallel()

	fragment, err := TypeToMarkdown(NewNode(), "")
	if err != nil {
		t.Fatalf("TypeToMarkdown: %v", err)
	}

	if fragment.Text != "`any`" {
		t.Fatalf("empty schema type = %q, want `any`", fragment.Text)
	}
}

func TestTypeToMarkdownComplex(t *testing.T) {
	t.Parallel()

	node := NewNode().Set("anyOf", []any{NewNode().Set("type", "string")})
	fragment, err := TypeToMarkdown(node, "")
	if err != nil {
		t.Fatalf("TypeToMarkdown: %v", err)
	}

	if fragment.Text != "`complex`" {
		t.Fatalf("anyOf schema type = %q, want `complex`", fragment.Text)
	}
}

func TestTypeToMarkdownRefWins(t *testing.T) {
	t.Parallel()

	node := NewNode().
		Set("$ref", "common.yaml#/defs/Foo").
		Set("type", "object")

	fragment, err := TypeToMarkdown(node, "ref")
	if err != nil {
		t.Fatalf("TypeToMarkdown: %v", err)
	}

	want := "[`Foo`](#ref-common-yaml-defs-foo)"
	if fragment.Text != want {
		t.Fatalf("ref type fragment = %q, want %q", fragment.Text, want)
	}
}

func TestTypeToMarkdownUnsupported(t *testing.T) {
	t.Parallel()

	_, err := TypeToMarkdown(NewNode().Set("type", json.Number("7")), "")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("numeric type error = %v, want ErrUnsupportedType", err)
	}
}

func TestAdditionalPropertiesBooleans(t *testing.T) {
	t.Parallel()

	fragment, ok := AdditionalPropertiesToMarkdown(NewNode().Set("additionalProperties", false), "")
	if !ok || fragment.Text != "`false`" {
		t.Fatalf("false fragment = %+v ok=%v", fragment, ok)
	}

	fragment, ok = AdditionalPropertiesToMarkdown(NewNode().Set("additionalProperties", true), "")
	if !ok || fragment.Text != "`any`" {
		t.Fatalf("true fragment = %+v ok=%v", fragment, ok)
	}
}

func TestAdditionalPropertiesAbsent(t *testing.T) {
	t.Parallel()

	if _, ok := AdditionalPropertiesToMarkdown(NewNode().Set("$ref", "#/$defs/Foo"), ""); ok {
		t.Fatal("ref schema should render no additionalProperties fragment")
	}

	if _, ok := AdditionalPropertiesToMarkdown(NewNode().Set("oneOf", []any{}), ""); ok {
		t.Fatal("composition schema should render no additionalProperties fragment")
	}

	fragment, ok := AdditionalPropertiesToMarkdown(NewNode().Set("type", "object"), "")
	if !ok || fragment.Text != "`any`" {
		t.Fatalf("plain object fragment = %+v ok=%v", fragment, ok)
	}

	if _, ok := AdditionalPropertiesToMarkdown(NewNode().Set("type", "string"), ""); ok {
		t.Fatal("scalar schema should render no additionalProperties fragment")
	}
}

func TestAdditionalPropertiesSchema(t *testing.T) {
	t.Parallel()

	node := NewNode().Set("additionalProperties", NewNode().Set("type", "string"))

	fragment, ok := AdditionalPropertiesToMarkdown(node, "cfg-extra")
	if !ok || fragment.Text != "[`true`](#cfg-extra)" {
		t.Fatalf("tagged fragment = %+v ok=%v", fragment, ok)
	}

	fragment, ok = AdditionalPropertiesToMarkdown(node, "")
	if !ok || fragment.Text != "[`true`]" {
		t.Fatalf("untagged fragment = %+v ok=%v", fragment, ok)
	}
}

func TestNotToMarkdown(t *testing.T) {
	t.Parallel()

	anchors := Anchors{Path: "cfg"}

	node := NewNode().Set("not", NewNode().Set("type", "string"))
	fragment, ok := NotToMarkdown(node, anchors)
	if !ok || fragment.Text != "[`not`](#cfg-not)" {
		t.Fatalf("not fragment = %+v ok=%v", fragment, ok)
	}

	node = NewNode().Set("not", NewNode().Set("$ref", "#/$defs/Foo"))
	fragment, ok = NotToMarkdown(node, anchors)
	if !ok || fragment.Text != "[`Foo`](#defs-foo)" {
		t.Fatalf("not ref fragment = %+v ok=%v", fragment, ok)
	}

	if _, ok := NotToMarkdown(NewNode(), anchors); ok {
		t.Fatal("absent not keyword should render nothing")
	}
}

func TestSomeOfToMarkdownIndexesFromOne(t *testing.T) {
	t.Parallel()

	node := NewNode().Set("anyOf", []any{
		NewNode().Set("type", "string"),
		NewNode().Set("$ref", "types.yaml#/Bar"),
	})

	fragment, ok := SomeOfToMarkdown(node, "anyOf", Anchors{Path: "cfg"})
	if !ok {
		t.Fatal("anyOf fragment missing")
	}

	want := "[`anyOf[1]`](#cfg-anyof-1), [`Bar`](#types-yaml-bar)"
	if fragment.Text != want {
		t.Fatalf("anyOf fragment = %q, want %q", fragment.Text, want)
	}
}

func TestConditionalToMarkdownIndependentBranches(t *testing.T) {
	t.Parallel()

	anchors := Anchors{Path: "cfg"}

	node := NewNode().
		Set("if", NewNode().Set("type", "string")).
		Set("else", NewNode().Set("$ref", "#/$defs/Fallback"))

	fragment, ok := ConditionalToMarkdown(node, anchors)
	if !ok {
		t.Fatal("conditional fragment missing")
	}

	want := "if [`if`](#cfg-if) else [`Fallback`](#defs-fallback)"
	if fragment.Text != want {
		t.Fatalf("conditional fragment = %q, want %q", fragment.Text, want)
	}
}

func TestConditionalToMarkdownAbsentWithoutIf(t *testing.T) {
	t.Parallel()

	node := NewNode().Set("then", NewNode().Set("type", "string"))
	if _, ok := ConditionalToMarkdown(node, Anchors{}); ok {
		t.Fatal("then without if should render nothing")
	}
}

func TestEnumToMarkdownInlineAndBlock(t *testing.T) {
	t.Parallel()

	node := NewNode().Set("enum", []any{"red", "green", json.Number("3"), true, nil})
	fragment, ok := EnumToMarkdown(node)
	if !ok || !fragment.Inline {
		t.Fatalf("short enum fragment = %+v ok=%v", fragment, ok)
	}

	if fragment.Text != "`red`, `green`, `3`, `true`, `null`" {
		t.Fatalf("enum fragment = %q", fragment.Text)
	}

	long := NewNode().Set("enum", []any{
		strings.Repeat("a", 25),
		strings.Repeat("b", 25),
	})
	fragment, ok = EnumToMarkdown(long)
	if !ok || fragment.Inline {
		t.Fatalf("long enum should be a block, got %+v", fragment)
	}

	if !strings.HasPrefix(fragment.Text, "- `") {
		t.Fatalf("long enum fragment = %q", fragment.Text)
	}
}

func TestRequiredToMarkdown(t *testing.T) {
	t.Parallel()

	fragment, ok := RequiredToMarkdown(NewNode().Set("required", []any{"name", "kind"}))
	if !ok || fragment.Text != "`name`, `kind`" {
		t.Fatalf("required fragment = %+v ok=%v", fragment, ok)
	}
}

func TestDefaultToMarkdown(t *testing.T) {
	t.Parallel()

	fragment, ok := DefaultToMarkdown(NewNode().Set("default", json.Number("42")))
	if !ok || fragment.Text != "`42`" || !fragment.Inline {
		t.Fatalf("scalar default fragment = %+v ok=%v", fragment, ok)
	}

	big := NewNode()
	for _, key := range []string{"first", "second", "third"} {
		big.Set(key, strings.Repeat("x", 20))
	}

	fragment, ok = DefaultToMarkdown(NewNode().Set("default", big))
	if !ok || fragment.Inline {
		t.Fatalf("mapping default should be a block, got %+v", fragment)
	}

	if !strings.HasPrefix(fragment.Text, "```yaml\n") {
		t.Fatalf("mapping default fragment = %q", fragment.Text)
	}
}

func TestDefaultToMarkdownAutoProse(t *testing.T) {
	t.Parallel()

	node := NewNode().Set("default_auto", "  current\nworking directory  ")
	fragment, ok := DefaultToMarkdown(node)
	if !ok || fragment.Text != "current working directory" || !fragment.Inline {
		t.Fatalf("default_auto fragment = %+v ok=%v", fragment, ok)
	}
}

func TestDefaultToMarkdownPrefersExplicit(t *testing.T) {
	t.Parallel()

	node := NewNode().
		Set("default", "literal").
		Set("default_auto", "derived text")

	fragment, ok := DefaultToMarkdown(node)
	if !ok || fragment.Text != "`literal`" {
		t.Fatalf("default precedence fragment = %+v ok=%v", fragment, ok)
	}
}

func TestExamplesToMarkdownThreeShapes(t *testing.T) {
	t.Parallel()

	fragment, ok := ExamplesToMarkdown(NewNode().Set("examples", []any{"a", "b"}))
	if !ok || fragment.Text != "`a`, `b`" || !fragment.Inline {
		t.Fatalf("short examples fragment = %+v ok=%v", fragment, ok)
	}

	fragment, ok = ExamplesToMarkdown(NewNode().Set("examples", []any{
		strings.Repeat("a", 30),
		strings.Repeat("b", 30),
	}))
	if !ok || fragment.Inline || !strings.HasPrefix(fragment.Text, "- `") {
		t.Fatalf("bullet examples fragment = %+v ok=%v", fragment, ok)
	}

	fragment, ok = ExamplesToMarkdown(NewNode().Set("examples", []any{"line one\nline two", "short"}))
	if !ok || fragment.Inline {
		t.Fatalf("multiline examples should be blocks, got %+v", fragment)
	}

	if strings.Count(fragment.Text, "```yaml") != 2 {
		t.Fatalf("multiline examples fragment = %q", fragment.Text)
	}
}

func TestScalarToMarkdownBool(t *testing.T) {
	t.Parallel()

	fragment, ok := ScalarToMarkdown(NewNode().Set("deprecated", true), "deprecated")
	if !ok || fragment.Text != "`true`" {
		t.Fatalf("bool scalar fragment = %+v ok=%v", fragment, ok)
	}

	if _, ok := ScalarToMarkdown(NewNode(), "minimum"); ok {
		t.Fatal("absent scalar should render nothing")
	}
}

func TestSchemaToMarkdownStripsMetadata(t *testing.T) {
	t.Parallel()

	node := NewNode().
		Set("title", "Config").
		Set("description", "top level").
		Set("type", "object").
		Set("properties", NewNode().
			Set("default", NewNode().Set("type", "string").Set("description", "nested")))

	fragment, err := SchemaToMarkdown(node)
	if err != nil {
		t.Fatalf("SchemaToMarkdown: %v", err)
	}

	if fragment.Inline {
		t.Fatal("schema fragment must be a block")
	}

	assertContains(t, fragment.Text, "type: object")
	// `default` is a property name here, not metadata.
	assertContains(t, fragment.Text, "default:")
	assertNotContains(t, fragment.Text, "title")
	assertNotContains(t, fragment.Text, "description")
}
